//go:build wireinject
// +build wireinject

package di

import (
	"barbershop/config"
	"barbershop/infras/jwt"
	"barbershop/infras/kafka"
	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	"barbershop/infras/redis"
	"barbershop/infras/telegram"
	"barbershop/infras/twilio"
	"barbershop/permissions"
	"barbershop/shared/cache"
	"barbershop/transport/http"
	"barbershop/transport/http/middleware"
	"barbershop/transport/http/router"

	adminRepository "barbershop/internal/domains/admin/repository"
	adminService "barbershop/internal/domains/admin/service"
	appointmentRepository "barbershop/internal/domains/appointment/repository"
	appointmentService "barbershop/internal/domains/appointment/service"
	authService "barbershop/internal/domains/auth/service"
	availabilityRepository "barbershop/internal/domains/availability/repository"
	availabilityService "barbershop/internal/domains/availability/service"
	bookingService "barbershop/internal/domains/booking/service"
	notificationService "barbershop/internal/domains/notification/service"
	slotRepository "barbershop/internal/domains/slot/repository"
	slotService "barbershop/internal/domains/slot/service"

	appointmentHandler "barbershop/internal/handlers/appointment"
	authHandler "barbershop/internal/handlers/auth"
	availabilityHandler "barbershop/internal/handlers/availability"
	bookingHandler "barbershop/internal/handlers/booking"
	reconcileHandler "barbershop/internal/handlers/reconcile"
	slotHandler "barbershop/internal/handlers/slot"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	telegram.New,
	twilio.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var slotDomain = wire.NewSet(
	slotRepository.New,
	slotService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	notificationService.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	slotDomain,
	appointmentDomain,
	availabilityDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	appointmentHandler.New,
	slotHandler.New,
	availabilityHandler.New,
	reconcileHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

var cliInfrastructures = wire.NewSet(
	config.Get,
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
	telegram.New,
	twilio.New,
)

var cliDomains = wire.NewSet(
	slotRepository.New,
	appointmentRepository.New,
	bookingDomain,
	adminRepository.New,
	adminService.New,
)

func InitializeCLI() *CLI {
	wire.Build(
		cliInfrastructures,
		sharedHelpers,
		cliDomains,
		wire.Struct(new(CLI), "*"),
	)

	return &CLI{}
}
