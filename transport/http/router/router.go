package router

import (
	"barbershop/internal/handlers/appointment"
	"barbershop/internal/handlers/auth"
	"barbershop/internal/handlers/availability"
	"barbershop/internal/handlers/booking"
	"barbershop/internal/handlers/reconcile"
	"barbershop/internal/handlers/slot"
	"barbershop/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Appointment  appointment.Handler
	Slot         slot.Handler
	Availability availability.Handler
	Reconcile    reconcile.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts the public booking flow and the admin API under /v1.
// Admin routes require a valid access token and a role listed in permissions.json.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Appointment.Router(adminGroup)
			r.DomainHandlers.Slot.Router(adminGroup)
			r.DomainHandlers.Availability.Router(adminGroup)
			r.DomainHandlers.Reconcile.Router(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
