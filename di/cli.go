package di

import (
	"barbershop/config"
	"barbershop/infras/kafka"
	adminService "barbershop/internal/domains/admin/service"
	bookingService "barbershop/internal/domains/booking/service"
)

// CLI carries what the operator commands need, without the HTTP stack.
type CLI struct {
	Config  *config.Config
	Booking bookingService.Booking
	Admin   adminService.Admin
	Kafka   kafka.Client
}
