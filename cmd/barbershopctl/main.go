package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"barbershop/di"
	"barbershop/internal/cli"
	"barbershop/shared/logger"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Repair      cli.RepairCmd      `cmd:"" help:"Free slots flagged booked without an appointment."`
	Audit       cli.AuditCmd       `cmd:"" help:"Report slot and appointment inconsistencies. Exits non-zero when any are found."`
	CreateAdmin cli.CreateAdminCmd `cmd:"" help:"Create an admin account."`
	Events      cli.EventsCmd      `cmd:"" help:"Tail appointment events from Kafka."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("barbershopctl"),
		kong.Description("Operator tools for the barbershop booking service."),
		kong.UsageOnError(),
	)

	logger.InitLogger()

	tools := di.InitializeCLI()
	logger.SetLogLevel(tools.Config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&cli.Context{
		Ctx:     ctx,
		Out:     os.Stdout,
		Topic:   tools.Config.Kafka.Topic,
		Booking: tools.Booking,
		Admin:   tools.Admin,
		Kafka:   tools.Kafka,
	})
	if err != nil {
		stop()
		log.Fatal().Err(err).Str("command", kctx.Command()).Msg("command failed")
	}
}
