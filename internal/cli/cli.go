// Package cli holds the operator commands run by barbershopctl.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"barbershop/infras/kafka"
	adminDto "barbershop/internal/domains/admin/model/dto"
	adminService "barbershop/internal/domains/admin/service"
	bookingService "barbershop/internal/domains/booking/service"
	notificationModel "barbershop/internal/domains/notification/model"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

var ErrInconsistent = errors.New("slot store is inconsistent")

// Context is handed to every command's Run method by kong.
type Context struct {
	Ctx     context.Context
	Out     io.Writer
	Topic   string
	Booking bookingService.Booking
	Admin   adminService.Admin
	Kafka   kafka.Client
}

type RepairCmd struct{}

func (c *RepairCmd) Run(app *Context) error {
	res, err := app.Booking.RepairOrphans(app.Ctx)
	if err != nil {
		return fmt.Errorf("failed to repair orphan slots: %w", err)
	}

	fmt.Fprintf(app.Out, "repaired %d orphan slot(s)\n", res.Repaired)

	return nil
}

type AuditCmd struct{}

// Run prints every issue and fails when there is at least one, so scripts can alert on it.
func (c *AuditCmd) Run(app *Context) error {
	res, err := app.Booking.Audit(app.Ctx)
	if err != nil {
		return fmt.Errorf("failed to audit slots: %w", err)
	}

	if res.Consistent {
		fmt.Fprintln(app.Out, "slots and appointments are consistent")

		return nil
	}

	for _, issue := range res.Issues {
		fmt.Fprintf(app.Out, "%-28s slot=%-36s appointment=%-36s %s\n", issue.Kind, issue.SlotID, issue.AppointmentID, issue.Message)
	}

	return fmt.Errorf("%w: %d issue(s)", ErrInconsistent, res.Total)
}

type CreateAdminCmd struct {
	Email    string `help:"Login email."                 required:""`
	Password string `help:"Initial password (min 8)."    required:""`
	Name     string `help:"Display name."                required:""`
	Role     string `help:"admin or superadmin."         default:"admin" enum:"admin,superadmin"`
}

func (c *CreateAdminCmd) Run(app *Context) error {
	res, err := app.Admin.Create(app.Ctx, adminDto.CreateAdminRequest{
		Email:    c.Email,
		Password: c.Password,
		Name:     c.Name,
		Role:     c.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(app.Out, "created %s %s (%s)\n", res.Role, res.Email, res.ID)

	return nil
}

type EventsCmd struct {
	Group string `help:"Consumer group, defaults to KAFKA_CONSUMER_GROUP."`
}

// Run tails the appointment event topic until the context is cancelled.
func (c *EventsCmd) Run(app *Context) error {
	err := app.Kafka.Consume(app.Ctx, c.Group, app.Topic, func(message kafkaGo.Message) {
		PrintEvent(app.Out, message)
	})
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", app.Topic, err)
	}

	return nil
}

func PrintEvent(out io.Writer, message kafkaGo.Message) {
	key, event, err := kafka.Decode[notificationModel.Event](message)
	if err != nil {
		log.Warn().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable event")

		return
	}

	fmt.Fprintf(out, "%s %-22s %s %s %s %s\n", event.OccurredAt.Format(time.RFC3339), event.Type, key, event.Date, event.Time, event.Name)
}
