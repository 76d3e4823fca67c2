package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbershop/config"
	"barbershop/infras/kafka"
	"barbershop/infras/otel"
	"barbershop/infras/telegram"
	"barbershop/infras/twilio"
	"barbershop/internal/domains/notification/model"
	"barbershop/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// Notification delivers appointment events to the owner chat, the customer phone and the event topic.
type Notification interface {
	// Publish returns immediately, delivery failures are only logged.
	Publish(ctx context.Context, event model.Event)
	Deliver(ctx context.Context, event model.Event) error
}

type serviceImpl struct {
	telegram telegram.Client
	sms      twilio.SMS
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(telegram telegram.Client, sms twilio.SMS, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		telegram: telegram,
		sms:      sms,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Publish(ctx context.Context, event model.Event) {
	timeout := defaultTimeout
	if s.cfg.Notification.TimeoutSeconds > 0 {
		timeout = time.Duration(s.cfg.Notification.TimeoutSeconds) * time.Second
	}

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := s.Deliver(c, event); err != nil {
			log.Error().Err(err).Str("event", event.Type).Str("appointment_id", event.AppointmentID).Msg("failed to deliver notification")
		}
	}()
}

func (s *serviceImpl) Deliver(ctx context.Context, event model.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Deliver")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("event.type", event.Type)

	var errs []error

	if text := event.OwnerText(); s.cfg.Notification.Telegram.Enable && text != "" {
		if err := s.telegram.SendMessage(ctx, text); err != nil {
			log.Error().Err(err).Msg("failed to send telegram notification")

			errs = append(errs, fmt.Errorf("failed to send telegram notification: %w", err))
		}
	}

	if text := event.CustomerText(); s.cfg.Notification.SMS.Enable && text != "" && event.Phone != "" {
		if err := s.sms.Send(ctx, event.Phone, text); err != nil {
			log.Error().Err(err).Msg("failed to send sms confirmation")

			errs = append(errs, fmt.Errorf("failed to send sms confirmation: %w", err))
		}
	}

	if s.cfg.Kafka.Enable {
		message := kafka.Message{Key: event.AppointmentID, Value: event}

		if err := s.kafka.Publish(ctx, s.cfg.Kafka.Topic, message); err != nil {
			log.Error().Err(err).Msg("failed to publish appointment event")

			errs = append(errs, fmt.Errorf("failed to publish appointment event: %w", err))
		}
	}

	return errors.Join(errs...)
}
