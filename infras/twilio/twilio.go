package twilio

//go:generate go run go.uber.org/mock/mockgen -source=./twilio.go -destination=./mocks/twilio_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/shared/constant"

	"github.com/rs/zerolog/log"
	twilioGo "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNotConfigured = errors.New("twilio account or sender number missing")

// SMS sends short text messages to customers.
type SMS interface {
	Send(ctx context.Context, to, body string) error
}

type smsImpl struct {
	client *twilioGo.RestClient
	from   string
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) SMS {
	sms := cfg.Notification.SMS

	client := twilioGo.NewRestClientWithParams(twilioGo.ClientParams{
		Username:   sms.AccountSID,
		Password:   sms.AuthToken,
		AccountSid: sms.AccountSID,
	})

	return &smsImpl{
		client: client,
		from:   sms.FromNumber,
		otel:   otl,
	}
}

func (s *smsImpl) Send(ctx context.Context, to, body string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".twilio.Send")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if s.from == "" {
		return ErrNotConfigured
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to send sms")

		return fmt.Errorf("failed to send sms: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		scope.SetAttribute("twilio.sid", *resp.Sid)
	}

	return nil
}
