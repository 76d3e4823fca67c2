package twilio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"barbershop/config"
	"barbershop/infras/otel/mocks"
	"barbershop/infras/twilio"
)

func TestSendWithoutSender(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notification.SMS.AccountSID = "AC123"
	cfg.Notification.SMS.AuthToken = "token"

	err := twilio.New(cfg, mocks.NewOtel()).Send(context.Background(), "+41791234567", "see you at 09:45")

	assert.ErrorIs(t, err, twilio.ErrNotConfigured)
}
