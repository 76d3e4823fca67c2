package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"barbershop/config"
	"barbershop/infras/kafka"
	kafkaMocks "barbershop/infras/kafka/mocks"
	"barbershop/infras/otel/mocks"
	telegramMocks "barbershop/infras/telegram/mocks"
	twilioMocks "barbershop/infras/twilio/mocks"
	appointmentModel "barbershop/internal/domains/appointment/model"
	"barbershop/internal/domains/notification/model"
	"barbershop/internal/domains/notification/service"
	"barbershop/shared/constant"
	gModel "barbershop/shared/model"
)

func bookedEvent() model.Event {
	appointment := appointmentModel.Appointment{
		ID:        "appt-1",
		Name:      "Anna Keller",
		Phone:     "+41795551212",
		Service:   constant.ServiceHair,
		Date:      gModel.NewDate(2025, time.March, 14),
		StartTime: gModel.NewClock(9, 45),
	}

	return model.NewEvent(model.EventAppointmentBooked, appointment, "slot-1", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
}

func enabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Telegram.Enable = true
	cfg.Notification.SMS.Enable = true
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "barbershop.appointments"

	return cfg
}

func TestNotificationService_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelegram := telegramMocks.NewMockClient(ctrl)
	mockSMS := twilioMocks.NewMockSMS(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	event := bookedEvent()

	tests := []struct {
		name      string
		cfg       *config.Config
		event     model.Event
		setupMock func()
		wantErr   bool
	}{
		{
			name:  "all channels enabled",
			cfg:   enabledConfig(),
			event: event,
			setupMock: func() {
				mockTelegram.EXPECT().SendMessage(gomock.Any(), event.OwnerText()).Return(nil)
				mockSMS.EXPECT().Send(gomock.Any(), event.Phone, event.CustomerText()).Return(nil)
				mockKafka.EXPECT().
					Publish(gomock.Any(), "barbershop.appointments", kafka.Message{Key: event.AppointmentID, Value: event}).
					Return(nil)
			},
		},
		{
			name:      "all channels disabled",
			cfg:       &config.Config{},
			event:     event,
			setupMock: func() {},
		},
		{
			name:  "one failing channel does not stop the others",
			cfg:   enabledConfig(),
			event: event,
			setupMock: func() {
				mockTelegram.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))
				mockSMS.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockKafka.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "cancellation is not confirmed by sms",
			cfg:  enabledConfig(),
			event: func() model.Event {
				e := event
				e.Type = model.EventAppointmentCancelled

				return e
			}(),
			setupMock: func() {
				mockTelegram.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil)
				mockKafka.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			svc := service.New(mockTelegram, mockSMS, mockKafka, tt.cfg, mocks.NewOtel())

			err := svc.Deliver(context.Background(), tt.event)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_PublishDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTelegram := telegramMocks.NewMockClient(ctrl)
	cfg := &config.Config{}
	cfg.Notification.Telegram.Enable = true

	release := make(chan struct{})
	delivered := make(chan struct{})

	mockTelegram.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			<-release
			close(delivered)

			return errors.New("ignored")
		})

	svc := service.New(mockTelegram, twilioMocks.NewMockSMS(ctrl), kafkaMocks.NewMockClient(ctrl), cfg, mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	svc.Publish(ctx, bookedEvent())
	cancel()

	close(release)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestEventTexts(t *testing.T) {
	event := bookedEvent()

	assert.Contains(t, event.OwnerText(), "Anna Keller")
	assert.Contains(t, event.OwnerText(), "2025-03-14")
	assert.Contains(t, event.OwnerText(), "09:45")
	assert.Contains(t, event.CustomerText(), "hair")

	event.Type = "unknown"
	assert.Empty(t, event.OwnerText())
	assert.Empty(t, event.CustomerText())
}
