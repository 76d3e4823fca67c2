package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/internal/domains/appointment/model"
	"barbershop/internal/domains/appointment/model/dto"
	"barbershop/internal/domains/appointment/repository"
	"barbershop/shared"
	"barbershop/shared/constant"
	"barbershop/shared/failure"
	gModel "barbershop/shared/model"
	"barbershop/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Appointment interface {
	GetUpcoming(ctx context.Context, date string) (dto.GetAppointmentsResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Services(ctx context.Context) []dto.ServiceResponse
}

type serviceImpl struct {
	repo repository.Appointment
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Appointment, cfg *config.Config, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetUpcoming lists appointments from today on, optionally only those of one day.
func (s *serviceImpl) GetUpcoming(ctx context.Context, date string) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUpcoming")
	defer scope.End()
	defer scope.TraceIfError(&err)

	var day *gModel.Date

	if date != constant.Empty {
		parsed, err := gModel.ParseDate(date)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		day = &parsed
	}

	models, err := s.repo.ListUpcoming(ctx, timezone.Today(), day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) Services(ctx context.Context) []dto.ServiceResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Services")
	defer scope.End()

	res := make([]dto.ServiceResponse, len(model.Catalog))
	for i, info := range model.Catalog {
		res[i].FromModel(info)
	}

	return res
}
