package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Availability=MockAvailabilityRepository

import (
	"context"
	"fmt"

	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	"barbershop/internal/domains/availability/model"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	gRepo "barbershop/shared/repository"
)

type Availability interface {
	Insert(ctx context.Context, model model.Availability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	DeleteCount(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	ListOpenDates(ctx context.Context, from gModel.Date) ([]gModel.Date, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListOpenDates(ctx context.Context, from gModel.Date) ([]gModel.Date, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s >= :from_date ORDER BY %s",
		model.FieldDate, model.TableName, model.FieldDate, model.FieldDate)

	dates := []gModel.Date{}
	if err := r.Select(ctx, &dates, query, map[string]any{"from_date": from}); err != nil {
		return nil, err
	}

	return dates, nil
}
