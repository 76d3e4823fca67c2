package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Appointment=MockAppointmentRepository

import (
	"context"

	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	"barbershop/internal/domains/appointment/model"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	gRepo "barbershop/shared/repository"
)

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	ListUpcoming(ctx context.Context, from gModel.Date, date *gModel.Date) ([]model.Appointment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateCount(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	DeleteCount(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListUpcoming returns appointments on or after from ordered by day then start time, optionally narrowed to one day.
func (r *repositoryImpl) ListUpcoming(ctx context.Context, from gModel.Date, date *gModel.Date) ([]model.Appointment, error) {
	filters := []any{
		gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: model.TableName, ArgName: "from_date"},
	}

	if date != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: *date, Table: model.TableName})
	}

	params := gDto.QueryParams{SortBy: model.FieldDate + "," + model.FieldStartTime, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
}
