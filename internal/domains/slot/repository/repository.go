package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Slot=MockSlotRepository

import (
	"context"
	"fmt"

	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	"barbershop/internal/domains/slot/model"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"
	gModel "barbershop/shared/model"
	gRepo "barbershop/shared/repository"
	"barbershop/shared/timezone"
)

type Slot interface {
	InsertBulk(ctx context.Context, models []model.Slot) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Slot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slot, error)
	FindForBooking(ctx context.Context, date gModel.Date, start gModel.Clock) (model.Slot, error)
	ListByDate(ctx context.Context, date gModel.Date) ([]model.SlotDetail, error)
	ListOpenTimes(ctx context.Context, date gModel.Date) ([]gModel.Clock, error)
	Reserve(ctx context.Context, id, appointmentID, user string) (int64, error)
	ReleaseByAppointment(ctx context.Context, appointmentID, user string) (int64, error)
	DetachAvailability(ctx context.Context, availabilityID, user string) (int64, error)
	DeleteUnbooked(ctx context.Context, id string) (int64, error)
	RepairOrphans(ctx context.Context, user string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Slot]
	detail gRepo.Repository[model.SlotDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slot](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.SlotDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindForBooking returns the slot at date and start, an unbooked one first when duplicates exist.
func (r *repositoryImpl) FindForBooking(ctx context.Context, date gModel.Date, start gModel.Clock) (model.Slot, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.FindForBooking")
	defer scope.End()

	params := gDto.QueryParams{Limit: 1, SortBy: model.FieldIsBooked, SortDir: gDto.SortDirAsc}

	slots, err := r.GetAll(ctx, params, byDateAndStart(date, start))
	if err != nil {
		return model.Slot{}, err
	}

	if len(slots) == 0 {
		return model.Slot{}, nil
	}

	return slots[0], nil
}

func (r *repositoryImpl) ListByDate(ctx context.Context, date gModel.Date) ([]model.SlotDetail, error) {
	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	return r.detail.GetAll(ctx, params, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: date, Table: model.TableName},
		},
	})
}

func (r *repositoryImpl) ListOpenTimes(ctx context.Context, date gModel.Date) ([]gModel.Clock, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s = :date AND %s = false ORDER BY %s",
		model.FieldStartTime, model.TableName, model.FieldDate, model.FieldIsBooked, model.FieldStartTime)

	times := []gModel.Clock{}
	if err := r.Select(ctx, &times, query, map[string]any{"date": date}); err != nil {
		return nil, err
	}

	return times, nil
}

// Reserve claims the slot only while it is still free. Zero affected rows means another booking won.
func (r *repositoryImpl) Reserve(ctx context.Context, id, appointmentID, user string) (int64, error) {
	return r.UpdateCount(ctx, stamp(map[string]any{
		model.FieldIsBooked:      true,
		model.FieldAppointmentID: appointmentID,
	}, user), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.TableName},
			gDto.Filter{Field: model.FieldIsBooked, Operator: gDto.FilterOperatorEq, Value: false, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
}

func (r *repositoryImpl) ReleaseByAppointment(ctx context.Context, appointmentID, user string) (int64, error) {
	return r.UpdateCount(ctx, freed(user), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldAppointmentID, Operator: gDto.FilterOperatorEq, Value: appointmentID, Table: model.TableName},
		},
	})
}

// DetachAvailability clears the window reference of every slot generated from it. The slots stay bookable.
func (r *repositoryImpl) DetachAvailability(ctx context.Context, availabilityID, user string) (int64, error) {
	return r.UpdateCount(ctx, stamp(map[string]any{model.FieldAvailabilityID: nil}, user), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldAvailabilityID, Operator: gDto.FilterOperatorEq, Value: availabilityID, Table: model.TableName},
		},
	})
}

// DeleteUnbooked removes the slot only if it is free, checked in the same statement.
func (r *repositoryImpl) DeleteUnbooked(ctx context.Context, id string) (int64, error) {
	return r.DeleteCount(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.TableName},
			gDto.Filter{Field: model.FieldIsBooked, Operator: gDto.FilterOperatorEq, Value: false, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
}

// RepairOrphans frees slots flagged as booked that reference no appointment.
func (r *repositoryImpl) RepairOrphans(ctx context.Context, user string) (int64, error) {
	return r.UpdateCount(ctx, stamp(map[string]any{model.FieldIsBooked: false}, user), gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldAppointmentID, Operator: gDto.FilterIsNull, Table: model.TableName},
			gDto.Filter{Field: model.FieldIsBooked, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
}

func byDateAndStart(date gModel.Date, start gModel.Clock) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Operator: gDto.FilterOperatorEq, Value: date, Table: model.TableName},
			gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorEq, Value: start, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func freed(user string) map[string]any {
	return stamp(map[string]any{
		model.FieldIsBooked:      false,
		model.FieldAppointmentID: nil,
	}, user)
}

func stamp(mod map[string]any, user string) map[string]any {
	mod[constant.FieldModifiedAt] = timezone.Now()
	mod[constant.FieldModifiedBy] = user

	return mod
}
