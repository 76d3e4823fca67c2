package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	appointmentModel "barbershop/internal/domains/appointment/model"
	appointmentDto "barbershop/internal/domains/appointment/model/dto"
	appointmentRepo "barbershop/internal/domains/appointment/repository"
	"barbershop/internal/domains/booking/model/dto"
	notificationModel "barbershop/internal/domains/notification/model"
	notification "barbershop/internal/domains/notification/service"
	slotModel "barbershop/internal/domains/slot/model"
	slotRepo "barbershop/internal/domains/slot/repository"
	"barbershop/shared"
	"barbershop/shared/cache"
	"barbershop/shared/constant"
	"barbershop/shared/failure"
	"barbershop/shared/timezone"
	"barbershop/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	operationBook    = "book"
	operationCancel  = "cancel"
	operationRelease = "release"
)

var errSlotUnavailable = failure.SlotUnavailable("the selected time is no longer available")

// Booking keeps slots and appointments in agreement. Every write that touches both tables goes through it.
type Booking interface {
	Book(ctx context.Context, req appointmentDto.CreateAppointmentRequest) (appointmentDto.AppointmentResponse, error)
	Edit(ctx context.Context, req appointmentDto.UpdateAppointmentRequest, id string) (appointmentDto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID string) error
	Release(ctx context.Context, slotID string) error
	DeleteSlot(ctx context.Context, slotID string) error
	RepairOrphans(ctx context.Context) (dto.RepairResponse, error)
	Audit(ctx context.Context) (dto.AuditResponse, error)
}

type serviceImpl struct {
	appointmentRepo appointmentRepo.Appointment
	slotRepo        slotRepo.Slot
	transactor      postgres.Transactor
	notification    notification.Notification
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	appointmentRepo appointmentRepo.Appointment,
	slotRepo slotRepo.Slot,
	transactor postgres.Transactor,
	notification notification.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		transactor:      transactor,
		notification:    notification,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req appointmentDto.CreateAppointmentRequest) (res appointmentDto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(&err)

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	user := shared.Actor(ctx)

	appointment, err := req.ToModel(s.bookedStatus(), user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	var slot slotModel.Slot

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		slot, err = s.slotRepo.FindForBooking(ctx, appointment.Date, appointment.StartTime)
		if err != nil {
			log.Error().Err(err).Msg("failed to find slot for booking")

			return fmt.Errorf("failed to find slot for booking: %w", err)
		}

		if slot.ID == constant.Empty || slot.IsBooked {
			return errSlotUnavailable
		}

		if err = s.appointmentRepo.Insert(ctx, appointment); err != nil {
			log.Error().Err(err).Msg("failed to create appointment")

			return fmt.Errorf("failed to create appointment: %w", err)
		}

		claimed, err := s.slotRepo.Reserve(ctx, slot.ID, appointment.ID, user)
		if err != nil {
			log.Error().Err(err).Str("slot_id", slot.ID).Msg("failed to reserve slot")

			return s.partial(operationBook, appointment.ID, slot.ID, fmt.Errorf("failed to reserve slot: %w", err))
		}

		if claimed == 0 {
			log.Warn().Str("slot_id", slot.ID).Msg("slot was taken by a concurrent booking")

			return s.undoInsert(ctx, appointment.ID, slot.ID)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)

	s.notification.Publish(ctx, notificationModel.NewEvent(notificationModel.EventAppointmentBooked, appointment, slot.ID, timezone.Now()))

	res.FromModel(appointment)

	return res, nil
}

// undoInsert removes an appointment whose slot was lost to a concurrent booking.
// Inside a transaction the rollback already does this.
func (s *serviceImpl) undoInsert(ctx context.Context, appointmentID, slotID string) error {
	if s.transactor.Atomic() {
		return errSlotUnavailable
	}

	if _, err := s.appointmentRepo.DeleteCount(ctx, shared.FilterByID(appointmentID, appointmentModel.FieldID, appointmentModel.TableName)); err != nil {
		log.Error().Err(err).Str("appointment_id", appointmentID).Msg("failed to remove appointment after lost slot")

		return &failure.PartialWrite{Operation: operationBook, AppointmentID: appointmentID, SlotID: slotID, Err: err}
	}

	return errSlotUnavailable
}

func (s *serviceImpl) Edit(ctx context.Context, req appointmentDto.UpdateAppointmentRequest, id string) (res appointmentDto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Edit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, appointmentModel.FieldID, appointmentModel.TableName)

	current, err := s.appointmentRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	updated := req.Apply(current)

	if updated.Name == constant.Empty || updated.Phone == constant.Empty || updated.Service == constant.Empty {
		return res, failure.BadRequestFromString("name, phone and service are required") // nolint:wrapcheck
	}

	if !slices.Contains(constant.Services, updated.Service) {
		return res, failure.BadRequestFromString("service must be one of hair, beard, hair & beard") // nolint:wrapcheck
	}

	user := shared.Actor(ctx)
	updated.ModifiedAt = timezone.Now()
	updated.ModifiedBy = user

	changed, err := s.appointmentRepo.UpdateCount(ctx, map[string]any{
		appointmentModel.FieldName:     updated.Name,
		appointmentModel.FieldPhone:    updated.Phone,
		appointmentModel.FieldService:  updated.Service,
		appointmentModel.FieldDuration: updated.Duration,
		constant.FieldModifiedAt:       updated.ModifiedAt,
		constant.FieldModifiedBy:       user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return res, fmt.Errorf("failed to update appointment: %w", err)
	}

	if changed == 0 {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(updated)

	return res, nil
}

// Cancel deletes the appointment and frees every slot that references it.
func (s *serviceImpl) Cancel(ctx context.Context, appointmentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	var appointment appointmentModel.Appointment

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		appointment, err = s.appointmentRepo.Get(ctx, shared.FilterByID(appointmentID, appointmentModel.FieldID, appointmentModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get appointment")

			return fmt.Errorf("failed to get appointment: %w", err)
		}

		if appointment.ID == constant.Empty {
			return failure.NotFound("appointment not found") // nolint:wrapcheck
		}

		return s.deleteAndFree(ctx, operationCancel, appointmentID, constant.Empty)
	})
	if err != nil {
		return err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)

	s.notification.Publish(ctx, notificationModel.NewEvent(notificationModel.EventAppointmentCancelled, appointment, constant.Empty, timezone.Now()))

	return nil
}

// Release frees a slot from the admin slot list. The linked appointment is deleted first.
func (s *serviceImpl) Release(ctx context.Context, slotID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(&err)

	var appointment appointmentModel.Appointment

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := s.slotRepo.Get(ctx, shared.FilterByID(slotID, slotModel.FieldID, slotModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get slot")

			return fmt.Errorf("failed to get slot: %w", err)
		}

		if slot.ID == constant.Empty {
			return failure.NotFound("slot not found") // nolint:wrapcheck
		}

		if slot.AppointmentID == nil {
			return failure.BadRequestFromString("no appointment linked to this slot") // nolint:wrapcheck
		}

		appointment, err = s.appointmentRepo.Get(ctx, shared.FilterByID(*slot.AppointmentID, appointmentModel.FieldID, appointmentModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get appointment")

			return fmt.Errorf("failed to get appointment: %w", err)
		}

		return s.deleteAndFree(ctx, operationRelease, *slot.AppointmentID, slot.ID)
	})
	if err != nil {
		return err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)

	if appointment.ID != constant.Empty {
		s.notification.Publish(ctx, notificationModel.NewEvent(notificationModel.EventAppointmentReleased, appointment, slotID, timezone.Now()))
	}

	return nil
}

// deleteAndFree is shared by cancel and release so both leave the same end state.
// A release may target a reference whose appointment is already gone, the slot is freed anyway.
func (s *serviceImpl) deleteAndFree(ctx context.Context, operation, appointmentID, slotID string) error {
	deleted, err := s.appointmentRepo.DeleteCount(ctx, shared.FilterByID(appointmentID, appointmentModel.FieldID, appointmentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	if deleted == 0 && operation == operationCancel {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if _, err = s.slotRepo.ReleaseByAppointment(ctx, appointmentID, shared.Actor(ctx)); err != nil {
		log.Error().Err(err).Str("appointment_id", appointmentID).Msg("failed to free slot")

		err = fmt.Errorf("failed to free slot: %w", err)
		if deleted == 0 {
			return err
		}

		return s.partial(operation, appointmentID, slotID, err)
	}

	return nil
}

func (s *serviceImpl) DeleteSlot(ctx context.Context, slotID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSlot")
	defer scope.End()
	defer scope.TraceIfError(&err)

	deleted, err := s.slotRepo.DeleteUnbooked(ctx, slotID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete slot")

		return fmt.Errorf("failed to delete slot: %w", err)
	}

	if deleted == 0 {
		slot, err := s.slotRepo.Get(ctx, shared.FilterByID(slotID, slotModel.FieldID, slotModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get slot")

			return fmt.Errorf("failed to get slot: %w", err)
		}

		if slot.ID == constant.Empty {
			return failure.NotFound("slot not found") // nolint:wrapcheck
		}

		return failure.SlotInUse("slot is booked, release the appointment first") // nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)

	return nil
}

// partial reports a half-applied dual write. Inside a transaction the plain error is enough,
// the rollback undoes the first write.
func (s *serviceImpl) partial(operation, appointmentID, slotID string, err error) error {
	if s.transactor.Atomic() {
		return err
	}

	var partial *failure.PartialWrite
	if errors.As(err, &partial) {
		return err
	}

	log.Error().Err(err).Str("operation", operation).Str("appointment_id", appointmentID).Str("slot_id", slotID).
		Msg("partial write left for reconciliation")

	return &failure.PartialWrite{Operation: operation, AppointmentID: appointmentID, SlotID: slotID, Err: err}
}

func (s *serviceImpl) bookedStatus() string {
	if s.cfg.Booking.BookedStatus == constant.Empty {
		return appointmentModel.StatusBooked
	}

	return s.cfg.Booking.BookedStatus
}
