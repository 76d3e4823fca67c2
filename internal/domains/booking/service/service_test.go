package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"barbershop/config"
	"barbershop/infras/otel/mocks"
	pgMocks "barbershop/infras/postgres/mocks"
	appointmentMocks "barbershop/internal/domains/appointment/mocks"
	appointmentModel "barbershop/internal/domains/appointment/model"
	appointmentDto "barbershop/internal/domains/appointment/model/dto"
	"barbershop/internal/domains/booking/service"
	notificationMocks "barbershop/internal/domains/notification/mocks"
	notificationModel "barbershop/internal/domains/notification/model"
	slotMocks "barbershop/internal/domains/slot/mocks"
	slotModel "barbershop/internal/domains/slot/model"
	cacheMocks "barbershop/shared/cache/mocks"
	"barbershop/shared/constant"
	"barbershop/shared/failure"
	gModel "barbershop/shared/model"
)

func stringPtr(s string) *string {
	return &s
}

func TestBookingService_Book(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAppointmentRepo := appointmentMocks.NewMockAppointmentRepository(ctrl)
	mockSlotRepo := slotMocks.NewMockSlotRepository(ctrl)
	mockNotification := notificationMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Booking.BookedStatus = "booked"

	freeSlot := slotModel.Slot{
		ID:        "slot-1",
		Date:      gModel.NewDate(2025, time.March, 14),
		StartTime: gModel.NewClock(9, 45),
		EndTime:   gModel.NewClock(10, 30),
	}

	bookedSlot := freeSlot
	bookedSlot.IsBooked = true
	bookedSlot.AppointmentID = stringPtr("someone")

	validReq := appointmentDto.CreateAppointmentRequest{
		Name:    "Anna Keller",
		Phone:   "+41795551212",
		Service: constant.ServiceHair,
		Date:    "2025-03-14",
		Time:    "09:45",
	}

	tests := []struct {
		name      string
		atomic    bool
		req       appointmentDto.CreateAppointmentRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), freeSlot.Date, freeSlot.StartTime).Return(freeSlot, nil)
				mockAppointmentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a appointmentModel.Appointment) error {
						assert.Equal(t, "booked", a.Status)
						assert.Equal(t, 30, a.Duration)
						assert.Equal(t, constant.ContextGuest, a.CreatedBy)

						return nil
					})
				mockSlotRepo.EXPECT().Reserve(gomock.Any(), freeSlot.ID, gomock.Any(), constant.ContextGuest).Return(int64(1), nil)
				mockCache.EXPECT().Clear(gomock.Any(), constant.CacheKeyOpenTimes+constant.Asterix).Return(nil)
				mockNotification.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, event notificationModel.Event) {
						assert.Equal(t, notificationModel.EventAppointmentBooked, event.Type)
						assert.Equal(t, freeSlot.ID, event.SlotID)
					})
			},
		},
		{
			name: "missing phone writes nothing",
			req: appointmentDto.CreateAppointmentRequest{
				Name:    "Anna",
				Service: constant.ServiceHair,
				Date:    "2025-03-14",
				Time:    "09:45",
			},
			setupMock: func() {},
			wantErr:   failure.ErrValidation,
		},
		{
			name: "whitespace name counts as missing",
			req: appointmentDto.CreateAppointmentRequest{
				Name:    "   ",
				Phone:   "079",
				Service: constant.ServiceHair,
				Date:    "2025-03-14",
				Time:    "09:45",
			},
			setupMock: func() {},
			wantErr:   failure.ErrValidation,
		},
		{
			name: "unknown service",
			req: func() appointmentDto.CreateAppointmentRequest {
				r := validReq
				r.Service = "shave"

				return r
			}(),
			setupMock: func() {},
			wantErr:   failure.ErrValidation,
		},
		{
			name:   "no slot at that time",
			atomic: true,
			req:    validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(slotModel.Slot{}, nil)
			},
			wantErr: failure.ErrSlotUnavailable,
		},
		{
			name: "slot already booked",
			req:  validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookedSlot, nil)
			},
			wantErr: failure.ErrSlotUnavailable,
		},
		{
			name: "store unavailable on lookup",
			req:  validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().
					FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(slotModel.Slot{}, failure.StoreUnavailable(errors.New("dial tcp: connection refused")))
			},
			wantErr: failure.ErrStoreUnavailable,
		},
		{
			name: "appointment insert fails",
			req:  validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(freeSlot, nil)
				mockAppointmentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
		{
			name: "lost race compensation fails",
			req:  validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(freeSlot, nil)
				mockAppointmentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockSlotRepo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
				mockAppointmentRepo.EXPECT().DeleteCount(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("delete failed"))
			},
			wantErr: failure.ErrPartialWrite,
		},
		{
			name:   "lost race in a transaction",
			atomic: true,
			req:    validReq,
			setupMock: func() {
				mockSlotRepo.EXPECT().FindForBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(freeSlot, nil)
				mockAppointmentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				mockSlotRepo.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr: failure.ErrSlotUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			svc := service.New(mockAppointmentRepo, mockSlotRepo, pgMocks.NewTransactor(tt.atomic), mockNotification, cfg, mockCache, mocks.NewOtel())

			res, err := svc.Book(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.Error(t, err)

				var f *failure.Failure
				if errors.As(tt.wantErr, &f) || errors.Is(tt.wantErr, failure.ErrStoreUnavailable) {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "09:45", res.StartTime)
		})
	}
}

func TestBookingService_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAppointmentRepo := appointmentMocks.NewMockAppointmentRepository(ctrl)
	mockSlotRepo := slotMocks.NewMockSlotRepository(ctrl)

	existing := appointmentModel.Appointment{
		ID:        "appt-1",
		Name:      "Anna",
		Phone:     "079",
		Service:   constant.ServiceHair,
		Date:      gModel.NewDate(2025, time.March, 14),
		StartTime: gModel.NewClock(9, 45),
		Duration:  30,
		Status:    "booked",
	}

	tests := []struct {
		name      string
		req       appointmentDto.UpdateAppointmentRequest
		setupMock func()
		wantErr   error
	}{
		{
			name: "service change re-derives duration",
			req:  appointmentDto.UpdateAppointmentRequest{Service: stringPtr(constant.ServiceHairAndBeard)},
			setupMock: func() {
				mockAppointmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				mockAppointmentRepo.EXPECT().
					UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ any) (int64, error) {
						assert.Equal(t, 60, mod[appointmentModel.FieldDuration])
						assert.NotContains(t, mod, appointmentModel.FieldDate)
						assert.NotContains(t, mod, appointmentModel.FieldStartTime)

						return 1, nil
					})
			},
		},
		{
			name:      "empty request",
			req:       appointmentDto.UpdateAppointmentRequest{},
			setupMock: func() {},
			wantErr:   failure.ErrValidation,
		},
		{
			name: "blank phone after edit",
			req:  appointmentDto.UpdateAppointmentRequest{Phone: stringPtr("  ")},
			setupMock: func() {
				mockAppointmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantErr: failure.ErrValidation,
		},
		{
			name: "unknown service",
			req:  appointmentDto.UpdateAppointmentRequest{Service: stringPtr("massage")},
			setupMock: func() {
				mockAppointmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantErr: failure.ErrValidation,
		},
		{
			name: "appointment not found",
			req:  appointmentDto.UpdateAppointmentRequest{Name: stringPtr("Bea")},
			setupMock: func() {
				mockAppointmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointmentModel.Appointment{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name: "deleted between read and write",
			req:  appointmentDto.UpdateAppointmentRequest{Name: stringPtr("Bea")},
			setupMock: func() {
				mockAppointmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				mockAppointmentRepo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr: failure.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			svc := service.New(mockAppointmentRepo, mockSlotRepo, pgMocks.NewTransactor(true), nil, &config.Config{}, nil, mocks.NewOtel())

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

			res, err := svc.Edit(ctx, tt.req, existing.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2025-03-14", res.Date)
			assert.Equal(t, "09:45", res.StartTime)
			assert.Equal(t, "admin-1", res.ModifiedBy)
		})
	}
}

func TestBookingService_DeleteSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSlotRepo := slotMocks.NewMockSlotRepository(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   error
	}{
		{
			name: "free slot deleted",
			setupMock: func() {
				mockSlotRepo.EXPECT().DeleteUnbooked(gomock.Any(), "slot-1").Return(int64(1), nil)
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "booked slot kept",
			setupMock: func() {
				mockSlotRepo.EXPECT().DeleteUnbooked(gomock.Any(), "slot-1").Return(int64(0), nil)
				mockSlotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slotModel.Slot{ID: "slot-1", IsBooked: true}, nil)
			},
			wantErr: failure.ErrSlotInUse,
		},
		{
			name: "unknown slot",
			setupMock: func() {
				mockSlotRepo.EXPECT().DeleteUnbooked(gomock.Any(), "slot-1").Return(int64(0), nil)
				mockSlotRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(slotModel.Slot{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name: "store unavailable",
			setupMock: func() {
				mockSlotRepo.EXPECT().DeleteUnbooked(gomock.Any(), "slot-1").Return(int64(0), failure.StoreUnavailable(errors.New("timeout")))
			},
			wantErr: failure.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			svc := service.New(nil, mockSlotRepo, pgMocks.NewTransactor(true), nil, &config.Config{}, mockCache, mocks.NewOtel())

			err := svc.DeleteSlot(context.Background(), "slot-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
