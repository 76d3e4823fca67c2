package slot_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "barbershop/infras/otel/mocks"
	bookingMocks "barbershop/internal/domains/booking/mocks"
	slotMocks "barbershop/internal/domains/slot/mocks"
	"barbershop/internal/domains/slot/model/dto"
	"barbershop/internal/handlers/slot"
	"barbershop/shared/failure"
)

type fixture struct {
	service *slotMocks.MockSlot
	booking *bookingMocks.MockBooking
	router  http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		service: slotMocks.NewMockSlot(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
	}

	handler := slot.New(f.service, f.booking, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)
	f.router = router

	return f
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader("")))

	return recorder
}

func TestGetSlots(t *testing.T) {
	f := newFixture(t)

	appointmentID := "appt-1"
	customer := "Nina Keller"

	f.service.EXPECT().GetByDate(gomock.Any(), "2026-11-02").Return(dto.GetSlotsResponse{
		Date: "2026-11-02",
		Slots: []dto.SlotResponse{{
			ID:            "slot-1",
			Date:          "2026-11-02",
			StartTime:     "09:00",
			EndTime:       "09:45",
			IsBooked:      true,
			AppointmentID: &appointmentID,
			CustomerName:  &customer,
		}},
	}, nil)

	recorder := serve(f.router, http.MethodGet, "/v1/slots?date=2026-11-02")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"customer_name":"Nina Keller"`)
	assert.Contains(t, recorder.Body.String(), `"is_booked":true`)
}

func TestReleaseSlot(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantBody  []string
	}{
		{
			name: "released",
			setupMock: func(f fixture) {
				f.booking.EXPECT().Release(gomock.Any(), "slot-1").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"message":"Slot released successfully"`},
		},
		{
			name: "nothing to release",
			setupMock: func(f fixture) {
				f.booking.EXPECT().Release(gomock.Any(), "slot-1").Return(failure.BadRequestFromString("no appointment linked to this slot"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: []string{`"kind":"validation"`, "no appointment linked"},
		},
		{
			name: "unknown slot",
			setupMock: func(f fixture) {
				f.booking.EXPECT().Release(gomock.Any(), "slot-1").Return(failure.NotFound("slot not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: []string{`"kind":"not_found"`},
		},
		{
			name: "appointment gone, slot still booked",
			setupMock: func(f fixture) {
				f.booking.EXPECT().Release(gomock.Any(), "slot-1").Return(&failure.PartialWrite{
					Operation:     "release",
					AppointmentID: "appt-1",
					SlotID:        "slot-1",
					Err:           errors.New("connection reset"),
				})
			},
			wantCode: failure.StatusPartialWrite,
			wantBody: []string{`"kind":"partial_write"`, `"operation":"release"`, `"slot_id":"slot-1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			recorder := serve(f.router, http.MethodPost, "/v1/slots/slot-1/release")

			assert.Equal(t, tt.wantCode, recorder.Code)

			for _, want := range tt.wantBody {
				assert.Contains(t, recorder.Body.String(), want)
			}
		})
	}
}

func TestDeleteSlot(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantBody  string
	}{
		{
			name: "deleted",
			setupMock: func(f fixture) {
				f.booking.EXPECT().DeleteSlot(gomock.Any(), "slot-1").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"message":"Slot deleted successfully"`,
		},
		{
			name: "still booked",
			setupMock: func(f fixture) {
				f.booking.EXPECT().DeleteSlot(gomock.Any(), "slot-1").Return(failure.SlotInUse("slot is booked, release it first"))
			},
			wantCode: http.StatusConflict,
			wantBody: `"kind":"slot_in_use"`,
		},
		{
			name: "driver error stays internal",
			setupMock: func(f fixture) {
				f.booking.EXPECT().DeleteSlot(gomock.Any(), "slot-1").Return(errors.New("pq: syntax error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `"error":"internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			recorder := serve(f.router, http.MethodDelete, "/v1/slots/slot-1")

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}
