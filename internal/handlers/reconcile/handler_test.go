package reconcile_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "barbershop/infras/otel/mocks"
	bookingMocks "barbershop/internal/domains/booking/mocks"
	"barbershop/internal/domains/booking/model/dto"
	"barbershop/internal/handlers/reconcile"
	"barbershop/shared/failure"
)

func newRouter(t *testing.T) (*bookingMocks.MockBooking, http.Handler) {
	t.Helper()

	booking := bookingMocks.NewMockBooking(gomock.NewController(t))
	handler := reconcile.New(booking, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return booking, router
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, nil))

	return recorder
}

func TestRepair(t *testing.T) {
	booking, router := newRouter(t)

	booking.EXPECT().RepairOrphans(gomock.Any()).Return(dto.RepairResponse{Repaired: 3}, nil)

	recorder := serve(router, http.MethodPost, "/v1/reconcile/repair")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"repaired":3}}`, recorder.Body.String())
}

func TestAudit(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(booking *bookingMocks.MockBooking)
		wantCode  int
		wantBody  []string
	}{
		{
			name: "issues reported",
			setupMock: func(booking *bookingMocks.MockBooking) {
				booking.EXPECT().Audit(gomock.Any()).Return(dto.AuditResponse{
					Total: 1,
					Issues: []dto.IssueResponse{{
						Kind:    "orphan_slot",
						SlotID:  "slot-1",
						Message: "slot is booked without an appointment",
					}},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"consistent":false`, `"slot_id":"slot-1"`},
		},
		{
			name: "store down",
			setupMock: func(booking *bookingMocks.MockBooking) {
				booking.EXPECT().Audit(gomock.Any()).Return(dto.AuditResponse{}, failure.StoreUnavailable(errors.New("dial tcp: connection refused")))
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: []string{`"kind":"store_unavailable"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, router := newRouter(t)
			tt.setupMock(booking)

			recorder := serve(router, http.MethodGet, "/v1/reconcile/audit")

			assert.Equal(t, tt.wantCode, recorder.Code)

			for _, want := range tt.wantBody {
				assert.Contains(t, recorder.Body.String(), want)
			}
		})
	}
}
