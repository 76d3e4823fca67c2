package booking

import (
	"net/http"

	"barbershop/infras/otel"
	appointmentDto "barbershop/internal/domains/appointment/model/dto"
	appointmentService "barbershop/internal/domains/appointment/service"
	availabilityService "barbershop/internal/domains/availability/service"
	bookingService "barbershop/internal/domains/booking/service"
	slotService "barbershop/internal/domains/slot/service"
	"barbershop/shared/constant"
	"barbershop/shared/validator"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the public booking flow: catalog, open dates, open times and booking.
type Handler struct {
	booking      bookingService.Booking
	appointment  appointmentService.Appointment
	availability availabilityService.Availability
	slot         slotService.Slot
	otel         otel.Otel
}

func New(
	booking bookingService.Booking,
	appointment appointmentService.Appointment,
	availability availabilityService.Availability,
	slot slotService.Slot,
	otel otel.Otel,
) Handler {
	return Handler{
		booking:      booking,
		appointment:  appointment,
		availability: availability,
		slot:         slot,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/services", handler.GetServices)
	router.Get("/dates", handler.GetOpenDates)
	router.Get("/dates/{date}/times", handler.GetOpenTimes)
	router.Post("/appointments", handler.CreateAppointment)
}

// GetServices lists the bookable services.
// @Summary List services
// @Description Service catalog with duration and price in CHF.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]appointmentDto.ServiceResponse]
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.appointment.Services(ctx))
}

// GetOpenDates lists upcoming dates that have an availability window.
// @Summary List open dates
// @Description Distinct dates from today onward with an availability window, ascending.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[any] "Open dates"
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dates [get]
func (handler *Handler) GetOpenDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOpenDates")
	defer scope.End()

	dates, err := handler.availability.OpenDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get open dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dates)
}

// GetOpenTimes lists the unbooked start times of a date.
// @Summary List open times
// @Description Distinct unbooked slot start times of a date, sorted, formatted HH:MM.
// @Tags Booking
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[any] "Open times"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dates/{date}/times [get]
func (handler *Handler) GetOpenTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOpenTimes")
	defer scope.End()

	date := chi.URLParam(r, constant.RequestParamDate)

	times, err := handler.slot.OpenTimes(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get open times")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, times)
}

// CreateAppointment books the slot at the requested date and time.
// @Summary Book an appointment
// @Description Books a free slot. Rejected when the slot does not exist or is already booked.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body appointmentDto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} response.Data[appointmentDto.AppointmentResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := appointmentDto.CreateAppointmentRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.booking.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Str("time", req.Time).Msg("failed to book appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment booked " + appointment.ID)

	response.WithJSON(w, http.StatusCreated, appointment)
}
