package appointment

import (
	"net/http"

	"barbershop/infras/otel"
	"barbershop/internal/domains/appointment/model/dto"
	"barbershop/internal/domains/appointment/service"
	bookingService "barbershop/internal/domains/booking/service"
	"barbershop/shared"
	"barbershop/shared/constant"
	"barbershop/shared/validator"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	booking bookingService.Booking
	otel    otel.Otel
}

func New(service service.Appointment, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointment)
		routerGroup.Delete("/{id}", handler.DeleteAppointment)
	})
}

// GetAppointments lists upcoming appointments.
// @Summary List upcoming appointments
// @Description Appointments from today onward ordered by date and time, optionally narrowed to one date.
// @Tags Admin
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	appointments, err := handler.service.GetUpcoming(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves one appointment.
// @Summary Get an appointment
// @Tags Admin
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get appointment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointment)
}

// UpdateAppointment edits name, phone or service. The linked slot is left as is.
// @Summary Edit an appointment
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/appointments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateAppointmentRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.booking.Edit(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update appointment")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Appointment updated by user " + user)

	response.WithJSON(w, http.StatusOK, appointment)
}

// DeleteAppointment deletes the appointment and frees its slot.
// @Summary Delete an appointment
// @Tags Admin
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message
// @Success 207 {object} response.Error "Appointment deleted, slot not freed"
// @Failure 404 {object} response.Error
// @Router /v1/admin/appointments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.booking.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete appointment")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Appointment deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment deleted successfully")
}
