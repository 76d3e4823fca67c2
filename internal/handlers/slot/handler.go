package slot

import (
	"net/http"

	"barbershop/infras/otel"
	bookingService "barbershop/internal/domains/booking/service"
	"barbershop/internal/domains/slot/service"
	"barbershop/shared"
	"barbershop/shared/constant"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Slot
	booking bookingService.Booking
	otel    otel.Otel
}

func New(service service.Slot, booking bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSlots)
		routerGroup.Post("/{id}/release", handler.ReleaseSlot)
		routerGroup.Delete("/{id}", handler.DeleteSlot)
	})
}

// GetSlots lists the slots of a date with the linked customer.
// @Summary List slots of a date
// @Tags Admin
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[any] "Slots with customer"
// @Failure 400 {object} response.Error
// @Router /v1/admin/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	slots, err := handler.service.GetByDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

// ReleaseSlot deletes the appointment linked to the slot and frees it.
// @Summary Release a slot
// @Tags Admin
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Message
// @Success 207 {object} response.Error "Appointment deleted, slot not freed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/slots/{id}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.booking.Release(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to release slot")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Slot released by user " + user)

	response.WithMessage(w, http.StatusOK, "Slot released successfully")
}

// DeleteSlot deletes an unbooked slot.
// @Summary Delete a free slot
// @Tags Admin
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot is booked"
// @Router /v1/admin/slots/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.booking.DeleteSlot(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete slot")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Slot deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Slot deleted successfully")
}
