package reconcile

import (
	"net/http"

	"barbershop/infras/otel"
	"barbershop/internal/domains/booking/service"
	"barbershop/shared/constant"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes the manual consistency tools. Nothing here runs on a schedule.
type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reconcile", func(routerGroup chi.Router) {
		routerGroup.Post("/repair", handler.Repair)
		routerGroup.Get("/audit", handler.Audit)
	})
}

// Repair frees slots flagged booked without an appointment reference.
// @Summary Repair orphan slots
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[any] "Repaired count"
// @Router /v1/admin/reconcile/repair [post]
// @Security BearerAuth
func (handler *Handler) Repair(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Repair")
	defer scope.End()

	res, err := handler.service.RepairOrphans(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to repair orphan slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Audit reports every slot or appointment that breaks the booking invariants.
// @Summary Audit slot consistency
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[any] "Audit report"
// @Router /v1/admin/reconcile/audit [get]
// @Security BearerAuth
func (handler *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Audit")
	defer scope.End()

	res, err := handler.service.Audit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to audit slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
