package availability

import (
	"net/http"

	"barbershop/infras/otel"
	"barbershop/internal/domains/availability/model/dto"
	"barbershop/internal/domains/availability/service"
	"barbershop/shared"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"
	"barbershop/shared/validator"
	"barbershop/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAvailabilities)
		routerGroup.Post("/", handler.CreateAvailability)
		routerGroup.Delete("/{id}", handler.DeleteAvailability)
	})
}

// GetAvailabilities lists availability windows.
// @Summary List availability windows
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetAvailabilitiesResponse]
// @Router /v1/admin/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	windows, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability windows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, windows)
}

// CreateAvailability stores a window and generates its slots.
// @Summary Create an availability window
// @Description Stores the window and generates consecutive slots of the given interval (default 45 minutes).
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Window"
// @Success 201 {object} response.Data[dto.CreateAvailabilityResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/availability [post]
// @Security BearerAuth
func (handler *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAvailability")
	defer scope.End()

	req := dto.CreateAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	window, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability window")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Availability window created by user " + user)

	response.WithJSON(w, http.StatusCreated, window)
}

// DeleteAvailability deletes a window. Slots generated from it are kept.
// @Summary Delete an availability window
// @Tags Admin
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/admin/availability/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete availability window")

		response.WithError(w, err)

		return
	}

	user := shared.Actor(ctx)
	scope.AddEvent("Availability window deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability deleted successfully")
}
