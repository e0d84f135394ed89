package pricing

import (
	"context"
	"net/http"
	"rozvoz/infras/otel"
	"rozvoz/internal/domains/pricing/model/dto"
	"rozvoz/internal/domains/pricing/service"
	"rozvoz/shared/constant"
	"rozvoz/shared/failure"
	"rozvoz/shared/validator"
	"rozvoz/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PriceConfig
	otel    otel.Otel
}

func New(service service.PriceConfig, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/price-config", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Upsert)
	})
}

// Get returns the restaurant's delivery rate table
// @Summary Get the delivery price configuration
// @Description Get the restaurant's delivery rate table.
// @Tags Pricing
// @Produce json
// @Success 200 {object} dto.PriceConfigResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/price-config [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Get")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	res, err := handler.service.Get(ctx, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get price config")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Upsert replaces the restaurant's delivery rate table
// @Summary Upsert the delivery price configuration
// @Description Create or replace the restaurant's delivery rate table in one call.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.UpsertPriceConfigRequest true "Upsert Price Config Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/price-config [put]
func (handler *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upsert")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	req := dto.UpsertPriceConfigRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, restaurantID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert price config")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Price config saved successfully")

	response.WithMessage(w, http.StatusOK, "Price config saved successfully")
}

func restaurantFromContext(ctx context.Context) (string, bool) {
	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	return restaurantID, restaurantID != constant.Empty
}
