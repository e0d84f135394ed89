package guest

import (
	"context"
	"net/http"
	"rozvoz/infras/otel"
	"rozvoz/internal/domains/guest/service"
	"rozvoz/shared/constant"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/failure"
	"rozvoz/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/guests", func(r chi.Router) {
		r.Get("/", handler.GetAll)
		r.Get("/{id}", handler.Get)
	})
}

// GetAll lists the restaurant's guests
// @Summary List guests
// @Description List the restaurant's guest records with pagination.
// @Tags Guests
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetGuestsResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/guests [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, restaurantID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one guest
// @Summary Get a guest
// @Description Get one guest record by id.
// @Tags Guests
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} dto.GuestResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/guests/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Get")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	id := chi.URLParam(r, "id")
	if id == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("guest id is required"))

		return
	}

	res, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func restaurantFromContext(ctx context.Context) (string, bool) {
	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	return restaurantID, restaurantID != constant.Empty
}
