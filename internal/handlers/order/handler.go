package order

import (
	"context"
	"net/http"
	"rozvoz/infras/otel"
	"rozvoz/internal/domains/order/model/dto"
	"rozvoz/internal/domains/order/service"
	"rozvoz/shared/constant"
	"rozvoz/shared/failure"
	"rozvoz/shared/validator"
	"rozvoz/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DeliveryOrder
	otel    otel.Otel
}

func New(service service.DeliveryOrder, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", handler.ListByDay)
		r.Post("/", handler.Create)
		r.Post("/reorder", handler.Reorder)
		r.Patch("/{id}", handler.Update)
		r.Post("/{id}/delivered", handler.ToggleDelivered)
	})
}

// ListByDay lists one day's delivery orders with a summary
// @Summary List delivery orders for a day
// @Description List the restaurant's delivery orders for a calendar date in route order, with the day's aggregate summary.
// @Tags Orders
// @Produce json
// @Param date query string true "Delivery date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/orders [get]
func (handler *Handler) ListByDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListByDay")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.service.ListByDay(ctx, restaurantID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create creates a delivery order
// @Summary Create a delivery order
// @Description Create a delivery order, resolving the guest by phone and pricing it unless an explicit total is supplied.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/orders [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Update partially updates a delivery order
// @Summary Update a delivery order
// @Description Merge the supplied fields over the stored order; pricing inputs trigger a repricing from the merged view.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderRequest true "Update Order Request"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/orders/{id} [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	id := chi.URLParam(r, "id")
	if id == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("order id is required"))

		return
	}

	req := dto.UpdateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, restaurantID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleDelivered sets an order's delivered flag
// @Summary Toggle an order's delivered flag
// @Description Set the delivered flag for one order; the action is reversible.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.ToggleDeliveredRequest true "Toggle Delivered Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/orders/{id}/delivered [post]
func (handler *Handler) ToggleDelivered(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleDelivered")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	id := chi.URLParam(r, "id")
	if id == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("order id is required"))

		return
	}

	req := dto.ToggleDeliveredRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ToggleDelivered(ctx, restaurantID, id, *req.Delivered); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle delivered")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order delivered flag updated")

	response.WithMessage(w, http.StatusOK, "Order delivered flag updated")
}

// Reorder renumbers the route positions of the supplied orders
// @Summary Reorder a day's route
// @Description Assign route position 1..N to the supplied order ids in sequence.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.ReorderRequest true "Reorder Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/orders/reorder [post]
func (handler *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reorder")
	defer scope.End()

	restaurantID, ok := restaurantFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("No restaurant associated with this account"))

		return
	}

	req := dto.ReorderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, restaurantID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Route reordered successfully")

	response.WithMessage(w, http.StatusOK, "Route reordered successfully")
}

func restaurantFromContext(ctx context.Context) (string, bool) {
	restaurantID, _ := ctx.Value(constant.ContextKeyRestaurantID).(string)

	return restaurantID, restaurantID != constant.Empty
}
