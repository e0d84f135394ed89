package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"rozvoz/config"
	"rozvoz/infras/kafka"
	"rozvoz/infras/otel"
	guestService "rozvoz/internal/domains/guest/service"
	"rozvoz/internal/domains/order/model"
	"rozvoz/internal/domains/order/model/dto"
	"rozvoz/internal/domains/order/repository"
	pricingModel "rozvoz/internal/domains/pricing/model"
	pricingService "rozvoz/internal/domains/pricing/service"
	"rozvoz/shared"
	"rozvoz/shared/cache"
	"rozvoz/shared/constant"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/failure"
	"rozvoz/shared/timezone"
)

const (
	cacheDayOrders = "order:day"

	eventOrderCreated          = "order.created"
	eventOrderDeliveredChanged = "order.delivered_changed"
)

// orderEvent is the payload published to the order event feed consumed by
// downstream bookkeeping.
type orderEvent struct {
	Type         string `json:"type"`
	OrderID      string `json:"order_id"`
	RestaurantID string `json:"restaurant_id"`
	DeliveryDate string `json:"delivery_date"`
	Delivered    bool   `json:"delivered"`
}

type DeliveryOrder interface {
	// ListByDay returns the restaurant's orders for one calendar day in route
	// order together with the day's aggregate summary.
	ListByDay(ctx context.Context, restaurantID, date string) (dto.ListOrdersResponse, error)
	Create(ctx context.Context, restaurantID string, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	Update(ctx context.Context, restaurantID, id string, req dto.UpdateOrderRequest) (dto.OrderResponse, error)
	ToggleDelivered(ctx context.Context, restaurantID, id string, delivered bool) error
	Reorder(ctx context.Context, restaurantID string, req dto.ReorderRequest) error
}

type serviceImpl struct {
	repo    repository.DeliveryOrder
	guest   guestService.Guest
	pricing pricingService.PriceConfig
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	otel    otel.Otel
}

func New(
	repo repository.DeliveryOrder,
	guest guestService.Guest,
	pricing pricingService.PriceConfig,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) DeliveryOrder {
	return &serviceImpl{
		repo:    repo,
		guest:   guest,
		pricing: pricing,
		cfg:     cfg,
		cache:   cache,
		kafka:   kafkaClient,
		otel:    otel,
	}
}

func (s *serviceImpl) ListByDay(ctx context.Context, restaurantID, date string) (res dto.ListOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := parseDay(date)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheDayOrders, restaurantID, day.Format(constant.DayFormat))

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldRoutePosition + " " + gDto.SortDirAsc + ", " + model.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	orders, err := s.repo.GetAll(ctx, params, dayFilter(restaurantID, day))
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, restaurantID string, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := parseDay(req.DeliveryDate)
	if err != nil {
		return res, err
	}

	guestID, err := s.guest.Resolve(ctx, restaurantID, guestService.ResolveRequest{
		ExplicitGuestID: req.GuestID,
		RawPhone:        req.Phone,
		Name:            req.Name,
		Email:           req.Email,
		Address:         req.Address,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve guest")

		return res, fmt.Errorf("failed to resolve guest: %w", err)
	}

	totalPrice, err := s.resolvePrice(ctx, restaurantID, req.TotalPrice, req.ItemCounts, req.PackagingCount, req.IsSenior)
	if err != nil {
		return res, err
	}

	maxPosition, err := s.repo.MaxRoutePosition(ctx, restaurantID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get max route position")

		return res, fmt.Errorf("failed to get max route position: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	order := req.ToModel(restaurantID, guestID, day, maxPosition+1, totalPrice, user)

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	s.afterMutation(ctx, order, eventOrderCreated)
	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, restaurantID, id string, req dto.UpdateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := idFilter(restaurantID, id)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if existing.ID == constant.Empty {
		return res, failure.NotFound("order not found") // nolint:wrapcheck
	}

	merged := mergeOrder(existing, req)
	columns := updateColumns(req)

	// Repricing works off the merged view: a new value when supplied, the
	// stored one otherwise. A request touching no pricing input keeps the
	// stored total as-is.
	if req.TotalPrice != nil || req.TouchesPricing() {
		merged.TotalPrice, err = s.resolvePrice(ctx, restaurantID, req.TotalPrice, merged.ItemCounts, merged.PackagingCount, merged.IsSenior)
		if err != nil {
			return res, err
		}

		columns[model.FieldTotalPrice] = merged.TotalPrice
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	merged.ModifiedAt = timezone.Now()
	merged.ModifiedBy = user
	columns[constant.FieldModifiedAt] = merged.ModifiedAt
	columns[constant.FieldModifiedBy] = user

	if err = s.repo.Update(ctx, columns, filter); err != nil {
		log.Error().Err(err).Msg("failed to update order")

		return res, fmt.Errorf("failed to update order: %w", err)
	}

	s.invalidateDayCache(ctx, restaurantID)
	res.FromModel(merged)

	return res, nil
}

func (s *serviceImpl) ToggleDelivered(ctx context.Context, restaurantID, id string, delivered bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleDelivered")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := idFilter(restaurantID, id)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("order not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	columns := map[string]any{
		model.FieldDelivered:     delivered,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, columns, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle delivered")

		return fmt.Errorf("failed to toggle delivered: %w", err)
	}

	existing.Delivered = delivered
	s.afterMutation(ctx, existing, eventOrderDeliveredChanged)

	return nil
}

func (s *serviceImpl) Reorder(ctx context.Context, restaurantID string, req dto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.OrderIDs) == 0 {
		return failure.BadRequestFromString("order_ids must not be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	// Positions are applied concurrently as one logical batch; ids outside
	// the restaurant match no row and are skipped.
	group, groupCtx := errgroup.WithContext(ctx)

	for index, orderID := range req.OrderIDs {
		columns := map[string]any{
			model.FieldRoutePosition: index + 1,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		filter := idFilter(restaurantID, orderID)

		group.Go(func() error {
			return s.repo.Update(groupCtx, columns, filter)
		})
	}

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to reorder orders")

		return fmt.Errorf("failed to reorder orders: %w", err)
	}

	s.invalidateDayCache(ctx, restaurantID)

	return nil
}

// resolvePrice returns the explicit override when one is supplied, otherwise
// consults the pricing engine.
func (s *serviceImpl) resolvePrice(ctx context.Context, restaurantID string, override *decimal.Decimal, counts pricingModel.ItemCounts, packagingCount int, isSenior bool) (decimal.NullDecimal, error) {
	if override != nil {
		return decimal.NewNullDecimal(*override), nil
	}

	totalPrice, err := s.pricing.ComputeTotal(ctx, restaurantID, pricingService.ComputeInput{
		Counts:         counts,
		PackagingCount: packagingCount,
		IsSenior:       isSenior,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to compute total price")

		return decimal.NullDecimal{}, fmt.Errorf("failed to compute total price: %w", err)
	}

	return totalPrice, nil
}

func (s *serviceImpl) afterMutation(ctx context.Context, order model.DeliveryOrder, eventType string) {
	s.invalidateDayCache(ctx, order.RestaurantID)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: order.ID,
			Value: orderEvent{
				Type:         eventType,
				OrderID:      order.ID,
				RestaurantID: order.RestaurantID,
				DeliveryDate: order.DeliveryDate.Format(constant.DayFormat),
				Delivered:    order.Delivered,
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.OrderEvents, message); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish order event")
		}
	}()
}

func (s *serviceImpl) invalidateDayCache(ctx context.Context, restaurantID string) {
	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheDayOrders, restaurantID))
}

func parseDay(date string) (time.Time, error) {
	if date == constant.Empty {
		return time.Time{}, failure.BadRequestFromString("delivery date is required") // nolint:wrapcheck
	}

	day, err := time.Parse(constant.DayFormat, date)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("delivery date must be formatted as "+constant.DayFormat) // nolint:wrapcheck
	}

	return day, nil
}

func mergeOrder(existing model.DeliveryOrder, req dto.UpdateOrderRequest) model.DeliveryOrder {
	merged := existing

	if req.GuestID != nil {
		merged.GuestID = req.GuestID
	}

	if req.Phone != nil {
		merged.Phone = req.Phone
	}

	if req.Address != nil {
		merged.Address = req.Address
	}

	if req.Place != nil {
		merged.Place = req.Place
	}

	if req.Note != nil {
		merged.Note = req.Note
	}

	if req.Soup != nil {
		merged.Soup = req.Soup
	}

	if req.Menu1 != nil {
		merged.Menu1 = req.Menu1
	}

	if req.Menu2 != nil {
		merged.Menu2 = req.Menu2
	}

	if req.Menu3 != nil {
		merged.Menu3 = req.Menu3
	}

	if req.Menu4 != nil {
		merged.Menu4 = req.Menu4
	}

	if req.BusinessMenu != nil {
		merged.BusinessMenu = req.BusinessMenu
	}

	if req.Dessert != nil {
		merged.Dessert = req.Dessert
	}

	if req.PackagingCount != nil {
		merged.PackagingCount = *req.PackagingCount
	}

	if req.IsSenior != nil {
		merged.IsSenior = *req.IsSenior
	}

	if req.RoutePosition != nil {
		merged.RoutePosition = *req.RoutePosition
	}

	if req.Delivered != nil {
		merged.Delivered = *req.Delivered
	}

	return merged
}

func updateColumns(req dto.UpdateOrderRequest) map[string]any {
	columns := map[string]any{}

	if req.GuestID != nil {
		columns[model.FieldGuestID] = *req.GuestID
	}

	if req.Phone != nil {
		columns[model.FieldPhone] = *req.Phone
	}

	if req.Address != nil {
		columns[model.FieldAddress] = *req.Address
	}

	if req.Place != nil {
		columns[model.FieldPlace] = *req.Place
	}

	if req.Note != nil {
		columns[model.FieldNote] = *req.Note
	}

	if req.Soup != nil {
		columns[pricingModel.FieldSoupCount] = *req.Soup
	}

	if req.Menu1 != nil {
		columns[pricingModel.FieldMenu1Count] = *req.Menu1
	}

	if req.Menu2 != nil {
		columns[pricingModel.FieldMenu2Count] = *req.Menu2
	}

	if req.Menu3 != nil {
		columns[pricingModel.FieldMenu3Count] = *req.Menu3
	}

	if req.Menu4 != nil {
		columns[pricingModel.FieldMenu4Count] = *req.Menu4
	}

	if req.BusinessMenu != nil {
		columns[pricingModel.FieldBusinessMenuCount] = *req.BusinessMenu
	}

	if req.Dessert != nil {
		columns[pricingModel.FieldDessertCount] = *req.Dessert
	}

	if req.PackagingCount != nil {
		columns[model.FieldPackagingCount] = *req.PackagingCount
	}

	if req.IsSenior != nil {
		columns[model.FieldIsSenior] = *req.IsSenior
	}

	if req.RoutePosition != nil {
		columns[model.FieldRoutePosition] = *req.RoutePosition
	}

	if req.Delivered != nil {
		columns[model.FieldDelivered] = *req.Delivered
	}

	return columns
}

func idFilter(restaurantID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}
}

func dayFilter(restaurantID string, day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_start",
				Field:    model.FieldDeliveryDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    day,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    model.FieldDeliveryDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day.AddDate(0, 0, 1).Add(-time.Second),
				Table:    model.TableName,
			},
		},
	}
}
