package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rozvoz/config"
	"rozvoz/infras/otel"
	"rozvoz/internal/domains/guest/model"
	"rozvoz/internal/domains/guest/model/dto"
	"rozvoz/internal/domains/guest/repository"
	"rozvoz/shared"
	"rozvoz/shared/cache"
	"rozvoz/shared/constant"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/failure"
	gModel "rozvoz/shared/model"
	"rozvoz/shared/phone"
	"rozvoz/shared/timezone"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

// ResolveRequest carries the identifying inputs for guest resolution. All
// fields except RestaurantID are optional.
type ResolveRequest struct {
	ExplicitGuestID *string
	RawPhone        *string
	Name            *string
	Email           *string
	Address         *string
}

type Guest interface {
	// Resolve finds or creates the guest behind a delivery order. It returns
	// nil when no usable phone or explicit id was supplied; such orders are
	// legitimately guest-less.
	Resolve(ctx context.Context, restaurantID string, req ResolveRequest) (*string, error)
	GetAll(ctx context.Context, restaurantID string, req gDto.QueryParams) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, restaurantID string, req gDto.QueryParams) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, restaurantID string, req ResolveRequest) (res *string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.ExplicitGuestID != nil && *req.ExplicitGuestID != constant.Empty {
		return req.ExplicitGuestID, nil
	}

	if req.RawPhone == nil || *req.RawPhone == constant.Empty {
		return nil, nil
	}

	raw := *req.RawPhone

	normalized := phone.Normalize(raw)
	if normalized == constant.Empty {
		// No digits at all; an empty normalized phone is never a matching key.
		return nil, nil
	}

	existing, err := s.repo.Get(ctx, phoneMatchFilter(restaurantID, raw, normalized))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up guest by phone")

		return nil, fmt.Errorf("failed to look up guest by phone: %w", err)
	}

	if existing.ID != constant.Empty {
		return &existing.ID, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	guest := model.Guest{
		ID:              uuid.NewString(),
		RestaurantID:    restaurantID,
		Name:            req.Name,
		Phone:           &normalized,
		NormalizedPhone: &normalized,
		Email:           req.Email,
		Address:         req.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return &guest.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, restaurantID string, req gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := restaurantFilter(restaurantID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, restaurantID, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, restaurantID string, req gDto.QueryParams) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := restaurantFilter(restaurantID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, restaurantID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	filter := restaurantFilter(restaurantID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldID,
		Operator: gDto.FilterOperatorEq,
		Value:    id,
		Table:    model.TableName,
	})

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func restaurantFilter(restaurantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}
}

// phoneMatchFilter matches a guest of the restaurant whose stored phone equals
// the raw phone as typed or the normalized phone, or whose normalized phone
// equals the normalized phone. The raw comparison supports guests stored
// before phone normalization existed.
func phoneMatchFilter(restaurantID, raw, normalized string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "phone_raw",
						Field:    model.FieldPhone,
						Operator: gDto.FilterOperatorEq,
						Value:    raw,
						Table:    model.TableName,
					},
					gDto.Filter{
						ArgName:  "phone_normalized",
						Field:    model.FieldPhone,
						Operator: gDto.FilterOperatorEq,
						Value:    normalized,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldNormalizedPhone,
						Operator: gDto.FilterOperatorEq,
						Value:    normalized,
						Table:    model.TableName,
					},
				},
			},
		},
	}
}
