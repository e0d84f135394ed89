package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"rozvoz/config"
	"rozvoz/infras/otel"
	"rozvoz/internal/domains/pricing/model"
	"rozvoz/internal/domains/pricing/model/dto"
	"rozvoz/internal/domains/pricing/repository"
	"rozvoz/shared"
	"rozvoz/shared/cache"
	"rozvoz/shared/constant"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/failure"
	"rozvoz/shared/timezone"
)

const (
	cacheGetPriceConfig = "price_config:get"
)

var hundred = decimal.NewFromInt(100)

// ComputeInput carries everything the rate table is applied to.
type ComputeInput struct {
	Counts         model.ItemCounts
	PackagingCount int
	IsSenior       bool
}

type PriceConfig interface {
	// ComputeTotal prices an order against the restaurant's rate table. When
	// the restaurant has no rate table the result is null, never zero: the
	// order is unpriced, not free.
	ComputeTotal(ctx context.Context, restaurantID string, in ComputeInput) (decimal.NullDecimal, error)
	Get(ctx context.Context, restaurantID string) (dto.PriceConfigResponse, error)
	Upsert(ctx context.Context, restaurantID string, req dto.UpsertPriceConfigRequest) error
}

type serviceImpl struct {
	repo  repository.PriceConfig
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PriceConfig, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PriceConfig {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ComputeTotal(ctx context.Context, restaurantID string, in ComputeInput) (res decimal.NullDecimal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ComputeTotal")
	defer scope.End()
	defer scope.TraceIfError(err)

	conf, err := s.getConfig(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load price config")

		return res, fmt.Errorf("failed to load price config: %w", err)
	}

	if conf.ID == constant.Empty {
		return decimal.NullDecimal{}, nil
	}

	total := decimal.Zero.
		Add(unit(conf.SoupPrice, in.Counts.Soup)).
		Add(unit(conf.Menu1Price, in.Counts.Menu1)).
		Add(unit(conf.Menu2Price, in.Counts.Menu2)).
		Add(unit(conf.Menu3Price, in.Counts.Menu3)).
		Add(unit(conf.Menu4Price, in.Counts.Menu4)).
		Add(unit(conf.BusinessMenuPrice, in.Counts.BusinessMenu)).
		Add(unit(conf.DessertPrice, in.Counts.Dessert)).
		Add(conf.PackagingPrice.Mul(decimal.NewFromInt(int64(in.PackagingCount))))

	// The senior discount applies to the packaging-inclusive total, keeping
	// the calculation auditable as a single pass.
	if in.IsSenior && conf.SeniorDiscountPct > 0 {
		discount := total.Mul(decimal.NewFromInt(int64(conf.SeniorDiscountPct))).Div(hundred)
		total = total.Sub(discount)
	}

	return decimal.NewNullDecimal(total), nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID string) (res dto.PriceConfigResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	conf, err := s.getConfig(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get price config")

		return res, fmt.Errorf("failed to get price config: %w", err)
	}

	if conf.ID == constant.Empty {
		return res, failure.NotFound("price config not found") // nolint:wrapcheck
	}

	res.FromModel(conf)

	return res, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, restaurantID string, req dto.UpsertPriceConfigRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := restaurantFilter(restaurantID)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if price config exists")

		return fmt.Errorf("failed to check if price config exists: %w", err)
	}

	if exists {
		// An explicit column map, not TransformFields: setting a unit price
		// back to zero is a legitimate rate change and must not be skipped.
		if err = s.repo.Update(ctx, updateColumns(req, user), filter); err != nil {
			log.Error().Err(err).Msg("failed to update price config")

			return fmt.Errorf("failed to update price config: %w", err)
		}
	} else if err = s.repo.Insert(ctx, req.ToModel(restaurantID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create price config")

		return fmt.Errorf("failed to create price config: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPriceConfig, restaurantID)); err != nil {
			log.Error().Err(err).Msg("failed to delete price config from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) getConfig(ctx context.Context, restaurantID string) (conf model.PriceConfig, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetPriceConfig, restaurantID)

	err = s.cache.Get(ctx, cacheKey, &conf)
	if err == nil {
		return conf, nil
	}

	conf, err = s.repo.Get(ctx, restaurantFilter(restaurantID))
	if err != nil {
		return conf, err //nolint:wrapcheck
	}

	if conf.ID != constant.Empty {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, conf, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save price config to cache")
			}
		}()
	}

	return conf, nil
}

func unit(price decimal.Decimal, count *int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(model.CountOf(count))))
}

func updateColumns(req dto.UpsertPriceConfigRequest, user string) map[string]any {
	return map[string]any{
		model.FieldSoupPrice:         req.SoupPrice,
		model.FieldMenu1Price:        req.Menu1Price,
		model.FieldMenu2Price:        req.Menu2Price,
		model.FieldMenu3Price:        req.Menu3Price,
		model.FieldMenu4Price:        req.Menu4Price,
		model.FieldBusinessMenuPrice: req.BusinessMenuPrice,
		model.FieldDessertPrice:      req.DessertPrice,
		model.FieldPackagingPrice:    req.PackagingPrice,
		model.FieldSeniorDiscountPct: req.SeniorDiscountPct,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     user,
	}
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
