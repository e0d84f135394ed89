//go:build wireinject
// +build wireinject

package di

import (
	"rozvoz/config"
	"rozvoz/infras/jwt"
	"rozvoz/infras/kafka"
	"rozvoz/infras/otel"
	"rozvoz/infras/postgres"
	"rozvoz/infras/redis"
	"rozvoz/permissions"
	"rozvoz/shared/cache"
	"rozvoz/transport/http"
	"rozvoz/transport/http/middleware"
	"rozvoz/transport/http/router"

	"github.com/google/wire"

	authService "rozvoz/internal/domains/auth/service"
	guestRepository "rozvoz/internal/domains/guest/repository"
	guestService "rozvoz/internal/domains/guest/service"
	orderRepository "rozvoz/internal/domains/order/repository"
	orderService "rozvoz/internal/domains/order/service"
	pricingRepository "rozvoz/internal/domains/pricing/repository"
	pricingService "rozvoz/internal/domains/pricing/service"
	userRepository "rozvoz/internal/domains/user/repository"

	authHandler "rozvoz/internal/handlers/auth"
	guestHandler "rozvoz/internal/handlers/guest"
	orderHandler "rozvoz/internal/handlers/order"
	pricingHandler "rozvoz/internal/handlers/pricing"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var domains = wire.NewSet(
	authDomain,
	guestDomain,
	pricingDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	pricingHandler.New,
	orderHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
