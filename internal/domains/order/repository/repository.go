package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"rozvoz/infras/otel"
	"rozvoz/infras/postgres"
	"rozvoz/internal/domains/order/model"
	"rozvoz/shared/constant"
	gDto "rozvoz/shared/dto"
	"rozvoz/shared/logger"
	gRepo "rozvoz/shared/repository"
)

type DeliveryOrder interface {
	Insert(ctx context.Context, model model.DeliveryOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DeliveryOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DeliveryOrder, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	MaxRoutePosition(ctx context.Context, restaurantID string, day time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DeliveryOrder]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DeliveryOrder {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DeliveryOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// MaxRoutePosition returns the highest route position among the restaurant's
// orders for the given day, 0 when the day has none yet.
func (repo *repositoryImpl) MaxRoutePosition(ctx context.Context, restaurantID string, day time.Time) (max int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.MaxRoutePosition", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(MAX(%s), 0) FROM %s WHERE %s = :restaurant_id AND %s >= :day_start AND %s < :day_end",
		model.FieldRoutePosition, model.TableName, model.FieldRestaurantID, model.FieldDeliveryDate, model.FieldDeliveryDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"restaurant_id": restaurantID,
		"day_start":     day,
		"day_end":       day.AddDate(0, 0, 1),
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get max route position (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &max, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get max route position (%s): %w", model.EntityName, err)
	}

	return max, nil
}
