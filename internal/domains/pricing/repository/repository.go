package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rozvoz/infras/otel"
	"rozvoz/infras/postgres"
	"rozvoz/internal/domains/pricing/model"
	gDto "rozvoz/shared/dto"
	gRepo "rozvoz/shared/repository"
)

type PriceConfig interface {
	Insert(ctx context.Context, model model.PriceConfig) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PriceConfig, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PriceConfig]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PriceConfig {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PriceConfig](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
