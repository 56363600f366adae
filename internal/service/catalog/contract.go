//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"
	"time"

	"shop/internal/entities"
	"shop/pkg/logger"
)

type Repository interface {
	GetAll(ctx context.Context) ([]entities.Product, error)
	Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache stores serialized product lists. Get reports a miss with ok == false.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
