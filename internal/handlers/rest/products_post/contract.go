//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=products_post_test
package products_post

import (
	"context"

	"shop/internal/entities"
	"shop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
}
