//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_get_test
package cart_get

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
	GetCart(ctx context.Context, payerID string) ([]entities.CartItem, error)
}
