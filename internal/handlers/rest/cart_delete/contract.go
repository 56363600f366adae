//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_delete_test
package cart_delete

import (
	"context"

	"shop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ClearCart(ctx context.Context, payerID string) (int64, error)
}
