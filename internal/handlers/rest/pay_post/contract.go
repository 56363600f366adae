//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pay_post_test
package pay_post

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
	Pay(ctx context.Context, request entities.PaymentRequest) (*entities.PaymentResult, error)
}
