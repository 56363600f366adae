//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_orders_monitor_test
package pending_orders_monitor

import (
	"context"
	"time"

	"shop/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountStalePending(ctx context.Context, staleAfter time.Duration) (int64, error)
}
