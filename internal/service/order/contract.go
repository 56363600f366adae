//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
	"shop/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatusType) error
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, pagination entities.Pagination) ([]entities.Order, error)
	CountPendingCreatedBefore(ctx context.Context, before time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentConfirmer asks the payment collaborator to charge amount to payerID.
// Any failure to get an approval is reported as false.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, amount decimal.Decimal, payerID string) bool
}

type Clock interface {
	Now() time.Time
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
