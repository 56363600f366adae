//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_test
package order_status

import (
	"context"

	"shop/internal/entities"
)

// ExecuteFn reacts to one settled order.
type ExecuteFn func(ctx context.Context, event entities.OrderStatusEvent) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
}

type CartService interface {
	ClearCart(ctx context.Context, payerID string) (int64, error)
}
