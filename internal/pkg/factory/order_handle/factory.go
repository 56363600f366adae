package order_handle

import (
	"context"
	"fmt"

	"shop/internal/entities"
	"shop/internal/service/order_status"
)

type StatusHandlerFactory struct {
	cartService order_status.CartService
}

func NewStatusHandlerFactory(cartService order_status.CartService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		cartService: cartService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order_status.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed:
		return f.confirmedHandler, nil
	case entities.OrderFailed:
		return f.failedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order_status.ErrUndefinedStatus, status)
	}
}

// confirmedHandler empties the cart the payer just checked out.
func (f *StatusHandlerFactory) confirmedHandler(ctx context.Context, event entities.OrderStatusEvent) error {
	_, err := f.cartService.ClearCart(ctx, event.PayerID)
	if err != nil {
		return fmt.Errorf("clear cart of payer %s for confirmed order %d: %w", event.PayerID, event.OrderID, err)
	}
	return nil
}

// failedHandler keeps the cart so the payer can try again.
func (f *StatusHandlerFactory) failedHandler(context.Context, entities.OrderStatusEvent) error {
	return nil
}
