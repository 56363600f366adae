package order_status

import (
	"context"
	"fmt"

	"shop/internal/entities"
)

type Service struct {
	factory HandlerFactory
}

func New(factory HandlerFactory) *Service {
	return &Service{
		factory: factory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusEvent) error {
	if event.OrderID <= 0 || event.PayerID == "" {
		return fmt.Errorf("%w: order %d payer %q", ErrInvalidEvent, event.OrderID, event.PayerID)
	}

	handle, err := s.factory.GetHandler(event.Status)
	if err != nil {
		return err
	}

	err = handle(ctx, event)
	if err != nil {
		return fmt.Errorf("order %d %s: %w", event.OrderID, event.Status, err)
	}

	return nil
}
