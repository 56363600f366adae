package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
	"shop/pkg/logger"
)

type Service struct {
	log        serviceLogger
	repository Repository
	txManager  TxManager
	payment    PaymentConfirmer
	clock      Clock
	publisher  EventPublisher
}

func New(
	log serviceLogger,
	repository Repository,
	txManager TxManager,
	payment PaymentConfirmer,
	clock Clock,
	publisher EventPublisher,
) *Service {
	return &Service{
		log:        log.With(logger.NewField("component", "order-saga")),
		repository: repository,
		txManager:  txManager,
		payment:    payment,
		clock:      clock,
		publisher:  publisher,
	}
}

// CreateOrder places an order and settles it against the payment collaborator.
//
// The order and its lines are stored as PENDING in one transaction, the
// payment is requested, and the final status is stored in a second
// transaction. A declined payment is not an error: the order is returned with
// status FAILED. If the second write fails the order stays PENDING.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	total := calculateTotal(orderCreate.Lines)

	// Once validated the saga runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	pending, err := s.createPending(ctx, orderCreate, total)
	if err != nil {
		return nil, err
	}

	sagaLog := s.log.With(
		logger.NewField("order_id", pending.ID),
		logger.NewField("payer_id", pending.PayerID),
		logger.NewField("total", pending.Total.StringFixed(moneyScale)),
	)

	finalStatus := entities.OrderFailed
	if s.payment.Confirm(ctx, pending.Total, pending.PayerID) {
		finalStatus = entities.OrderConfirmed
	}

	order, err := s.finalize(ctx, pending.ID, finalStatus)
	if err != nil {
		OrdersCreatedTotal.WithLabelValues(entities.OrderPending.String()).Inc()
		sagaLog.With(
			logger.NewField("status", finalStatus.String()),
			logger.NewField("error", err),
		).Error("final order status not persisted, order left pending")
		return nil, err
	}

	OrdersCreatedTotal.WithLabelValues(order.Status.String()).Inc()
	sagaLog.With(
		logger.NewField("status", order.Status.String()),
	).Info("order settled")

	s.publishStatusChanged(ctx, sagaLog, order)

	return order, nil
}

func (s *Service) createPending(ctx context.Context, orderCreate entities.OrderCreate, total decimal.Decimal) (*entities.Order, error) {
	status := entities.OrderPending
	createdAt := s.clock.Now()
	orderModify := entities.OrderModify{
		PayerID:   &orderCreate.PayerID,
		Status:    &status,
		Total:     &total,
		CreatedAt: &createdAt,
		Lines:     orderCreate.Lines,
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repository.Create(ctx, orderModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create pending order: %w", ErrPersistence, err)
	}

	return order, nil
}

func (s *Service) finalize(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	if !entities.OrderPending.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, entities.OrderPending, status)
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.UpdateStatus(ctx, id, entities.OrderPending, status)
		if err != nil {
			return err
		}

		order, err = s.repository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: finalize order %d: %w", ErrPersistence, id, err)
	}

	return order, nil
}

func (s *Service) publishStatusChanged(ctx context.Context, log logger.Logger, order *entities.Order) {
	err := s.publisher.PublishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID: order.ID,
		PayerID: order.PayerID,
		Status:  order.Status,
		Total:   order.Total,
	})
	if err != nil {
		OrderEventsPublishFailedTotal.Inc()
		log.With(
			logger.NewField("error", err),
		).Warn("order status event not published")
	}
}

// ListOrders returns a page of orders, newest id first, each with its lines.
func (s *Service) ListOrders(ctx context.Context, pagination entities.Pagination) ([]entities.Order, error) {
	if !isValidPagination(pagination) {
		return nil, ErrInvalidPagination
	}

	var orders []entities.Order
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.repository.List(ctx, pagination)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %w", ErrPersistence, err)
	}

	return orders, nil
}

// CountStalePending counts orders still PENDING that were created more than
// staleAfter ago. Such orders lost their final status write.
func (s *Service) CountStalePending(ctx context.Context, staleAfter time.Duration) (int64, error) {
	if staleAfter <= 0 {
		return 0, ErrStaleThresholdRange
	}

	count, err := s.repository.CountPendingCreatedBefore(ctx, s.clock.Now().Add(-staleAfter))
	if err != nil {
		return 0, fmt.Errorf("%w: count stale pending orders: %w", ErrPersistence, err)
	}

	return count, nil
}
