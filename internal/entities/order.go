package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64
	PayerID   string
	Status    OrderStatusType
	Total     decimal.Decimal
	CreatedAt time.Time
	Lines     []OrderLine
}

type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Amount is the line contribution to the order total.
func (l OrderLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderConfirmed OrderStatusType = "CONFIRMED"
	OrderFailed    OrderStatusType = "FAILED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderConfirmed || s == OrderFailed
}

// CanTransitionTo reports whether an order may move from s to next.
// Only PENDING orders move, and only to a terminal status.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	return s == OrderPending && next.IsTerminal()
}

// OrderLineCreate is a requested line, before the order exists.
type OrderLineCreate struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

type OrderCreate struct {
	PayerID string
	Lines   []OrderLineCreate
}

// OrderModify carries the fields persisted by write one of the order saga.
type OrderModify struct {
	PayerID   *string
	Status    *OrderStatusType
	Total     *decimal.Decimal
	CreatedAt *time.Time
	Lines     []OrderLineCreate
}

type Pagination struct {
	Limit  uint64
	Offset uint64
}

const (
	DefaultOrdersLimit  uint64 = 50
	DefaultOrdersOffset uint64 = 0
)

// OrderStatusEvent is published after an order reaches its final status.
type OrderStatusEvent struct {
	OrderID int64
	PayerID string
	Status  OrderStatusType
	Total   decimal.Decimal
}
