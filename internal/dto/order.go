package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderLineCreate struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type OrderCreate struct {
	PayerID string            `json:"payer_id"`
	Lines   []OrderLineCreate `json:"lines"`
}

type OrderLine struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type Order struct {
	ID        int64       `json:"id"`
	PayerID   string      `json:"payer_id"`
	Status    string      `json:"status"`
	Total     string      `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Lines     []OrderLine `json:"lines"`
}

// OrderStatusChanged is the message published after an order is settled.
type OrderStatusChanged struct {
	OrderID int64  `json:"order_id"`
	PayerID string `json:"payer_id"`
	Status  string `json:"status"`
	Total   string `json:"total"`
}
