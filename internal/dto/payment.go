package dto

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	PayerID string           `json:"payer_id"`
	Amount  *decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	Status  string `json:"status"`
	PayerID string `json:"payer_id"`
	Amount  string `json:"amount"`
}
