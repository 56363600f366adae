package entities

import "github.com/shopspring/decimal"

type PaymentStatusType string

const (
	PaymentSuccess PaymentStatusType = "success"
	PaymentFailed  PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type PaymentRequest struct {
	PayerID string
	Amount  decimal.Decimal
}

type PaymentResult struct {
	PayerID string
	Amount  decimal.Decimal
	Status  PaymentStatusType
}

func (r PaymentResult) Approved() bool {
	return r.Status == PaymentSuccess
}
