package payment

import (
	"context"
	"math/rand/v2"

	"shop/internal/entities"
	"shop/pkg/logger"
)

// Decider simulates a payment provider: each charge is approved with a fixed
// probability.
type Decider struct {
	log          serviceLogger
	approvalRate float64
	source       RandomSource
}

func New(log serviceLogger, approvalRate float64, source RandomSource) *Decider {
	return &Decider{
		log:          log.With(logger.NewField("component", "payment-decider")),
		approvalRate: approvalRate,
		source:       source,
	}
}

func (d *Decider) Pay(ctx context.Context, request entities.PaymentRequest) (*entities.PaymentResult, error) {
	if request.PayerID == "" {
		return nil, ErrMissingPayerID
	}
	if request.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	status := entities.PaymentFailed
	if d.source.Float64() < d.approvalRate {
		status = entities.PaymentSuccess
	}

	d.log.With(
		logger.NewField("payer_id", request.PayerID),
		logger.NewField("amount", request.Amount.String()),
		logger.NewField("status", status.String()),
	).Info("payment decided")

	return &entities.PaymentResult{
		PayerID: request.PayerID,
		Amount:  request.Amount,
		Status:  status,
	}, nil
}

// GlobalSource reads the process wide generator, which is safe for
// concurrent use.
type GlobalSource struct{}

func (GlobalSource) Float64() float64 {
	return rand.Float64()
}
