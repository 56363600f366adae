//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import "shop/pkg/logger"

// RandomSource yields numbers in [0, 1).
type RandomSource interface {
	Float64() float64
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
