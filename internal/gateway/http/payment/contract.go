//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"net/http"

	"shop/pkg/logger"
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
