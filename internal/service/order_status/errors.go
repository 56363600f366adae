package order_status

import "errors"

var (
	ErrUndefinedStatus = errors.New("no handler for order status")
	ErrInvalidEvent    = errors.New("invalid order status event")
)
