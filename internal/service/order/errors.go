package order

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every rejection of malformed input.
	ErrValidation = errors.New("validation error")
	// ErrPersistence is wrapped by every failed durable write or read.
	ErrPersistence = errors.New("persistence error")

	ErrMissingPayerID      = fmt.Errorf("%w: payer id is required", ErrValidation)
	ErrInvalidPayerID      = fmt.Errorf("%w: payer id is too long", ErrValidation)
	ErrEmptyLines          = fmt.Errorf("%w: order must contain at least one line", ErrValidation)
	ErrInvalidProductID    = fmt.Errorf("%w: invalid product id", ErrValidation)
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	ErrNegativeUnitPrice   = fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	ErrInvalidUnitPrice    = fmt.Errorf("%w: unit price must have at most two fractional digits and fit numeric(10,2)", ErrValidation)
	ErrTotalOutOfRange     = fmt.Errorf("%w: order total does not fit numeric(12,2)", ErrValidation)
	ErrInvalidPagination   = fmt.Errorf("%w: limit and offset must be non-negative integers within bigint range", ErrValidation)
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("order status transition not allowed")
	ErrStaleThresholdRange = errors.New("stale threshold must be positive")
)
