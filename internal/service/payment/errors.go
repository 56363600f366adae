package payment

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrMissingPayerID = fmt.Errorf("%w: payer id is required", ErrValidation)
	ErrInvalidAmount  = fmt.Errorf("%w: amount must not be negative", ErrValidation)
)
