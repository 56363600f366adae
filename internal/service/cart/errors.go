package cart

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence error")

	ErrInvalidPayerID   = fmt.Errorf("%w: payer id must be 1 to 128 characters", ErrValidation)
	ErrInvalidProductID = fmt.Errorf("%w: product id must be 1 to 128 characters", ErrValidation)
	ErrInvalidQuantity  = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
)
