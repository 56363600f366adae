package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrPersistence = errors.New("persistence error")
	ErrConflict    = errors.New("conflict")

	ErrInvalidID          = fmt.Errorf("%w: product id must be positive", ErrValidation)
	ErrInvalidName        = fmt.Errorf("%w: name must be 1 to 255 characters", ErrValidation)
	ErrMissingPrice       = fmt.Errorf("%w: price is required", ErrValidation)
	ErrNegativePrice      = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrInvalidPrice       = fmt.Errorf("%w: price must have at most two fractional digits and fit numeric(10,2)", ErrValidation)
	ErrInvalidDescription = fmt.Errorf("%w: description must be at most 1024 characters", ErrValidation)

	ErrProductExists = fmt.Errorf("%w: product with this id already exists", ErrConflict)
)
