package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1024
	moneyScale           = 2
)

// numeric(10,2) upper bound, exclusive.
var maxPrice = decimal.New(1, 8)

func validateProductModify(p entities.ProductModify) error {
	if p.ID != nil && *p.ID <= 0 {
		return ErrInvalidID
	}
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" || utf8.RuneCountInString(*p.Name) > maxNameLength {
		return ErrInvalidName
	}
	if p.Price == nil {
		return ErrMissingPrice
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !p.Price.Equal(p.Price.Truncate(moneyScale)) || !p.Price.LessThan(maxPrice) {
		return ErrInvalidPrice
	}
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxDescriptionLength {
		return ErrInvalidDescription
	}
	return nil
}
