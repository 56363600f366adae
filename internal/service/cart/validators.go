package cart

import (
	"math"
	"unicode/utf8"
)

const (
	maxIdentifierLength = 128
	maxQuantity         = math.MaxInt32
)

func isValidIdentifier(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= maxIdentifierLength
}

func isValidQuantity(quantity int64) bool {
	return quantity >= 1 && quantity <= maxQuantity
}
