package order

import (
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
)

const (
	maxIdentifierLength = 128
	moneyScale          = 2
	maxQuantity         = math.MaxInt32
)

var (
	// numeric(10,2) and numeric(12,2) upper bounds, exclusive.
	maxUnitPrice = decimal.New(1, 8)
	maxTotal     = decimal.New(1, 10)
)

func isValidIdentifier(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= maxIdentifierLength
}

// isValidPagination keeps limit and offset within Postgres bigint.
func isValidPagination(pagination entities.Pagination) bool {
	return pagination.Limit <= math.MaxInt64 && pagination.Offset <= math.MaxInt64
}

func isValidQuantity(quantity int64) bool {
	return quantity >= 1 && quantity <= maxQuantity
}

func isMoneyAmount(amount decimal.Decimal, upper decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(moneyScale)) && amount.LessThan(upper)
}

// validateOrderCreate reports the first violation found, checking the payer
// and then each line in request order.
func validateOrderCreate(orderCreate entities.OrderCreate) error {
	if orderCreate.PayerID == "" {
		return ErrMissingPayerID
	}
	if !isValidIdentifier(orderCreate.PayerID) {
		return ErrInvalidPayerID
	}
	if len(orderCreate.Lines) == 0 {
		return ErrEmptyLines
	}

	for _, line := range orderCreate.Lines {
		if !isValidIdentifier(line.ProductID) {
			return ErrInvalidProductID
		}
		if !isValidQuantity(line.Quantity) {
			return ErrInvalidQuantity
		}
		if line.UnitPrice.IsNegative() {
			return ErrNegativeUnitPrice
		}
		if !isMoneyAmount(line.UnitPrice, maxUnitPrice) {
			return ErrInvalidUnitPrice
		}
	}

	if !calculateTotal(orderCreate.Lines).LessThan(maxTotal) {
		return ErrTotalOutOfRange
	}

	return nil
}

// calculateTotal sums unit_price * quantity exactly.
func calculateTotal(lines []entities.OrderLineCreate) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}
	return total
}
