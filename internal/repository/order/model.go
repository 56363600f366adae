package order

import "time"

// Money columns are read as text (total::text) and parsed into decimals.
type OrderDB struct {
	ID        int64
	UserID    string
	Status    string
	Total     string
	CreatedAt time.Time
}

type OrderItemDB struct {
	ID        int64
	OrderID   int64
	ProductID string
	Quantity  int64
	UnitPrice string
}

type OrderModifyDB struct {
	UserID    *string
	Status    *string
	Total     *string
	CreatedAt *time.Time
	Items     []OrderItemModifyDB
}

type OrderItemModifyDB struct {
	ProductID string
	Quantity  int64
	UnitPrice string
}
