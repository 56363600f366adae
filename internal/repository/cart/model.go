package cart

type CartItemDB struct {
	ID        int64
	UserID    string
	ProductID string
	Quantity  int64
}

type CartItemModifyDB struct {
	UserID    *string
	ProductID *string
	Quantity  *int64
}
