package entities

type CartItem struct {
	ID        int64
	PayerID   string
	ProductID string
	Quantity  int64
}

const DefaultCartItemQuantity int64 = 1

type CartItemModify struct {
	PayerID   *string
	ProductID *string
	Quantity  *int64
}
