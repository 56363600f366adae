package dto

type CartItemCreate struct {
	ProductID string `json:"product_id"`
	Quantity  *int64 `json:"quantity,omitempty"`
}

type CartItem struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type CartDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
