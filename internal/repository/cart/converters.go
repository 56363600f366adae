package cart

import "shop/internal/entities"

func ToDomain(c *CartItemDB) *entities.CartItem {
	if c == nil {
		return nil
	}

	return &entities.CartItem{
		ID:        c.ID,
		PayerID:   c.UserID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
	}
}

func ToDomainList(items []CartItemDB) []entities.CartItem {
	result := make([]entities.CartItem, len(items))
	for i := range items {
		result[i] = *ToDomain(&items[i])
	}
	return result
}

func FromDomainModify(c *entities.CartItemModify) CartItemModifyDB {
	return CartItemModifyDB{
		UserID:    c.PayerID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
	}
}
