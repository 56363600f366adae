package dto

import "shop/internal/entities"

const moneyScale = 2

func OrderFromDomain(o *entities.Order) Order {
	lines := make([]OrderLine, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = OrderLine{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(moneyScale),
		}
	}

	return Order{
		ID:        o.ID,
		PayerID:   o.PayerID,
		Status:    o.Status.String(),
		Total:     o.Total.StringFixed(moneyScale),
		CreatedAt: o.CreatedAt,
		Lines:     lines,
	}
}

func OrderListFromDomain(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = OrderFromDomain(&orders[i])
	}
	return result
}

func CartItemFromDomain(c *entities.CartItem) CartItem {
	return CartItem{
		ID:        c.ID,
		UserID:    c.PayerID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
	}
}

func ProductFromDomain(p *entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(moneyScale),
		Description: p.Description,
	}
}
