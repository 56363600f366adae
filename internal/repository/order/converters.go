package order

import (
	"fmt"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	total, err := decimal.NewFromString(o.Total)
	if err != nil {
		return nil, fmt.Errorf("order %d total %q: %w", o.ID, o.Total, err)
	}

	lines := make([]entities.OrderLine, 0, len(items))
	for _, item := range items {
		line, err := lineToDomain(&item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return &entities.Order{
		ID:        o.ID,
		PayerID:   o.UserID,
		Status:    entities.OrderStatusType(o.Status),
		Total:     total,
		CreatedAt: o.CreatedAt,
		Lines:     lines,
	}, nil
}

func lineToDomain(item *OrderItemDB) (entities.OrderLine, error) {
	unitPrice, err := decimal.NewFromString(item.UnitPrice)
	if err != nil {
		return entities.OrderLine{}, fmt.Errorf("order item %d unit price %q: %w", item.ID, item.UnitPrice, err)
	}

	return entities.OrderLine{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		UnitPrice: unitPrice,
	}, nil
}

// ToDomainList keeps the order of ordersDB and attaches items grouped by order id.
func ToDomainList(ordersDB []OrderDB, itemsByOrder map[int64][]OrderItemDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i], itemsByOrder[ordersDB[i].ID])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.PayerID != nil {
		orderDB.UserID = orderModify.PayerID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.Total != nil {
		total := orderModify.Total.StringFixed(2)
		orderDB.Total = &total
	}
	if orderModify.CreatedAt != nil {
		orderDB.CreatedAt = orderModify.CreatedAt
	}

	orderDB.Items = make([]OrderItemModifyDB, len(orderModify.Lines))
	for i, line := range orderModify.Lines {
		orderDB.Items[i] = OrderItemModifyDB{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
		}
	}

	return orderDB
}
