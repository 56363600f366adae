package product

import (
	"fmt"

	"github.com/shopspring/decimal"
	"shop/internal/entities"
)

func ToDomain(p *ProductDB) (*entities.Product, error) {
	if p == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, fmt.Errorf("product %d price %q: %w", p.ID, p.Price, err)
	}

	return &entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       price,
		Description: p.Description,
	}, nil
}

func ToDomainList(products []ProductDB) ([]entities.Product, error) {
	result := make([]entities.Product, 0, len(products))
	for i := range products {
		product, err := ToDomain(&products[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	return result, nil
}

func FromDomainModify(p *entities.ProductModify) ProductModifyDB {
	modify := ProductModifyDB{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}

	if p.Price != nil {
		price := p.Price.StringFixed(2)
		modify.Price = &price
	}

	return modify
}
