package dto

import "github.com/shopspring/decimal"

type ProductCreate struct {
	ID          *int64           `json:"id,omitempty"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description,omitempty"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description"`
}
