//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"

	"shop/internal/entities"
)

type Repository interface {
	GetByPayer(ctx context.Context, payerID string) ([]entities.CartItem, error)
	Upsert(ctx context.Context, itemModify entities.CartItemModify) (*entities.CartItem, error)
	DeleteByPayer(ctx context.Context, payerID string) (int64, error)
}
