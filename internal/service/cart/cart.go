package cart

import (
	"context"
	"fmt"

	"shop/internal/entities"
)

type Cart struct {
	repository Repository
}

func New(repository Repository) *Cart {
	return &Cart{
		repository: repository,
	}
}

func (s *Cart) GetCart(ctx context.Context, payerID string) ([]entities.CartItem, error) {
	if !isValidIdentifier(payerID) {
		return nil, ErrInvalidPayerID
	}

	items, err := s.repository.GetByPayer(ctx, payerID)
	if err != nil {
		return nil, fmt.Errorf("%w: get cart: %w", ErrPersistence, err)
	}

	return items, nil
}

// AddItem adds quantity units of the product to the payer's cart. A missing
// quantity means one unit; an existing line is incremented.
func (s *Cart) AddItem(ctx context.Context, itemModify entities.CartItemModify) (*entities.CartItem, error) {
	if itemModify.PayerID == nil || !isValidIdentifier(*itemModify.PayerID) {
		return nil, ErrInvalidPayerID
	}
	if itemModify.ProductID == nil || !isValidIdentifier(*itemModify.ProductID) {
		return nil, ErrInvalidProductID
	}

	if itemModify.Quantity == nil {
		quantity := entities.DefaultCartItemQuantity
		itemModify.Quantity = &quantity
	}
	if !isValidQuantity(*itemModify.Quantity) {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repository.Upsert(ctx, itemModify)
	if err != nil {
		return nil, fmt.Errorf("%w: add cart item: %w", ErrPersistence, err)
	}

	return item, nil
}

// ClearCart removes every line of the payer's cart and returns how many were removed.
func (s *Cart) ClearCart(ctx context.Context, payerID string) (int64, error) {
	if !isValidIdentifier(payerID) {
		return 0, ErrInvalidPayerID
	}

	deleted, err := s.repository.DeleteByPayer(ctx, payerID)
	if err != nil {
		return 0, fmt.Errorf("%w: clear cart: %w", ErrPersistence, err)
	}

	return deleted, nil
}
