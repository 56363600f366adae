package cart

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"shop/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByPayer(ctx context.Context, payerID string) ([]entities.CartItem, error) {
	query, args, err := qb.
		Select("id", "user_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"user_id": payerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository get error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository get error: %w", err)
	}
	defer rows.Close()

	items := make([]CartItemDB, 0, 8)
	for rows.Next() {
		var item CartItemDB
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected cart repository get error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected cart repository get error: %w", err)
	}

	return ToDomainList(items), nil
}

// Upsert adds quantity to the payer's line for the product, creating the line
// when it does not exist. Concurrent calls for the same pair never lose an
// increment.
func (r *Repository) Upsert(ctx context.Context, itemModify entities.CartItemModify) (*entities.CartItem, error) {
	itemDB := FromDomainModify(&itemModify)
	if itemDB.UserID == nil || itemDB.ProductID == nil || itemDB.Quantity == nil {
		return nil, errors.New("cart repository upsert: payer, product and quantity are required")
	}

	query := `INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, user_id, product_id, quantity`

	var stored CartItemDB
	err := r.querier.QueryRow(
		ctx,
		query,
		itemDB.UserID,
		itemDB.ProductID,
		itemDB.Quantity,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.ProductID,
		&stored.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected cart repository upsert error: %w", err)
	}

	return ToDomain(&stored), nil
}

// DeleteByPayer removes every line of the payer and reports how many were removed.
func (r *Repository) DeleteByPayer(ctx context.Context, payerID string) (int64, error) {
	tag, err := r.querier.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, payerID)
	if err != nil {
		return 0, fmt.Errorf("unexpected cart repository delete error: %w", err)
	}

	return tag.RowsAffected(), nil
}
