package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shop/internal/entities"
	"shop/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderItemColumns = []string{"id", "order_id", "product_id", "quantity", "unit_price::text"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order row and all its items. Callers run it inside a
// transaction so that an order is never visible without its lines.
func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)
	if orderModifyDB.UserID == nil || orderModifyDB.Status == nil || orderModifyDB.Total == nil || orderModifyDB.CreatedAt == nil {
		return nil, errors.New("order repository create: payer, status, total and created_at are required")
	}
	if len(orderModifyDB.Items) == 0 {
		return nil, errors.New("order repository create: order without items")
	}

	query := `INSERT INTO orders (user_id, status, total, created_at)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id, user_id, status, total::text, created_at`

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.UserID,
		orderModifyDB.Status,
		orderModifyDB.Total,
		orderModifyDB.CreatedAt,
	).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	items, err := r.createItems(ctx, orderDB.ID, orderModifyDB.Items)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items)
}

func (r *Repository) createItems(ctx context.Context, orderID int64, itemsDB []OrderItemModifyDB) ([]OrderItemDB, error) {
	builder := qb.
		Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price")

	for _, item := range itemsDB {
		builder = builder.Values(orderID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	query, args, err := builder.
		Suffix("RETURNING id, order_id, product_id, quantity, unit_price::text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	return items, nil
}

// UpdateStatus moves the order from one status to another. The update only
// applies while the stored status still equals from.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.OrderStatusType) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	var current string
	err = r.querier.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return fmt.Errorf("%w: order %d is %s", order.ErrInvalidTransition, id, current)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT id, user_id, status, total::text, created_at
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.Status,
			&orderDB.Total,
			&orderDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	itemsByOrder, err := r.getItems(ctx, []int64{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, itemsByOrder[orderDB.ID])
}

// List returns orders by id descending. Items are fetched in one extra query.
func (r *Repository) List(ctx context.Context, pagination entities.Pagination) ([]entities.Order, error) {
	query, args, err := qb.
		Select("id", "user_id", "status", "total::text", "created_at").
		From("orders").
		OrderBy("id DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, min(pagination.Limit, 64))
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.Status,
			&orderDB.Total,
			&orderDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(ordersDB))
	for i, orderDB := range ordersDB {
		ids[i] = orderDB.ID
	}

	itemsByOrder, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return ToDomainList(ordersDB, itemsByOrder)
}

func (r *Repository) CountPendingCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1 AND created_at < $2`

	var count int64
	err := r.querier.QueryRow(ctx, query, entities.OrderPending.String(), before).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count pending error: %w", err)
	}

	return count, nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItemDB, error) {
	query, args, err := qb.
		Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	itemsByOrder := make(map[int64][]OrderItemDB, len(orderIDs))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	return itemsByOrder, nil
}

func scanItems(rows pgx.Rows) ([]OrderItemDB, error) {
	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
