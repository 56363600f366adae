package product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"shop/internal/entities"
	"shop/internal/repository"
	"shop/internal/service/catalog"
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

func (r *Repository) GetAll(ctx context.Context) ([]entities.Product, error) {
	query, args, err := qb.
		Select("id", "name", "price::text", "description").
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}
	defer rows.Close()

	products := make([]ProductDB, 0, 16)
	for rows.Next() {
		var p ProductDB
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository getall error: %w", err)
	}

	return ToDomainList(products)
}

// Create inserts the product. When the id is given explicitly the id sequence
// is moved past it, so the call must run inside a transaction.
func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	modifyDB := FromDomainModify(&productModify)
	if modifyDB.Name == nil || modifyDB.Price == nil {
		return nil, errors.New("product repository create: name and price are required")
	}

	columns := []string{"name", "price", "description"}
	values := []any{modifyDB.Name, sq.Expr("?::numeric", *modifyDB.Price), modifyDB.Description}
	if modifyDB.ID != nil {
		columns = append([]string{"id"}, columns...)
		values = append([]any{*modifyDB.ID}, values...)
	}

	query, args, err := qb.
		Insert("products").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, name, price::text, description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	var p ProductDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, catalog.ErrProductExists
		}
		return nil, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	if modifyDB.ID != nil {
		err := r.syncSequence(ctx)
		if err != nil {
			return nil, err
		}
	}

	return ToDomain(&p)
}

func (r *Repository) syncSequence(ctx context.Context) error {
	query := `SELECT setval(
		pg_get_serial_sequence('products', 'id'),
		GREATEST((SELECT MAX(id) FROM products), 1)
	)`

	_, err := r.querier.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("unexpected product repository sync sequence error: %w", err)
	}

	return nil
}
