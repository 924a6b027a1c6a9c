package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetAllCategories(ctx context.Context) ([]product.Category, error) {
	query := `
		SELECT id, name, icon
		FROM product_categories
		ORDER BY name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]product.Category, 0)
	for rows.Next() {
		var cat product.Category

		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		categories = append(categories, cat)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return categories, nil
}

func (r *repository) GetCategoryByID(ctx context.Context, id string) (*product.Category, error) {
	query := `
		SELECT id, name, icon
		FROM product_categories
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var cat product.Category
	if err := r.client.QueryRow(ctx, query, id).Scan(&cat.ID, &cat.Name, &cat.Icon); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return &cat, nil
}

func (r *repository) GetAll(ctx context.Context) ([]product.Product, error) {
	return r.queryProducts(ctx, `
		SELECT id, name, description, price::text, category_id, image
		FROM products
		ORDER BY name
	`)
}

func (r *repository) GetAllByCategoryID(ctx context.Context, categoryID string) ([]product.Product, error) {
	return r.queryProducts(ctx, `
		SELECT id, name, description, price::text, category_id, image
		FROM products
		WHERE category_id=$1
		ORDER BY name
	`, categoryID)
}

func (r *repository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	query := `
		SELECT id, name, description, price::text, category_id, image
		FROM products
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	p, err := scanProduct(r.client.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *repository) SetImage(ctx context.Context, id, image string) error {
	query := `UPDATE products SET image=$2 WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id, image)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...any) ([]product.Product, error) {
	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		products = append(products, *p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return products, nil
}

// scanProduct reads price as text and converts it explicitly: the
// numeric column comes back as a decimal string on the wire.
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var price string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&price,
		&p.CategoryID,
		&p.Image,
	)
	if err != nil {
		return nil, err
	}

	p.Price, err = strconv.ParseFloat(price, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product price %q: %v", price, err)
	}

	return &p, nil
}
