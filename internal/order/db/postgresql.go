package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/order"
	pgtx "github.com/itisal/itisal-backend/pkg/transactor/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ListFilter narrows GetAll. Zero values mean "no constraint".
type ListFilter struct {
	StoreID    string
	CustomerID string
	Status     order.Status
}

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

func (r *repository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	query := `
		SELECT id, store_id, customer_id, customer_address_id, status, payment_method, total_amount, created_at, updated_at
		FROM orders
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var o order.Order
	err := r.client.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.StoreID,
		&o.CustomerID,
		&o.CustomerAddressID,
		&o.Status,
		&o.PaymentMethod,
		&o.TotalAmount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.getItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) GetAll(ctx context.Context, filter ListFilter) ([]order.Order, error) {
	query := `
		SELECT id, store_id, customer_id, customer_address_id, status, payment_method, total_amount, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR store_id::text = $1)
		  AND ($2 = '' OR customer_id::text = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, filter.StoreID, filter.CustomerID, string(filter.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]order.Order, 0)
	for rows.Next() {
		var o order.Order

		err := rows.Scan(
			&o.ID,
			&o.StoreID,
			&o.CustomerID,
			&o.CustomerAddressID,
			&o.Status,
			&o.PaymentMethod,
			&o.TotalAmount,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		orders = append(orders, o)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	for i := range orders {
		items, err := r.getItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repository) Create(ctx context.Context, data order.Order) (string, error) {
	query := `
		INSERT INTO orders (id, store_id, customer_id, customer_address_id, status, payment_method, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	var id string
	if err := executor.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		data.StoreID,
		data.CustomerID,
		data.CustomerAddressID,
		string(data.Status),
		data.PaymentMethod,
		data.TotalAmount,
	).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

func (r *repository) CreateItem(ctx context.Context, orderID string, item order.Item) (string, error) {
	query := `
		INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, discount_percent, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	var id string
	if err := executor.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		orderID,
		item.ProductID,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.DiscountPercent,
		item.Notes,
	).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

func (r *repository) DeleteItems(ctx context.Context, orderID string) error {
	query := `DELETE FROM order_items WHERE order_id=$1`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	_, err := executor.Exec(ctx, query, orderID)

	return err
}

func (r *repository) Update(ctx context.Context, data order.Order) error {
	query := `
		UPDATE orders
		SET customer_address_id=$2, payment_method=$3, total_amount=$4, updated_at=now()
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	tag, err := executor.Exec(
		ctx,
		query,
		data.ID,
		data.CustomerAddressID,
		data.PaymentMethod,
		data.TotalAmount,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	query := `
		UPDATE orders
		SET status=$2, updated_at=now()
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id, string(status))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) getItems(ctx context.Context, orderID string) ([]order.Item, error) {
	query := `
		SELECT id, product_id, name, quantity, unit_price, discount_percent, notes
		FROM order_items
		WHERE order_id=$1
		ORDER BY created_at
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)
	for rows.Next() {
		var item order.Item

		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercent,
			&item.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		items = append(items, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return items, nil
}
