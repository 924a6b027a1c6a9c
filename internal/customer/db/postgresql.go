package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/logging"
	pgtx "github.com/itisal/itisal-backend/pkg/transactor/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

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

func (r *repository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	query := `
		SELECT id, phone_number, name, address, cash_enabled, visa_enabled, credit_enabled, region_id, created_at
		FROM customers
		WHERE phone_number=$1
	`

	logging.LogSQLQuery(r.logger, query)

	c, err := r.scanCustomer(r.client.QueryRow(ctx, query, phone))
	if err != nil {
		return nil, err
	}

	addresses, err := r.GetAddresses(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Addresses = addresses

	return c, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT id, phone_number, name, address, cash_enabled, visa_enabled, credit_enabled, region_id, created_at
		FROM customers
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	c, err := r.scanCustomer(r.client.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	addresses, err := r.GetAddresses(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Addresses = addresses

	return c, nil
}

func (r *repository) scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID,
		&c.PhoneNumber,
		&c.Name,
		&c.Address,
		&c.PaymentMethods.Cash,
		&c.PaymentMethods.Visa,
		&c.PaymentMethods.Credit,
		&c.RegionID,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return &c, nil
}

// Create inserts the customer row. It resolves the executor through
// the transactor so the insert joins an open transaction when the
// service creates the customer and its first address atomically.
func (r *repository) Create(ctx context.Context, data customer.Customer) (string, error) {
	query := `
		INSERT INTO customers (id, phone_number, name, address, cash_enabled, visa_enabled, credit_enabled, region_id)
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
		data.PhoneNumber,
		data.Name,
		data.Address,
		data.PaymentMethods.Cash,
		data.PaymentMethods.Visa,
		data.PaymentMethods.Credit,
		data.RegionID,
	).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return "", ErrCustomerAlreadyExists
		}
		return "", err
	}

	return id, nil
}

func (r *repository) CreateAddress(ctx context.Context, customerID string, data customer.Address) (string, error) {
	query := `
		INSERT INTO customer_addresses (id, customer_id, street, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	executor := pgtx.GetExecutor(ctx, r.client)

	var id string
	if err := executor.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		customerID,
		data.Street,
		data.City,
	).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

func (r *repository) GetAddresses(ctx context.Context, customerID string) ([]customer.Address, error) {
	query := `
		SELECT id, street, city
		FROM customer_addresses
		WHERE customer_id=$1
		ORDER BY created_at
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]customer.Address, 0)
	for rows.Next() {
		var addr customer.Address

		if err := rows.Scan(&addr.ID, &addr.Street, &addr.City); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		addresses = append(addresses, addr)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return addresses, nil
}
