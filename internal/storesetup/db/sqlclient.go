package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/storesetup"
	"go.uber.org/zap"
)

// sqlRepository talks to the legacy setup database through database/sql.
// Kept alongside the pool implementation so deployments still on the old
// backend can run unchanged.
type sqlRepository struct {
	client *sql.DB
	logger *zap.Logger
}

func NewSQLRepository(client *sql.DB, logger *zap.Logger) *sqlRepository {
	return &sqlRepository{
		client: client,
		logger: logger,
	}
}

func (r *sqlRepository) GetAll(ctx context.Context) ([]storesetup.StoreSetup, error) {
	query := `
		SELECT id, store_code, store_eng_name, store_ar_name, created_at
		FROM store_setup
		ORDER BY store_code
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	setups := make([]storesetup.StoreSetup, 0)
	for rows.Next() {
		var setup storesetup.StoreSetup

		err := rows.Scan(
			&setup.ID,
			&setup.StoreCode,
			&setup.EngName,
			&setup.ArName,
			&setup.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		setups = append(setups, setup)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return setups, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id string) (*storesetup.StoreSetup, error) {
	query := `
		SELECT id, store_code, store_eng_name, store_ar_name, created_at
		FROM store_setup
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var setup storesetup.StoreSetup
	err := r.client.QueryRowContext(ctx, query, id).Scan(
		&setup.ID,
		&setup.StoreCode,
		&setup.EngName,
		&setup.ArName,
		&setup.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStoreSetupNotFound
		}
		return nil, err
	}

	return &setup, nil
}

func (r *sqlRepository) Create(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	query := `
		INSERT INTO store_setup (id, store_code, store_eng_name, store_ar_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	if err := r.client.QueryRowContext(
		ctx,
		query,
		uuid.NewString(),
		data.StoreCode,
		data.EngName,
		data.ArName,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *sqlRepository) Update(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	query := `
		UPDATE store_setup
		SET store_code=$2, store_eng_name=$3, store_ar_name=$4
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	result, err := r.client.ExecContext(ctx, query, data.ID, data.StoreCode, data.EngName, data.ArName)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		return nil, ErrStoreSetupNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *sqlRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM store_setup WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	result, err := r.client.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrStoreSetupNotFound
	}

	return nil
}
