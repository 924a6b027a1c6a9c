package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/storesetup"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// poolRepository serves store_setup from the shared pgx pool. It is
// interchangeable with the database/sql implementation in sqlclient.go;
// configuration picks one at startup.
type poolRepository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func NewPoolRepository(client *pgxpool.Pool, logger *zap.Logger) *poolRepository {
	return &poolRepository{
		client: client,
		logger: logger,
	}
}

func (r *poolRepository) GetAll(ctx context.Context) ([]storesetup.StoreSetup, error) {
	query := `
		SELECT id, store_code, store_eng_name, store_ar_name, created_at
		FROM store_setup
		ORDER BY store_code
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
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

func (r *poolRepository) GetByID(ctx context.Context, id string) (*storesetup.StoreSetup, error) {
	query := `
		SELECT id, store_code, store_eng_name, store_ar_name, created_at
		FROM store_setup
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var setup storesetup.StoreSetup
	err := r.client.QueryRow(ctx, query, id).Scan(
		&setup.ID,
		&setup.StoreCode,
		&setup.EngName,
		&setup.ArName,
		&setup.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreSetupNotFound
		}
		return nil, err
	}

	return &setup, nil
}

func (r *poolRepository) Create(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	query := `
		INSERT INTO store_setup (id, store_code, store_eng_name, store_ar_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	if err := r.client.QueryRow(
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

func (r *poolRepository) Update(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	query := `
		UPDATE store_setup
		SET store_code=$2, store_eng_name=$3, store_ar_name=$4
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, data.ID, data.StoreCode, data.EngName, data.ArName)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrStoreSetupNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *poolRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM store_setup WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrStoreSetupNotFound
	}

	return nil
}
