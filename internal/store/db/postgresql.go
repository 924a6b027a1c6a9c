package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/region"
	"github.com/itisal/itisal-backend/internal/store"
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

func (r *repository) GetAll(ctx context.Context) ([]store.Store, error) {
	query := `
		SELECT id, name, ar_name, created_at
		FROM stores
		ORDER BY name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]store.Store, 0)
	for rows.Next() {
		var st store.Store

		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.ArName,
			&st.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		stores = append(stores, st)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	for i := range stores {
		regions, err := r.GetRegionsByStoreID(ctx, stores[i].ID)
		if err != nil {
			return nil, err
		}
		stores[i].Regions = regions
	}

	return stores, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*store.Store, error) {
	query := `
		SELECT id, name, ar_name, created_at
		FROM stores
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var st store.Store
	err := r.client.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.ArName,
		&st.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	regions, err := r.GetRegionsByStoreID(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.Regions = regions

	return &st, nil
}

func (r *repository) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	query := `
		INSERT INTO stores (id, name, ar_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	if err := r.client.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		data.Name,
		data.ArName,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data store.Store) (*store.Store, error) {
	query := `
		UPDATE stores
		SET name=$2, ar_name=$3
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, data.ID, data.Name, data.ArName)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrStoreNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM stores WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrStoreNotFound
	}

	return nil
}

func (r *repository) GetRegionsByStoreID(ctx context.Context, storeID string) ([]region.Region, error) {
	query := `
		SELECT r.id, r.region_eng_name, r.region_ar_name, r.delivery_value, r.created_at
		FROM regions r
		JOIN store_regions sr ON sr.region_id = r.id
		WHERE sr.store_id=$1
		ORDER BY r.region_eng_name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := make([]region.Region, 0)
	for rows.Next() {
		var reg region.Region

		err := rows.Scan(
			&reg.ID,
			&reg.EngName,
			&reg.ArName,
			&reg.DeliveryValue,
			&reg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		regions = append(regions, reg)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return regions, nil
}

func (r *repository) AddRegionLink(ctx context.Context, storeID, regionID string) (*store.RegionLink, error) {
	query := `
		INSERT INTO store_regions (id, store_id, region_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	if err := r.client.QueryRow(ctx, query, uuid.NewString(), storeID, regionID).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrLinkExists
		}
		return nil, err
	}

	return &store.RegionLink{ID: id, StoreID: storeID, RegionID: regionID}, nil
}

func (r *repository) RemoveRegionLink(ctx context.Context, storeID, regionID string) error {
	query := `DELETE FROM store_regions WHERE store_id=$1 AND region_id=$2`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, storeID, regionID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrLinkNotFound
	}

	return nil
}
