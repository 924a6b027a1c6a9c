package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/region"
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

func (r *repository) GetAll(ctx context.Context) ([]region.Region, error) {
	query := `
		SELECT id, region_eng_name, region_ar_name, delivery_value, created_at
		FROM regions
		ORDER BY region_eng_name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
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

func (r *repository) GetByID(ctx context.Context, id string) (*region.Region, error) {
	query := `
		SELECT id, region_eng_name, region_ar_name, delivery_value, created_at
		FROM regions
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	var reg region.Region
	err := r.client.QueryRow(ctx, query, id).Scan(
		&reg.ID,
		&reg.EngName,
		&reg.ArName,
		&reg.DeliveryValue,
		&reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRegionNotFound
		}
		return nil, err
	}

	return &reg, nil
}

func (r *repository) Create(ctx context.Context, data region.Region) (*region.Region, error) {
	query := `
		INSERT INTO regions (id, region_eng_name, region_ar_name, delivery_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	if err := r.client.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		data.EngName,
		data.ArName,
		data.DeliveryValue,
	).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data region.Region) (*region.Region, error) {
	query := `
		UPDATE regions
		SET region_eng_name=$2, region_ar_name=$3, delivery_value=$4
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(
		ctx,
		query,
		data.ID,
		data.EngName,
		data.ArName,
		data.DeliveryValue,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrRegionNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM regions WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRegionNotFound
	}

	return nil
}
