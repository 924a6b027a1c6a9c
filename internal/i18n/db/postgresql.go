package db

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/logging"
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

func (r *repository) GetSetting(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM settings WHERE key=$1`

	logging.LogSQLQuery(r.logger, query)

	var value string
	if err := r.client.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", err
	}

	return value, nil
}

func (r *repository) UpsertSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(ctx, query, key, value)

	return err
}
