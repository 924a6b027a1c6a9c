package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itisal/itisal-backend/internal/logging"
	"github.com/itisal/itisal-backend/internal/user"
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

func scanUser(row pgx.Row) (*user.User, error) {
	var existingUser user.User
	err := row.Scan(
		&existingUser.ID,
		&existingUser.Username,
		&existingUser.FullName,
		&existingUser.IsAdmin,
		&existingUser.Permissions.AllowStoreSetup,
		&existingUser.Permissions.AllowRegionSetup,
		&existingUser.Permissions.AllowNewCustomer,
		&existingUser.Permissions.AllowItemGroupsSetup,
		&existingUser.Permissions.AllowUserSetup,
		&existingUser.PasswordHash,
		&existingUser.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &existingUser, nil
}

func (r *repository) GetAll(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT id, username, full_name, is_admin,
			allow_store_setup, allow_region_setup, allow_new_customer,
			allow_item_groups_setup, allow_user_setup,
			password_hash, created_at
		FROM users
		ORDER BY username
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		existingUser, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		users = append(users, *existingUser)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("row error: %v", rows.Err())
	}

	return users, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `
		SELECT id, username, full_name, is_admin,
			allow_store_setup, allow_region_setup, allow_new_customer,
			allow_item_groups_setup, allow_user_setup,
			password_hash, created_at
		FROM users
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	existingUser, err := scanUser(r.client.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return existingUser, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, full_name, is_admin,
			allow_store_setup, allow_region_setup, allow_new_customer,
			allow_item_groups_setup, allow_user_setup,
			password_hash, created_at
		FROM users
		WHERE username=$1
	`

	logging.LogSQLQuery(r.logger, query)

	existingUser, err := scanUser(r.client.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return existingUser, nil
}

func (r *repository) Create(ctx context.Context, data user.User) (*user.User, error) {
	query := `
		INSERT INTO users (
			id, username, full_name, is_admin,
			allow_store_setup, allow_region_setup, allow_new_customer,
			allow_item_groups_setup, allow_user_setup, password_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id string
	err := r.client.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		data.Username,
		data.FullName,
		data.IsAdmin,
		data.Permissions.AllowStoreSetup,
		data.Permissions.AllowRegionSetup,
		data.Permissions.AllowNewCustomer,
		data.Permissions.AllowItemGroupsSetup,
		data.Permissions.AllowUserSetup,
		data.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, data user.User) (*user.User, error) {
	query := `
		UPDATE users
		SET username=$2, full_name=$3, is_admin=$4,
			allow_store_setup=$5, allow_region_setup=$6, allow_new_customer=$7,
			allow_item_groups_setup=$8, allow_user_setup=$9
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(
		ctx,
		query,
		data.ID,
		data.Username,
		data.FullName,
		data.IsAdmin,
		data.Permissions.AllowStoreSetup,
		data.Permissions.AllowRegionSetup,
		data.Permissions.AllowNewCustomer,
		data.Permissions.AllowItemGroupsSetup,
		data.Permissions.AllowUserSetup,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetByID(ctx, data.ID)
}

func (r *repository) UpdatePasswordHash(ctx context.Context, id string, passwordHash []byte) error {
	query := `
		UPDATE users
		SET password_hash=$2
		WHERE id=$1
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id=$1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
