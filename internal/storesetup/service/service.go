package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/storesetup"
	"github.com/itisal/itisal-backend/internal/storesetup/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstoresetupdb

// Repository is implemented by both the pgx pool backend and the legacy
// database/sql backend. The service does not know which one it got.
type Repository interface {
	GetAll(ctx context.Context) ([]storesetup.StoreSetup, error)
	GetByID(ctx context.Context, id string) (*storesetup.StoreSetup, error)
	Create(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error)
	Update(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]storesetup.StoreSetup, error) {
	setups, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when getting store setups", zap.Error(err))

		return nil, err
	}

	return setups, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*storesetup.StoreSetup, error) {
	setup, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrStoreSetupNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when getting store setup", zap.Error(err))

		return nil, err
	}

	return setup, nil
}

func (s *service) Create(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	setup, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating store setup", zap.Error(err))

		return nil, err
	}

	return setup, nil
}

func (s *service) Update(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error) {
	setup, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrStoreSetupNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating store setup", zap.Error(err))

		return nil, err
	}

	return setup, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrStoreSetupNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting store setup", zap.Error(err))

		return err
	}

	return nil
}
