package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/region"
	"github.com/itisal/itisal-backend/internal/store"
	"github.com/itisal/itisal-backend/internal/store/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockstoredb
type Repository interface {
	GetAll(ctx context.Context) ([]store.Store, error)
	GetByID(ctx context.Context, id string) (*store.Store, error)
	Create(ctx context.Context, data store.Store) (*store.Store, error)
	Update(ctx context.Context, data store.Store) (*store.Store, error)
	Delete(ctx context.Context, id string) error

	GetRegionsByStoreID(ctx context.Context, storeID string) ([]region.Region, error)
	AddRegionLink(ctx context.Context, storeID, regionID string) (*store.RegionLink, error)
	RemoveRegionLink(ctx context.Context, storeID, regionID string) error
}

type RegionService interface {
	CheckRegionExists(ctx context.Context, id string) error
}

type service struct {
	repository    Repository
	regionService RegionService
	logger        *zap.Logger
}

func New(
	repository Repository,
	regionService RegionService,
	logger *zap.Logger,
) *service {
	return &service{
		repository:    repository,
		regionService: regionService,
		logger:        logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]store.Store, error) {
	stores, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all stores", zap.Error(err))

		return nil, err
	}

	return stores, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*store.Store, error) {
	existingStore, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrStoreNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching store by id", zap.Error(err))

		return nil, err
	}

	return existingStore, nil
}

// CheckStoreExists verifies the referenced store is real before an
// order or link is attached to it.
func (s *service) CheckStoreExists(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *service) Create(ctx context.Context, data store.Store) (*store.Store, error) {
	createdStore, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating store", zap.Error(err))

		return nil, err
	}

	return createdStore, nil
}

func (s *service) Update(ctx context.Context, data store.Store) (*store.Store, error) {
	updatedStore, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrStoreNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating store", zap.Error(err))

		return nil, err
	}

	return updatedStore, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrStoreNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting store", zap.Error(err))

		return err
	}

	return nil
}

// AddRegionLink links a store to a delivery region. Both sides must
// exist and the pair must not already be linked.
func (s *service) AddRegionLink(ctx context.Context, storeID, regionID string) (*store.RegionLink, error) {
	if err := s.CheckStoreExists(ctx, storeID); err != nil {
		return nil, err
	}

	if err := s.regionService.CheckRegionExists(ctx, regionID); err != nil {
		return nil, err
	}

	link, err := s.repository.AddRegionLink(ctx, storeID, regionID)
	if err != nil {
		if errors.Is(err, db.ErrLinkExists) {
			return nil, apperror.NewLocalizedError("this link already exists", "setup.linkAlreadyExists")
		}

		s.logger.Error("unexpected error when adding store region link", zap.Error(err))

		return nil, err
	}

	return link, nil
}

func (s *service) RemoveRegionLink(ctx context.Context, storeID, regionID string) error {
	if err := s.repository.RemoveRegionLink(ctx, storeID, regionID); err != nil {
		if errors.Is(err, db.ErrLinkNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when removing store region link", zap.Error(err))

		return err
	}

	return nil
}
