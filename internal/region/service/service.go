package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/region"
	"github.com/itisal/itisal-backend/internal/region/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockregiondb
type Repository interface {
	GetAll(ctx context.Context) ([]region.Region, error)
	GetByID(ctx context.Context, id string) (*region.Region, error)
	Create(ctx context.Context, data region.Region) (*region.Region, error)
	Update(ctx context.Context, data region.Region) (*region.Region, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(
	repository Repository,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]region.Region, error) {
	regions, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all regions", zap.Error(err))

		return nil, err
	}

	return regions, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*region.Region, error) {
	existingRegion, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRegionNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching region by id", zap.Error(err))

		return nil, err
	}

	return existingRegion, nil
}

// CheckRegionExists verifies the referenced region is real before
// another entity links to it.
func (s *service) CheckRegionExists(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	return nil
}

func (s *service) Create(ctx context.Context, data region.Region) (*region.Region, error) {
	createdRegion, err := s.repository.Create(ctx, data)
	if err != nil {
		s.logger.Error("unexpected error when creating region", zap.Error(err))

		return nil, err
	}

	return createdRegion, nil
}

func (s *service) Update(ctx context.Context, data region.Region) (*region.Region, error) {
	updatedRegion, err := s.repository.Update(ctx, data)
	if err != nil {
		if errors.Is(err, db.ErrRegionNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when updating region", zap.Error(err))

		return nil, err
	}

	return updatedRegion, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrRegionNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when deleting region", zap.Error(err))

		return err
	}

	return nil
}
