package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/product"
	"github.com/itisal/itisal-backend/internal/product/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockproductdb
type Repository interface {
	GetAllCategories(ctx context.Context) ([]product.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*product.Category, error)
	GetAll(ctx context.Context) ([]product.Product, error)
	GetAllByCategoryID(ctx context.Context, categoryID string) ([]product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
	SetImage(ctx context.Context, id, image string) error
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

func (s *service) GetAllCategories(ctx context.Context) ([]product.Category, error) {
	categories, err := s.repository.GetAllCategories(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching product categories", zap.Error(err))

		return nil, err
	}

	return categories, nil
}

func (s *service) GetAll(ctx context.Context) ([]product.Product, error) {
	products, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching products", zap.Error(err))

		return nil, err
	}

	return products, nil
}

func (s *service) GetAllByCategoryID(ctx context.Context, categoryID string) ([]product.Product, error) {
	if _, err := s.repository.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching product category by id", zap.Error(err))

		return nil, err
	}

	products, err := s.repository.GetAllByCategoryID(ctx, categoryID)
	if err != nil {
		s.logger.Error("unexpected error when fetching products by category", zap.Error(err))

		return nil, err
	}

	return products, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*product.Product, error) {
	existingProduct, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching product by id", zap.Error(err))

		return nil, err
	}

	return existingProduct, nil
}

func (s *service) SetImage(ctx context.Context, id, image string) error {
	if err := s.repository.SetImage(ctx, id, image); err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when setting product image", zap.Error(err))

		return err
	}

	return nil
}
