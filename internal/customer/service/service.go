package service

import (
	"context"
	"errors"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/customer/db"
	"github.com/itisal/itisal-backend/pkg/transactor"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcustomerdb
type Repository interface {
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	GetByID(ctx context.Context, id string) (*customer.Customer, error)
	Create(ctx context.Context, data customer.Customer) (string, error)
	CreateAddress(ctx context.Context, customerID string, data customer.Address) (string, error)
	GetAddresses(ctx context.Context, customerID string) ([]customer.Address, error)
}

type RegionService interface {
	CheckRegionExists(ctx context.Context, id string) error
}

type service struct {
	repository    Repository
	regionService RegionService
	txManager     transactor.Manager
	logger        *zap.Logger
}

func New(
	repository Repository,
	regionService RegionService,
	txManager transactor.Manager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:    repository,
		regionService: regionService,
		txManager:     txManager,
		logger:        logger,
	}
}

// FindByPhone looks up a customer by the normalized phone key. A miss
// is a legitimate empty result: the caller switches the lookup form
// into create mode on apperror.ErrNotFound instead of treating it as
// a failure.
func (s *service) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	normalized, err := customer.NormalizePhone(phone)
	if err != nil {
		return nil, apperror.NewAppError(err.Error())
	}

	existingCustomer, err := s.repository.GetByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, db.ErrCustomerNotFound) {
			return nil, apperror.NewLocalizedNotFound("customer not found", "customer.notFound")
		}

		s.logger.Error("unexpected error when fetching customer by phone", zap.Error(err))

		return nil, err
	}

	return existingCustomer, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	existingCustomer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrCustomerNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching customer by id", zap.Error(err))

		return nil, err
	}

	return existingCustomer, nil
}

// Create persists the customer together with their first saved
// address in one transaction, so a stored customer always has at
// least one address to pick during order entry.
func (s *service) Create(ctx context.Context, data customer.Customer) (*customer.Customer, error) {
	normalized, err := customer.NormalizePhone(data.PhoneNumber)
	if err != nil {
		return nil, apperror.NewAppError(err.Error())
	}
	data.PhoneNumber = normalized

	if data.RegionID != nil {
		if err := s.regionService.CheckRegionExists(ctx, *data.RegionID); err != nil {
			return nil, err
		}
	}

	if _, err := s.repository.GetByPhone(ctx, normalized); err == nil {
		return nil, apperror.NewAppError("customer with this phone number already exists")
	} else if !errors.Is(err, db.ErrCustomerNotFound) {
		s.logger.Error("unexpected error when checking phone uniqueness", zap.Error(err))

		return nil, err
	}

	var customerID string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.repository.Create(txCtx, data)
		if err != nil {
			return err
		}

		if _, err := s.repository.CreateAddress(txCtx, id, customer.Address{
			Street: data.Address,
		}); err != nil {
			return err
		}

		customerID = id

		return nil
	})
	if err != nil {
		// The pre-check above races with concurrent creates, so the
		// unique constraint on phone_number is the real guarantee.
		if errors.Is(err, db.ErrCustomerAlreadyExists) {
			return nil, apperror.NewAppError("customer with this phone number already exists")
		}

		s.logger.Error("unexpected error when creating customer", zap.Error(err))

		return nil, err
	}

	return s.GetByID(ctx, customerID)
}
