package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/customer/db"
	mockcustomerdb "github.com/itisal/itisal-backend/internal/customer/service/mocks"
	mocktransactor "github.com/itisal/itisal-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	CustomerID = "0d4a6f50-15ba-4aa2-9b2e-7c1d3f8a6e42"
	Phone      = "0599999999"
	RegionID   = "9f0a2e35-6f6b-4a5e-9a54-2a4f6c1b7e21"
)

var ErrUnexpected = errors.New("unexpected error")

func TestFindByPhone(t *testing.T) {
	existing := &customer.Customer{
		ID:          CustomerID,
		PhoneNumber: Phone,
		Name:        "John",
	}

	type mockBehavior func(ctx context.Context, mockRepo *mockcustomerdb.MockRepository)

	tests := []struct {
		name             string
		phone            string
		mockBehavior     mockBehavior
		expectedCustomer *customer.Customer
		expectedKey      string
		expectErr        bool
	}{
		{
			name:  "success",
			phone: Phone,
			mockBehavior: func(ctx context.Context, mockRepo *mockcustomerdb.MockRepository) {
				mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(existing, nil)
			},
			expectedCustomer: existing,
		},
		{
			name:  "miss maps to localized not found",
			phone: Phone,
			mockBehavior: func(ctx context.Context, mockRepo *mockcustomerdb.MockRepository) {
				mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(nil, db.ErrCustomerNotFound)
			},
			expectedKey: "customer.notFound",
			expectErr:   true,
		},
		{
			name:         "invalid phone never reaches the repository",
			phone:        "059-999-9999",
			mockBehavior: func(ctx context.Context, mockRepo *mockcustomerdb.MockRepository) {},
			expectErr:    true,
		},
		{
			name:  "repository error",
			phone: Phone,
			mockBehavior: func(ctx context.Context, mockRepo *mockcustomerdb.MockRepository) {
				mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(nil, ErrUnexpected)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mockcustomerdb.NewMockRepository(ctrl)

			service := &service{
				repository: mockRepo,
				logger:     zap.NewNop(),
			}

			ctx := context.Background()
			tt.mockBehavior(ctx, mockRepo)

			resp, err := service.FindByPhone(ctx, tt.phone)

			if tt.expectErr {
				require.Error(t, err)

				if tt.expectedKey != "" {
					var appErr *apperror.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.expectedKey, appErr.Key)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCustomer, resp)
		})
	}
}

func TestCreateCustomer(t *testing.T) {
	input := customer.Customer{
		PhoneNumber: Phone,
		Name:        "John",
		Address:     "123 Main St",
		RegionID:    strPtr(RegionID),
	}

	stored := &customer.Customer{
		ID:          CustomerID,
		PhoneNumber: Phone,
		Name:        "John",
		Address:     "123 Main St",
		RegionID:    strPtr(RegionID),
		Addresses:   []customer.Address{{ID: "addr-1", Street: "123 Main St"}},
	}

	t.Run("creates customer and first address in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockcustomerdb.NewMockRepository(ctrl)
		mockRegions := mockcustomerdb.NewMockRegionService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		service := &service{
			repository:    mockRepo,
			regionService: mockRegions,
			txManager:     mockTx,
			logger:        zap.NewNop(),
		}

		ctx := context.Background()

		mockRegions.EXPECT().CheckRegionExists(ctx, RegionID).Return(nil)
		mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(nil, db.ErrCustomerNotFound)
		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockRepo.EXPECT().Create(ctx, input).Return(CustomerID, nil)
		mockRepo.EXPECT().
			CreateAddress(ctx, CustomerID, customer.Address{Street: "123 Main St"}).
			Return("addr-1", nil)
		mockRepo.EXPECT().GetByID(ctx, CustomerID).Return(stored, nil)

		resp, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, stored, resp)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockcustomerdb.NewMockRepository(ctrl)
		mockRegions := mockcustomerdb.NewMockRegionService(ctrl)

		service := &service{
			repository:    mockRepo,
			regionService: mockRegions,
			logger:        zap.NewNop(),
		}

		ctx := context.Background()

		mockRegions.EXPECT().CheckRegionExists(ctx, RegionID).Return(nil)
		mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(stored, nil)

		_, err := service.Create(ctx, input)

		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
	})

	t.Run("concurrent create losing the unique constraint race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockcustomerdb.NewMockRepository(ctrl)
		mockRegions := mockcustomerdb.NewMockRegionService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		service := &service{
			repository:    mockRepo,
			regionService: mockRegions,
			txManager:     mockTx,
			logger:        zap.NewNop(),
		}

		ctx := context.Background()

		// The pre-check sees no customer, but another request inserts
		// the same phone before our transaction commits.
		mockRegions.EXPECT().CheckRegionExists(ctx, RegionID).Return(nil)
		mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(nil, db.ErrCustomerNotFound)
		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockRepo.EXPECT().Create(ctx, input).Return("", db.ErrCustomerAlreadyExists)

		_, err := service.Create(ctx, input)

		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "customer with this phone number already exists", appErr.Message)
	})

	t.Run("unknown region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockcustomerdb.NewMockRepository(ctrl)
		mockRegions := mockcustomerdb.NewMockRegionService(ctrl)

		service := &service{
			repository:    mockRepo,
			regionService: mockRegions,
			logger:        zap.NewNop(),
		}

		ctx := context.Background()

		mockRegions.EXPECT().CheckRegionExists(ctx, RegionID).Return(apperror.ErrNotFound)

		_, err := service.Create(ctx, input)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("failed address insert rolls up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockcustomerdb.NewMockRepository(ctrl)
		mockRegions := mockcustomerdb.NewMockRegionService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		service := &service{
			repository:    mockRepo,
			regionService: mockRegions,
			txManager:     mockTx,
			logger:        zap.NewNop(),
		}

		ctx := context.Background()

		mockRegions.EXPECT().CheckRegionExists(ctx, RegionID).Return(nil)
		mockRepo.EXPECT().GetByPhone(ctx, Phone).Return(nil, db.ErrCustomerNotFound)
		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockRepo.EXPECT().Create(ctx, input).Return(CustomerID, nil)
		mockRepo.EXPECT().
			CreateAddress(ctx, CustomerID, customer.Address{Street: "123 Main St"}).
			Return("", ErrUnexpected)

		_, err := service.Create(ctx, input)

		require.ErrorIs(t, err, ErrUnexpected)
	})
}

func strPtr(s string) *string {
	return &s
}
