package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/order"
	"github.com/itisal/itisal-backend/internal/order/db"
	mockorder "github.com/itisal/itisal-backend/internal/order/service/mocks"
	"github.com/itisal/itisal-backend/internal/product"
	mocktransactor "github.com/itisal/itisal-backend/pkg/transactor/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	OrderID    = "7d8e9f10-1a2b-4c3d-8e5f-6a7b8c9d0e1f"
	StoreID    = "s1"
	CustomerID = "c1"
	AddressID  = "a1"
	ProductID  = "p1"
)

var ErrUnexpected = errors.New("unexpected error")

func newTestService(
	repo Repository,
	customers CustomerService,
	stores StoreService,
	products ProductService,
	tx *mocktransactor.MockManager,
	policy order.EditPolicy,
) *service {
	if policy == nil {
		policy = order.DefaultEditPolicy
	}

	return &service{
		repository:      repo,
		customerService: customers,
		storeService:    stores,
		productService:  products,
		txManager:       tx,
		editPolicy:      policy,
		logger:          zap.NewNop(),
	}
}

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   order.Status
		next      order.Status
		expectErr bool
	}{
		{
			name:    "one step forward",
			current: order.StatusOrderReceived,
			next:    order.StatusStoreReceived,
		},
		{
			name:    "into terminal stage",
			current: order.StatusInvoicePrinted,
			next:    order.StatusOrderDelivered,
		},
		{
			name:      "skipping a stage",
			current:   order.StatusOrderReceived,
			next:      order.StatusOrderStarted,
			expectErr: true,
		},
		{
			name:      "backward",
			current:   order.StatusOrderStarted,
			next:      order.StatusStoreReceived,
			expectErr: true,
		},
		{
			name:      "standing still",
			current:   order.StatusOrderStarted,
			next:      order.StatusOrderStarted,
			expectErr: true,
		},
		{
			name:      "out of terminal stage",
			current:   order.StatusOrderDelivered,
			next:      order.StatusOrderReceived,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mockorder.NewMockRepository(ctrl)

			service := newTestService(mockRepo, nil, nil, nil, nil, nil)

			ctx := context.Background()

			current := &order.Order{ID: OrderID, Status: tt.current}
			mockRepo.EXPECT().GetByID(ctx, OrderID).Return(current, nil)

			if !tt.expectErr {
				advanced := &order.Order{ID: OrderID, Status: tt.next}
				mockRepo.EXPECT().UpdateStatus(ctx, OrderID, tt.next).Return(nil)
				mockRepo.EXPECT().GetByID(ctx, OrderID).Return(advanced, nil)
			}

			resp, err := service.AdvanceStatus(ctx, OrderID, tt.next)

			if tt.expectErr {
				require.Error(t, err)

				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, resp.Status)
		})
	}
}

func TestCreateOrder(t *testing.T) {
	catalogProduct := &product.Product{ID: ProductID, Name: "Margherita", Price: 10}

	existingCustomer := &customer.Customer{
		ID:        CustomerID,
		Addresses: []customer.Address{{ID: AddressID, Street: "123 Main St"}},
	}

	input := order.Order{
		StoreID:           StoreID,
		CustomerID:        CustomerID,
		CustomerAddressID: AddressID,
		PaymentMethod:     "cash",
		Items: []order.Item{
			{ProductID: ProductID, Quantity: 2, Notes: "extra cheese"},
		},
	}

	t.Run("prices items from the catalog and opens in the first stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)
		mockCustomers := mockorder.NewMockCustomerService(ctrl)
		mockStores := mockorder.NewMockStoreService(ctrl)
		mockProducts := mockorder.NewMockProductService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		service := newTestService(mockRepo, mockCustomers, mockStores, mockProducts, mockTx, nil)

		ctx := context.Background()

		mockStores.EXPECT().CheckStoreExists(ctx, StoreID).Return(nil)
		mockCustomers.EXPECT().GetByID(ctx, CustomerID).Return(existingCustomer, nil)
		mockProducts.EXPECT().GetByID(ctx, ProductID).Return(catalogProduct, nil)

		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, data order.Order) (string, error) {
				assert.Equal(t, order.StatusOrderReceived, data.Status)
				assert.Equal(t, 20.0, data.TotalAmount)
				assert.Equal(t, "Margherita", data.Items[0].Name)
				assert.Equal(t, 10.0, data.Items[0].UnitPrice)
				return OrderID, nil
			})
		mockRepo.EXPECT().CreateItem(ctx, OrderID, gomock.Any()).Return("i1", nil)

		stored := &order.Order{ID: OrderID, Status: order.StatusOrderReceived, TotalAmount: 20}
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(stored, nil)

		resp, err := service.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, stored, resp)
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := newTestService(nil, nil, nil, nil, nil, nil)

		empty := input
		empty.Items = nil

		_, err := service.Create(context.Background(), empty)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "pos.emptyCart", appErr.Key)
	})

	t.Run("address not on customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCustomers := mockorder.NewMockCustomerService(ctrl)
		mockStores := mockorder.NewMockStoreService(ctrl)

		service := newTestService(nil, mockCustomers, mockStores, nil, nil, nil)

		ctx := context.Background()

		mockStores.EXPECT().CheckStoreExists(ctx, StoreID).Return(nil)
		mockCustomers.EXPECT().GetByID(ctx, CustomerID).Return(existingCustomer, nil)

		bad := input
		bad.CustomerAddressID = "someone-elses-address"

		_, err := service.Create(ctx, bad)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "customer.selectAddress", appErr.Key)
	})

	t.Run("non positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCustomers := mockorder.NewMockCustomerService(ctrl)
		mockStores := mockorder.NewMockStoreService(ctrl)

		service := newTestService(nil, mockCustomers, mockStores, nil, nil, nil)

		ctx := context.Background()

		mockStores.EXPECT().CheckStoreExists(ctx, StoreID).Return(nil)
		mockCustomers.EXPECT().GetByID(ctx, CustomerID).Return(existingCustomer, nil)

		bad := input
		bad.Items = []order.Item{{ProductID: ProductID, Quantity: 0}}

		_, err := service.Create(ctx, bad)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
	})
}

func TestUpdateOrder(t *testing.T) {
	catalogProduct := &product.Product{ID: ProductID, Name: "Margherita", Price: 10}

	existingCustomer := &customer.Customer{
		ID:        CustomerID,
		Addresses: []customer.Address{{ID: AddressID, Street: "123 Main St"}},
	}

	input := order.Order{
		ID:                OrderID,
		CustomerAddressID: AddressID,
		PaymentMethod:     "visa",
		Items: []order.Item{
			{ProductID: ProductID, Quantity: 1, DiscountPercent: 50},
		},
	}

	t.Run("editable stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)
		mockCustomers := mockorder.NewMockCustomerService(ctrl)
		mockProducts := mockorder.NewMockProductService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		service := newTestService(mockRepo, mockCustomers, nil, mockProducts, mockTx, nil)

		ctx := context.Background()

		current := &order.Order{
			ID:         OrderID,
			CustomerID: CustomerID,
			Status:     order.StatusOrderStarted,
		}
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(current, nil)
		mockCustomers.EXPECT().GetByID(ctx, CustomerID).Return(existingCustomer, nil)
		mockProducts.EXPECT().GetByID(ctx, ProductID).Return(catalogProduct, nil)

		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockRepo.EXPECT().DeleteItems(ctx, OrderID).Return(nil)
		mockRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, data order.Order) error {
				assert.Equal(t, 5.0, data.TotalAmount)
				return nil
			})
		mockRepo.EXPECT().CreateItem(ctx, OrderID, gomock.Any()).Return("i1", nil)

		updated := &order.Order{ID: OrderID, Status: order.StatusOrderStarted, TotalAmount: 5}
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(updated, nil)

		resp, err := service.Update(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, updated, resp)
	})

	t.Run("frozen after invoice printed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)

		service := newTestService(mockRepo, nil, nil, nil, nil, nil)

		ctx := context.Background()

		current := &order.Order{ID: OrderID, Status: order.StatusInvoicePrinted}
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(current, nil)

		_, err := service.Update(ctx, input)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "customer.cannotEdit", appErr.Key)
	})

	t.Run("looser policy keeps later stages editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)
		mockCustomers := mockorder.NewMockCustomerService(ctrl)
		mockProducts := mockorder.NewMockProductService(ctrl)
		mockTx := mocktransactor.NewMockManager(ctrl)

		policy := order.NewEditPolicy(order.StatusOrderDelivered)
		service := newTestService(mockRepo, mockCustomers, nil, mockProducts, mockTx, policy)

		ctx := context.Background()

		current := &order.Order{
			ID:         OrderID,
			CustomerID: CustomerID,
			Status:     order.StatusInvoicePrinted,
		}
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(current, nil)
		mockCustomers.EXPECT().GetByID(ctx, CustomerID).Return(existingCustomer, nil)
		mockProducts.EXPECT().GetByID(ctx, ProductID).Return(catalogProduct, nil)

		mockTx.EXPECT().
			WithinTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mockRepo.EXPECT().DeleteItems(ctx, OrderID).Return(nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		mockRepo.EXPECT().CreateItem(ctx, OrderID, gomock.Any()).Return("i1", nil)
		mockRepo.EXPECT().GetByID(ctx, OrderID).Return(current, nil)

		_, err := service.Update(ctx, input)

		require.NoError(t, err)
	})
}

func TestGetAll(t *testing.T) {
	t.Run("rejects unknown status filter", func(t *testing.T) {
		service := newTestService(nil, nil, nil, nil, nil, nil)

		_, err := service.GetAll(context.Background(), db.ListFilter{Status: "Cancelled"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)

		service := newTestService(mockRepo, nil, nil, nil, nil, nil)

		ctx := context.Background()
		filter := db.ListFilter{StoreID: StoreID, Status: order.StatusOrderReceived}

		orders := []order.Order{{ID: OrderID, StoreID: StoreID}}
		mockRepo.EXPECT().GetAll(ctx, filter).Return(orders, nil)

		resp, err := service.GetAll(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, orders, resp)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mockorder.NewMockRepository(ctrl)

		service := newTestService(mockRepo, nil, nil, nil, nil, nil)

		ctx := context.Background()
		mockRepo.EXPECT().GetAll(ctx, db.ListFilter{}).Return(nil, ErrUnexpected)

		_, err := service.GetAll(ctx, db.ListFilter{})

		require.ErrorIs(t, err, ErrUnexpected)
	})
}
