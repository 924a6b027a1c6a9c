package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/order"
	"github.com/itisal/itisal-backend/internal/order/db"
	"github.com/itisal/itisal-backend/internal/product"
	"github.com/itisal/itisal-backend/pkg/transactor"
	"github.com/itisal/itisal-backend/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockorder
type Repository interface {
	GetByID(ctx context.Context, id string) (*order.Order, error)
	GetAll(ctx context.Context, filter db.ListFilter) ([]order.Order, error)
	Create(ctx context.Context, data order.Order) (string, error)
	CreateItem(ctx context.Context, orderID string, item order.Item) (string, error)
	DeleteItems(ctx context.Context, orderID string) error
	Update(ctx context.Context, data order.Order) error
	UpdateStatus(ctx context.Context, id string, status order.Status) error
}

type CustomerService interface {
	GetByID(ctx context.Context, id string) (*customer.Customer, error)
}

type StoreService interface {
	CheckStoreExists(ctx context.Context, id string) error
}

type ProductService interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

type service struct {
	repository      Repository
	customerService CustomerService
	storeService    StoreService
	productService  ProductService
	txManager       transactor.Manager
	editPolicy      order.EditPolicy
	logger          *zap.Logger
}

func New(
	repository Repository,
	customerService CustomerService,
	storeService StoreService,
	productService ProductService,
	txManager transactor.Manager,
	editPolicy order.EditPolicy,
	logger *zap.Logger,
) *service {
	if editPolicy == nil {
		editPolicy = order.DefaultEditPolicy
	}

	return &service{
		repository:      repository,
		customerService: customerService,
		storeService:    storeService,
		productService:  productService,
		txManager:       txManager,
		editPolicy:      editPolicy,
		logger:          logger,
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*order.Order, error) {
	existingOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching order by id", zap.Error(err))

		return nil, err
	}

	return existingOrder, nil
}

func (s *service) GetAll(ctx context.Context, filter db.ListFilter) ([]order.Order, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, apperror.NewAppError(fmt.Sprintf("unknown order status: %q", filter.Status))
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching orders", zap.Error(err))

		return nil, err
	}

	return orders, nil
}

// Create takes a POS cart and persists it as a new order in the
// initial workflow stage. Item names and unit prices come from the
// catalog, never from the client, and the total is recomputed
// server-side.
func (s *service) Create(ctx context.Context, data order.Order) (*order.Order, error) {
	if len(data.Items) == 0 {
		return nil, apperror.NewLocalizedError("order must contain at least one item", "pos.emptyCart")
	}

	if err := s.storeService.CheckStoreExists(ctx, data.StoreID); err != nil {
		return nil, err
	}

	if err := s.checkCustomerAddress(ctx, data.CustomerID, data.CustomerAddressID); err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, data.Items)
	if err != nil {
		return nil, err
	}

	data.Items = items
	data.Status = order.StatusOrderReceived
	data.TotalAmount = order.Total(items)

	var orderID string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.repository.Create(txCtx, data)
		if err != nil {
			return err
		}

		for _, item := range data.Items {
			if _, err := s.repository.CreateItem(txCtx, id, item); err != nil {
				return err
			}
		}

		orderID = id

		return nil
	})
	if err != nil {
		s.logger.Error("unexpected error when creating order", zap.Error(err))

		return nil, err
	}

	return s.GetByID(ctx, orderID)
}

// AdvanceStatus moves the order exactly one stage forward. Skipping,
// repeating, or reversing a stage is rejected.
func (s *service) AdvanceStatus(ctx context.Context, id string, next order.Status) (*order.Order, error) {
	existingOrder, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existingOrder.Status.CanTransitionTo(next) {
		return nil, apperror.NewAppError(fmt.Sprintf(
			"invalid status transition from %q to %q", existingOrder.Status, next,
		))
	}

	if err := s.repository.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error("unexpected error when updating order status", zap.Error(err))

		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Update replaces the editable parts of an order: address, payment
// method, and line items. The edit policy gates the whole operation
// on the current workflow stage.
func (s *service) Update(ctx context.Context, data order.Order) (*order.Order, error) {
	existingOrder, err := s.GetByID(ctx, data.ID)
	if err != nil {
		return nil, err
	}

	if !s.editPolicy(existingOrder.Status) {
		return nil, apperror.NewLocalizedError(
			fmt.Sprintf("cannot edit order with status %q", existingOrder.Status),
			"customer.cannotEdit",
		)
	}

	if len(data.Items) == 0 {
		return nil, apperror.NewLocalizedError("order must contain at least one item", "pos.emptyCart")
	}

	if err := s.checkCustomerAddress(ctx, existingOrder.CustomerID, data.CustomerAddressID); err != nil {
		return nil, err
	}

	items, err := s.priceItems(ctx, data.Items)
	if err != nil {
		return nil, err
	}

	data.Items = items
	data.TotalAmount = order.Total(items)

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repository.DeleteItems(txCtx, data.ID); err != nil {
			return err
		}

		if err := s.repository.Update(txCtx, data); err != nil {
			return err
		}

		for _, item := range data.Items {
			if _, err := s.repository.CreateItem(txCtx, data.ID, item); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("unexpected error when updating order", zap.Error(err))

		return nil, err
	}

	return s.GetByID(ctx, data.ID)
}

// checkCustomerAddress verifies the delivery address is one of the
// customer's saved addresses; the POS flow only ever offers those.
func (s *service) checkCustomerAddress(ctx context.Context, customerID, addressID string) error {
	existingCustomer, err := s.customerService.GetByID(ctx, customerID)
	if err != nil {
		return err
	}

	for _, addr := range existingCustomer.Addresses {
		if addr.ID == addressID {
			return nil
		}
	}

	return apperror.NewLocalizedError("please select an address", "customer.selectAddress")
}

// priceItems resolves catalog data for each line item.
func (s *service) priceItems(ctx context.Context, items []order.Item) ([]order.Item, error) {
	productIDs := make([]string, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, apperror.NewAppError("item quantity must be positive")
		}
		if item.DiscountPercent < 0 || item.DiscountPercent > 100 {
			return nil, apperror.NewAppError("item discount must be between 0 and 100")
		}
		productIDs[i] = item.ProductID
	}

	products := make(map[string]*product.Product)
	for _, id := range utils.RemoveDuplicates(productIDs) {
		p, err := s.productService.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		products[id] = p
	}

	priced := make([]order.Item, len(items))
	for i, item := range items {
		p := products[item.ProductID]
		item.Name = p.Name
		item.UnitPrice = p.Price
		priced[i] = item
	}

	return priced, nil
}
