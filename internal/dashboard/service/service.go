package service

import (
	"context"

	"github.com/itisal/itisal-backend/internal/dashboard"
	"github.com/itisal/itisal-backend/internal/order"
	orderdb "github.com/itisal/itisal-backend/internal/order/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockdashboard
type OrderService interface {
	GetAll(ctx context.Context, filter orderdb.ListFilter) ([]order.Order, error)
}

type service struct {
	orderService OrderService
	logger       *zap.Logger
}

func New(
	orderService OrderService,
	logger *zap.Logger,
) *service {
	return &service{
		orderService: orderService,
		logger:       logger,
	}
}

// GetMetrics re-derives the dashboard numbers from the live order
// collection on every call; nothing is cached.
func (s *service) GetMetrics(ctx context.Context, storeFilter string) (*dashboard.Metrics, error) {
	if storeFilter == "" {
		storeFilter = dashboard.FilterAll
	}

	orders, err := s.orderService.GetAll(ctx, orderdb.ListFilter{})
	if err != nil {
		s.logger.Error("unexpected error when fetching orders for dashboard", zap.Error(err))

		return nil, err
	}

	metrics := dashboard.Aggregate(orders, storeFilter)

	return &metrics, nil
}
