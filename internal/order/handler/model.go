package handler

import (
	"github.com/itisal/itisal-backend/internal/order"
	"github.com/itisal/itisal-backend/pkg/types"
)

type OrderRequest struct {
	StoreID           string             `json:"storeId" validate:"required"`
	CustomerID        string             `json:"customerId" validate:"required"`
	CustomerAddressID string             `json:"customerAddressId" validate:"required"`
	PaymentMethod     string             `json:"paymentMethod" validate:"required,oneof=cash visa credit"`
	Items             []OrderItemRequest `json:"items" validate:"required,dive"`
}

type OrderItemRequest struct {
	ProductID       string              `json:"productId" validate:"required"`
	Quantity        types.IntOrString   `json:"quantity" validate:"required"`
	DiscountPercent types.FloatOrString `json:"discountPercent"`
	Notes           string              `json:"notes"`
}

func (or *OrderRequest) ToDomain() order.Order {
	return order.Order{
		StoreID:           or.StoreID,
		CustomerID:        or.CustomerID,
		CustomerAddressID: or.CustomerAddressID,
		PaymentMethod:     or.PaymentMethod,
		Items:             toDomainItems(or.Items),
	}
}

type OrderUpdateRequest struct {
	CustomerAddressID string             `json:"customerAddressId" validate:"required"`
	PaymentMethod     string             `json:"paymentMethod" validate:"required,oneof=cash visa credit"`
	Items             []OrderItemRequest `json:"items" validate:"required,dive"`
}

func (or *OrderUpdateRequest) ToDomain(id string) order.Order {
	return order.Order{
		ID:                id,
		CustomerAddressID: or.CustomerAddressID,
		PaymentMethod:     or.PaymentMethod,
		Items:             toDomainItems(or.Items),
	}
}

func toDomainItems(items []OrderItemRequest) []order.Item {
	out := make([]order.Item, len(items))
	for i, item := range items {
		out[i] = order.Item{
			ProductID:       item.ProductID,
			Quantity:        int(item.Quantity),
			DiscountPercent: float64(item.DiscountPercent),
			Notes:           item.Notes,
		}
	}
	return out
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderResponse struct {
	Order order.Order `json:"order"`
}

type OrdersResponse struct {
	Orders []order.Order `json:"orders"`
}

type StatusesResponse struct {
	Statuses []order.Status `json:"statuses"`
}
