package order

import (
	"fmt"
	"time"
)

// Status is one stage of the fixed order workflow. The progression is
// linear and forward-only; there is no cancellation or reverse
// transition in the modeled flow.
type Status string

const (
	StatusOrderReceived       Status = "Order Received"
	StatusStoreReceived       Status = "Store Received"
	StatusOrderStarted        Status = "Order Started"
	StatusDeliveryBoySelected Status = "Delivery Boy Selected"
	StatusInvoicePrinted      Status = "Invoice Printed"
	StatusOrderDelivered      Status = "Order Delivered"
)

// statusOrder fixes the progression. Index order is the business
// order; do not reorder.
var statusOrder = []Status{
	StatusOrderReceived,
	StatusStoreReceived,
	StatusOrderStarted,
	StatusDeliveryBoySelected,
	StatusInvoicePrinted,
	StatusOrderDelivered,
}

func AllStatuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// OpenStatuses is every stage except the terminal delivered one.
func OpenStatuses() []Status {
	return AllStatuses()[:len(statusOrder)-1]
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown order status: %q", raw)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	return s.index() >= 0
}

func (s Status) IsTerminal() bool {
	return s == StatusOrderDelivered
}

// IsOpen reports whether an order in this status still counts toward
// the open-orders metric.
func (s Status) IsOpen() bool {
	return s.IsValid() && !s.IsTerminal()
}

// Next returns the following stage. ok is false at the terminal stage
// or for an invalid status.
func (s Status) Next() (Status, bool) {
	i := s.index()
	if i < 0 || i == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[i+1], true
}

// CanTransitionTo permits exactly one step forward. Anything else,
// including standing still or moving backward, is rejected.
func (s Status) CanTransitionTo(next Status) bool {
	expected, ok := s.Next()
	return ok && next == expected
}

func (s Status) index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// EditPolicy decides whether an order may still be edited given its
// current status. The exact cutoff belongs to configuration, not code;
// the only hard rule is that a delivered order is read-only.
type EditPolicy func(Status) bool

// NewEditPolicy builds a policy allowing edits strictly before the
// cutoff stage. Since the cutoff is drawn from the status set, the
// terminal stage is never editable under any cutoff.
func NewEditPolicy(cutoff Status) EditPolicy {
	return func(s Status) bool {
		i, c := s.index(), cutoff.index()
		return i >= 0 && c >= 0 && i < c
	}
}

// DefaultEditPolicy freezes an order once its invoice is printed.
var DefaultEditPolicy = NewEditPolicy(StatusInvoicePrinted)

type Order struct {
	ID                string    `json:"id"`
	StoreID           string    `json:"storeId"`
	CustomerID        string    `json:"customerId"`
	CustomerAddressID string    `json:"customerAddressId"`
	Status            Status    `json:"status"`
	PaymentMethod     string    `json:"paymentMethod"`
	TotalAmount       float64   `json:"totalAmount"`
	Items             []Item    `json:"items"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Item struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	Notes           string  `json:"notes"`
}

// LineTotal applies the per-line discount.
func (i Item) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice * (1 - i.DiscountPercent/100)
}

// Total recomputes the order amount from its items. The persisted
// total must always equal this value.
func Total(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}
