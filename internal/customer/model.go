package customer

import "time"

// Customer is looked up by phone number before an order is taken.
// Addresses is never empty for a persisted customer: creation always
// materializes the free-text address as the first saved entry, and the
// POS flow requires picking one of them.
type Customer struct {
	ID             string         `json:"id"`
	PhoneNumber    string         `json:"phoneNumber"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	PaymentMethods PaymentMethods `json:"paymentMethods"`
	RegionID       *string        `json:"regionId,omitempty"`
	Addresses      []Address      `json:"addresses"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// PaymentMethods are independent toggles, not mutually exclusive.
type PaymentMethods struct {
	Cash   bool `json:"cash"`
	Visa   bool `json:"visa"`
	Credit bool `json:"credit"`
}

// Address rows keep city optional, matching the nullable column.
type Address struct {
	ID     string  `json:"id"`
	Street string  `json:"street"`
	City   *string `json:"city"`
}
