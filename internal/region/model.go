package region

import "time"

// Region is delivery reference data: a named area with its delivery
// fee, carried in both display languages.
type Region struct {
	ID            string    `json:"id"`
	EngName       string    `json:"regionEngName"`
	ArName        string    `json:"regionArName"`
	DeliveryValue float64   `json:"deliveryValue"`
	CreatedAt     time.Time `json:"createdAt"`
}
