package store

import (
	"time"

	"github.com/itisal/itisal-backend/internal/region"
)

// Store is a selling location. Regions lists the delivery areas the
// store is linked to; a store may serve zero regions.
type Store struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ArName    string          `json:"arName"`
	Regions   []region.Region `json:"regions"`
	CreatedAt time.Time       `json:"createdAt"`
}

// RegionLink ties a store to a delivery region. The pair is unique.
type RegionLink struct {
	ID       string `json:"id"`
	StoreID  string `json:"storeId"`
	RegionID string `json:"regionId"`
}
