package storesetup

import "time"

// StoreSetup is the administrative store record. It mirrors the shape
// of a store (code plus bilingual names) but historically lives on a
// separate SQL backend, so it keeps its own persistence path.
type StoreSetup struct {
	ID        string    `json:"id"`
	StoreCode string    `json:"storeCode"`
	EngName   string    `json:"storeEngName"`
	ArName    string    `json:"storeArName"`
	CreatedAt time.Time `json:"createdAt"`
}
