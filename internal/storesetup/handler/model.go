package handler

import (
	"github.com/itisal/itisal-backend/internal/storesetup"
)

type StoreSetupRequest struct {
	StoreCode string `json:"storeCode" validate:"required,max=20"`
	EngName   string `json:"storeEngName" validate:"required"`
	ArName    string `json:"storeArName" validate:"required"`
}

func (ssr *StoreSetupRequest) ToDomain(id string) storesetup.StoreSetup {
	return storesetup.StoreSetup{
		ID:        id,
		StoreCode: ssr.StoreCode,
		EngName:   ssr.EngName,
		ArName:    ssr.ArName,
	}
}

type StoreSetupResponse struct {
	StoreSetup storesetup.StoreSetup `json:"storeSetup"`
}

type StoreSetupsResponse struct {
	StoreSetups []storesetup.StoreSetup `json:"storeSetups"`
}
