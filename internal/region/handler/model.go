package handler

import (
	"github.com/itisal/itisal-backend/internal/region"
	"github.com/itisal/itisal-backend/pkg/types"
)

type RegionRequest struct {
	EngName       string              `json:"regionEngName" validate:"required"`
	ArName        string              `json:"regionArName" validate:"required"`
	DeliveryValue types.FloatOrString `json:"deliveryValue" validate:"required"`
}

func (rr *RegionRequest) ToDomain(id string) region.Region {
	return region.Region{
		ID:            id,
		EngName:       rr.EngName,
		ArName:        rr.ArName,
		DeliveryValue: float64(rr.DeliveryValue),
	}
}

type RegionResponse struct {
	Region region.Region `json:"region"`
}

type RegionsResponse struct {
	Regions []region.Region `json:"regions"`
}
