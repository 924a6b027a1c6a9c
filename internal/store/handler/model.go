package handler

import "github.com/itisal/itisal-backend/internal/store"

type StoreRequest struct {
	Name   string `json:"name" validate:"required"`
	ArName string `json:"arName" validate:"required"`
}

func (sr *StoreRequest) ToDomain(id string) store.Store {
	return store.Store{
		ID:     id,
		Name:   sr.Name,
		ArName: sr.ArName,
	}
}

type RegionLinkRequest struct {
	RegionID string `json:"regionId" validate:"required"`
}

type StoreResponse struct {
	Store store.Store `json:"store"`
}

type StoresResponse struct {
	Stores []store.Store `json:"stores"`
}

type RegionLinkResponse struct {
	Link store.RegionLink `json:"link"`
}
