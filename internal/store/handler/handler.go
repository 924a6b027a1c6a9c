package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/store"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstoreservice
type Service interface {
	GetAll(ctx context.Context) ([]store.Store, error)
	GetByID(ctx context.Context, id string) (*store.Store, error)
	Create(ctx context.Context, data store.Store) (*store.Store, error)
	Update(ctx context.Context, data store.Store) (*store.Store, error)
	Delete(ctx context.Context, id string) error

	AddRegionLink(ctx context.Context, storeID, regionID string) (*store.RegionLink, error)
	RemoveRegionLink(ctx context.Context, storeID, regionID string) error
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(
	service Service,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/stores", func(storeRouter chi.Router) {
		storeRouter.Get("/", apperror.Middleware(h.getAllStoresHandler))
		storeRouter.Post("/", apperror.Middleware(h.createStoreHandler))
		storeRouter.Get("/{id}", apperror.Middleware(h.getStoreHandler))
		storeRouter.Put("/{id}", apperror.Middleware(h.updateStoreHandler))
		storeRouter.Delete("/{id}", apperror.Middleware(h.deleteStoreHandler))

		storeRouter.Post("/{id}/regions", apperror.Middleware(h.addRegionLinkHandler))
		storeRouter.Delete("/{id}/regions/{regionId}", apperror.Middleware(h.removeRegionLinkHandler))
	})
}

// @Tags		stores
// @Success	200	{object}	StoresResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/stores [get]
func (h *handler) getAllStoresHandler(w http.ResponseWriter, r *http.Request) error {
	stores, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, StoresResponse{Stores: stores})

	return nil
}

// @Tags		stores
// @Param		request	body	StoreRequest	true	"store data"
// @Success	200	{object}	StoreResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/stores [post]
func (h *handler) createStoreHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoreRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdStore, err := h.service.Create(r.Context(), dto.ToDomain(""))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *createdStore})

	return nil
}

// @Tags		stores
// @Param		id	path	string	true	"store id"
// @Success	200	{object}	StoreResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id} [get]
func (h *handler) getStoreHandler(w http.ResponseWriter, r *http.Request) error {
	existingStore, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *existingStore})

	return nil
}

// @Tags		stores
// @Param		id	path	string	true	"store id"
// @Param		request	body	StoreRequest	true	"store data"
// @Success	200	{object}	StoreResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id} [put]
func (h *handler) updateStoreHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoreRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedStore, err := h.service.Update(r.Context(), dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreResponse{Store: *updatedStore})

	return nil
}

// @Tags		stores
// @Param		id	path	string	true	"store id"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id} [delete]
func (h *handler) deleteStoreHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}

// @Tags		stores
// @Param		id	path	string	true	"store id"
// @Param		request	body	RegionLinkRequest	true	"region to link"
// @Success	200	{object}	RegionLinkResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id}/regions [post]
func (h *handler) addRegionLinkHandler(w http.ResponseWriter, r *http.Request) error {
	var dto RegionLinkRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	link, err := h.service.AddRegionLink(r.Context(), chi.URLParam(r, "id"), dto.RegionID)
	if err != nil {
		return err
	}

	render.JSON(w, r, RegionLinkResponse{Link: *link})

	return nil
}

// @Tags		stores
// @Param		id	path	string	true	"store id"
// @Param		regionId	path	string	true	"region id"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/stores/{id}/regions/{regionId} [delete]
func (h *handler) removeRegionLinkHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.RemoveRegionLink(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "regionId")); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}
