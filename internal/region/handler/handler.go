package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/region"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockregionservice
type Service interface {
	GetAll(ctx context.Context) ([]region.Region, error)
	GetByID(ctx context.Context, id string) (*region.Region, error)
	Create(ctx context.Context, data region.Region) (*region.Region, error)
	Update(ctx context.Context, data region.Region) (*region.Region, error)
	Delete(ctx context.Context, id string) error
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
	router.Route("/regions", func(regionRouter chi.Router) {
		regionRouter.Get("/", apperror.Middleware(h.getAllRegionsHandler))
		regionRouter.Post("/", apperror.Middleware(h.createRegionHandler))
		regionRouter.Get("/{id}", apperror.Middleware(h.getRegionHandler))
		regionRouter.Put("/{id}", apperror.Middleware(h.updateRegionHandler))
		regionRouter.Delete("/{id}", apperror.Middleware(h.deleteRegionHandler))
	})
}

// @Tags		regions
// @Success	200	{object}	RegionsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/regions [get]
func (h *handler) getAllRegionsHandler(w http.ResponseWriter, r *http.Request) error {
	regions, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, RegionsResponse{Regions: regions})

	return nil
}

// @Tags		regions
// @Param		request	body	RegionRequest	true	"region data"
// @Success	200	{object}	RegionResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/regions [post]
func (h *handler) createRegionHandler(w http.ResponseWriter, r *http.Request) error {
	var dto RegionRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdRegion, err := h.service.Create(r.Context(), dto.ToDomain(""))
	if err != nil {
		return err
	}

	render.JSON(w, r, RegionResponse{Region: *createdRegion})

	return nil
}

// @Tags		regions
// @Param		id	path	string	true	"region id"
// @Success	200	{object}	RegionResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/regions/{id} [get]
func (h *handler) getRegionHandler(w http.ResponseWriter, r *http.Request) error {
	existingRegion, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, RegionResponse{Region: *existingRegion})

	return nil
}

// @Tags		regions
// @Param		id	path	string	true	"region id"
// @Param		request	body	RegionRequest	true	"region data"
// @Success	200	{object}	RegionResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/regions/{id} [put]
func (h *handler) updateRegionHandler(w http.ResponseWriter, r *http.Request) error {
	var dto RegionRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedRegion, err := h.service.Update(r.Context(), dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, RegionResponse{Region: *updatedRegion})

	return nil
}

// @Tags		regions
// @Param		id	path	string	true	"region id"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/regions/{id} [delete]
func (h *handler) deleteRegionHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}
