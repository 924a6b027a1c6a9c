package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/storesetup"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockstoresetupservice
type Service interface {
	GetAll(ctx context.Context) ([]storesetup.StoreSetup, error)
	GetByID(ctx context.Context, id string) (*storesetup.StoreSetup, error)
	Create(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error)
	Update(ctx context.Context, data storesetup.StoreSetup) (*storesetup.StoreSetup, error)
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
	router.Route("/store-setup", func(setupRouter chi.Router) {
		setupRouter.Get("/", apperror.Middleware(h.getAllStoreSetupsHandler))
		setupRouter.Post("/", apperror.Middleware(h.createStoreSetupHandler))
		setupRouter.Get("/{id}", apperror.Middleware(h.getStoreSetupHandler))
		setupRouter.Put("/{id}", apperror.Middleware(h.updateStoreSetupHandler))
		setupRouter.Delete("/{id}", apperror.Middleware(h.deleteStoreSetupHandler))
	})
}

// @Tags		store-setup
// @Success	200	{object}	StoreSetupsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/store-setup [get]
func (h *handler) getAllStoreSetupsHandler(w http.ResponseWriter, r *http.Request) error {
	setups, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreSetupsResponse{StoreSetups: setups})

	return nil
}

// @Tags		store-setup
// @Param		request	body	StoreSetupRequest	true	"store setup data"
// @Success	200	{object}	StoreSetupResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/store-setup [post]
func (h *handler) createStoreSetupHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoreSetupRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdSetup, err := h.service.Create(r.Context(), dto.ToDomain(""))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreSetupResponse{StoreSetup: *createdSetup})

	return nil
}

// @Tags		store-setup
// @Param		id	path	string	true	"store setup id"
// @Success	200	{object}	StoreSetupResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/store-setup/{id} [get]
func (h *handler) getStoreSetupHandler(w http.ResponseWriter, r *http.Request) error {
	existingSetup, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreSetupResponse{StoreSetup: *existingSetup})

	return nil
}

// @Tags		store-setup
// @Param		id	path	string	true	"store setup id"
// @Param		request	body	StoreSetupRequest	true	"store setup data"
// @Success	200	{object}	StoreSetupResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/store-setup/{id} [put]
func (h *handler) updateStoreSetupHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StoreSetupRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedSetup, err := h.service.Update(r.Context(), dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, StoreSetupResponse{StoreSetup: *updatedSetup})

	return nil
}

// @Tags		store-setup
// @Param		id	path	string	true	"store setup id"
// @Success	204
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/store-setup/{id} [delete]
func (h *handler) deleteStoreSetupHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}
