package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/customer"
	"github.com/itisal/itisal-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcustomerservice
type Service interface {
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	GetByID(ctx context.Context, id string) (*customer.Customer, error)
	Create(ctx context.Context, data customer.Customer) (*customer.Customer, error)
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
	router.Route("/customers", func(customerRouter chi.Router) {
		customerRouter.Post("/", apperror.Middleware(h.createCustomerHandler))
		customerRouter.Get("/phone/{phone}", apperror.Middleware(h.findByPhoneHandler))
		customerRouter.Get("/{id}", apperror.Middleware(h.getCustomerHandler))
	})
}

// @Tags		customers
// @Param		phone	path	string	true	"phone number, digits only"
// @Success	200	{object}	CustomerResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/customers/phone/{phone} [get]
func (h *handler) findByPhoneHandler(w http.ResponseWriter, r *http.Request) error {
	existingCustomer, err := h.service.FindByPhone(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		return err
	}

	render.JSON(w, r, CustomerResponse{Customer: *existingCustomer})

	return nil
}

// @Tags		customers
// @Param		id	path	string	true	"customer id"
// @Success	200	{object}	CustomerResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/customers/{id} [get]
func (h *handler) getCustomerHandler(w http.ResponseWriter, r *http.Request) error {
	existingCustomer, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, CustomerResponse{Customer: *existingCustomer})

	return nil
}

// @Tags		customers
// @Param		request	body	CustomerRequest	true	"customer data"
// @Success	200	{object}	CustomerResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/customers [post]
func (h *handler) createCustomerHandler(w http.ResponseWriter, r *http.Request) error {
	var dto CustomerRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdCustomer, err := h.service.Create(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, CustomerResponse{Customer: *createdCustomer})

	return nil
}
