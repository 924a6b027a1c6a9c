package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/order"
	"github.com/itisal/itisal-backend/internal/order/db"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockorderservice
type Service interface {
	GetByID(ctx context.Context, id string) (*order.Order, error)
	GetAll(ctx context.Context, filter db.ListFilter) ([]order.Order, error)
	Create(ctx context.Context, data order.Order) (*order.Order, error)
	Update(ctx context.Context, data order.Order) (*order.Order, error)
	AdvanceStatus(ctx context.Context, id string, next order.Status) (*order.Order, error)
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
	router.Route("/orders", func(orderRouter chi.Router) {
		orderRouter.Get("/", apperror.Middleware(h.getAllOrdersHandler))
		orderRouter.Post("/", apperror.Middleware(h.createOrderHandler))
		orderRouter.Get("/statuses", apperror.Middleware(h.getStatusesHandler))
		orderRouter.Get("/{id}", apperror.Middleware(h.getOrderHandler))
		orderRouter.Put("/{id}", apperror.Middleware(h.updateOrderHandler))
		orderRouter.Patch("/{id}/status", apperror.Middleware(h.advanceStatusHandler))
	})
}

// @Tags		orders
// @Param		status	query	string	false	"filter by workflow status"
// @Param		store	query	string	false	"filter by store id"
// @Param		customer	query	string	false	"filter by customer id"
// @Success	200	{object}	OrdersResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/orders [get]
func (h *handler) getAllOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	filter := db.ListFilter{
		StoreID:    r.URL.Query().Get("store"),
		CustomerID: r.URL.Query().Get("customer"),
		Status:     order.Status(r.URL.Query().Get("status")),
	}

	orders, err := h.service.GetAll(r.Context(), filter)
	if err != nil {
		return err
	}

	render.JSON(w, r, OrdersResponse{Orders: orders})

	return nil
}

// @Tags		orders
// @Success	200	{object}	StatusesResponse
// @Router		/orders/statuses [get]
func (h *handler) getStatusesHandler(w http.ResponseWriter, r *http.Request) error {
	render.JSON(w, r, StatusesResponse{Statuses: order.AllStatuses()})

	return nil
}

// @Tags		orders
// @Param		id	path	string	true	"order id"
// @Success	200	{object}	OrderResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [get]
func (h *handler) getOrderHandler(w http.ResponseWriter, r *http.Request) error {
	existingOrder, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *existingOrder})

	return nil
}

// @Tags		orders
// @Param		request	body	OrderRequest	true	"order data"
// @Success	200	{object}	OrderResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/orders [post]
func (h *handler) createOrderHandler(w http.ResponseWriter, r *http.Request) error {
	var dto OrderRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	createdOrder, err := h.service.Create(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *createdOrder})

	return nil
}

// @Tags		orders
// @Param		id	path	string	true	"order id"
// @Param		request	body	OrderUpdateRequest	true	"order data"
// @Success	200	{object}	OrderResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/orders/{id} [put]
func (h *handler) updateOrderHandler(w http.ResponseWriter, r *http.Request) error {
	var dto OrderUpdateRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	updatedOrder, err := h.service.Update(r.Context(), dto.ToDomain(chi.URLParam(r, "id")))
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *updatedOrder})

	return nil
}

// @Tags		orders
// @Param		id	path	string	true	"order id"
// @Param		request	body	StatusRequest	true	"next workflow status"
// @Success	200	{object}	OrderResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/orders/{id}/status [patch]
func (h *handler) advanceStatusHandler(w http.ResponseWriter, r *http.Request) error {
	var dto StatusRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	next, err := order.ParseStatus(dto.Status)
	if err != nil {
		return apperror.NewAppError(err.Error())
	}

	updatedOrder, err := h.service.AdvanceStatus(r.Context(), chi.URLParam(r, "id"), next)
	if err != nil {
		return err
	}

	render.JSON(w, r, OrderResponse{Order: *updatedOrder})

	return nil
}
