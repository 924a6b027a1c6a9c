package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/handlers"
	"github.com/itisal/itisal-backend/internal/product"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockproductservice
type Service interface {
	GetAllCategories(ctx context.Context) ([]product.Category, error)
	GetAll(ctx context.Context) ([]product.Product, error)
	GetAllByCategoryID(ctx context.Context, categoryID string) ([]product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
	SetImage(ctx context.Context, id, image string) error
}

type UploadService interface {
	UploadFile(ctx context.Context, reader io.Reader, size int64, fileExtension string) (string, error)
}

type handler struct {
	service       Service
	uploadService UploadService
	staticURL     string
	logger        *zap.Logger
}

func New(
	service Service,
	uploadService UploadService,
	staticURL string,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:       service,
		uploadService: uploadService,
		staticURL:     staticURL,
		logger:        logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/products", func(productRouter chi.Router) {
		productRouter.Get("/", apperror.Middleware(h.getAllProductsHandler))
		productRouter.Get("/categories", apperror.Middleware(h.getAllCategoriesHandler))
		productRouter.Get("/{id}", apperror.Middleware(h.getProductHandler))
		productRouter.Post("/{id}/image", apperror.Middleware(h.uploadImageHandler))
	})
}

// @Tags		products
// @Param		category	query	string	false	"filter by category id"
// @Success	200	{object}	ProductsResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/products [get]
func (h *handler) getAllProductsHandler(w http.ResponseWriter, r *http.Request) error {
	var (
		products []product.Product
		err      error
	)

	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		products, err = h.service.GetAllByCategoryID(r.Context(), categoryID)
	} else {
		products, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductsResponse(products, h.staticURL))

	return nil
}

// @Tags		products
// @Success	200	{object}	CategoriesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/products/categories [get]
func (h *handler) getAllCategoriesHandler(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, CategoriesResponse{Categories: categories})

	return nil
}

// @Tags		products
// @Param		id	path	string	true	"product id"
// @Success	200	{object}	ProductResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/products/{id} [get]
func (h *handler) getProductHandler(w http.ResponseWriter, r *http.Request) error {
	existingProduct, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductResponse(*existingProduct, h.staticURL))

	return nil
}

// @Tags		products
// @Param		id	path	string	true	"product id"
// @Param		image	formData	file	true	"product image"
// @Success	200	{object}	ProductResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/products/{id}/image [post]
func (h *handler) uploadImageHandler(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	if _, err := h.service.GetByID(r.Context(), id); err != nil {
		return err
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return apperror.NewAppError("failed to parse multipart form")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return apperror.NewAppError("image file is required")
	}
	defer file.Close()

	extension := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if extension == "" {
		return apperror.NewAppError("image file must have an extension")
	}

	objectName, err := h.uploadService.UploadFile(r.Context(), file, header.Size, extension)
	if err != nil {
		return err
	}

	if err := h.service.SetImage(r.Context(), id, objectName); err != nil {
		return err
	}

	updatedProduct, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, NewProductResponse(*updatedProduct, h.staticURL))

	return nil
}
