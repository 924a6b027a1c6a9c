package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/itisal/itisal-backend/internal/apperror"
	"github.com/itisal/itisal-backend/internal/dashboard"
	"github.com/itisal/itisal-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockdashboardservice
type Service interface {
	GetMetrics(ctx context.Context, storeFilter string) (*dashboard.Metrics, error)
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
	router.Route("/dashboard", func(dashboardRouter chi.Router) {
		dashboardRouter.Get("/metrics", apperror.Middleware(h.getMetricsHandler))
	})
}

// @Tags		dashboard
// @Param		store	query	string	false	"store id or 'all'"
// @Success	200	{object}	MetricsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/dashboard/metrics [get]
func (h *handler) getMetricsHandler(w http.ResponseWriter, r *http.Request) error {
	metrics, err := h.service.GetMetrics(r.Context(), r.URL.Query().Get("store"))
	if err != nil {
		return err
	}

	render.JSON(w, r, MetricsResponse{Metrics: *metrics})

	return nil
}
