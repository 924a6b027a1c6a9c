package handler

import "github.com/itisal/itisal-backend/internal/dashboard"

type MetricsResponse struct {
	Metrics dashboard.Metrics `json:"metrics"`
}
