package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/handlers"
)

// StatsService is the interface that wraps methods for dashboard statistics.
type StatsService interface {
	// Overview returns the content counters for the dashboard.
	Overview(ctx context.Context) (*models.StatsOverview, error)
}

// StatsHandler handles HTTP requests for dashboard statistics
type StatsHandler struct {
	handlers.BaseHandler
	service StatsService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(svc StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all statistics routes
// Note: This assumes the router is already scoped to /api
func (h *StatsHandler) RegisterRoutes(r chi.Router, roleMiddleware func(http.Handler) http.Handler) {
	r.With(roleMiddleware).Get("/stats/overview", h.Overview)
}

// Overview handles GET /api/stats/overview
// @Summary Get the dashboard counters
// @Description Model, quiz and student counts, computed independently.
// @Tags stats
// @Produce json
// @Success 200 {object} models.StatsOverview "The counters"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /stats/overview [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, overview)
}
