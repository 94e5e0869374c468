package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
	authmw "github.com/embryolab/backend/libs/auth/middleware"
	"github.com/embryolab/backend/libs/handlers"
)

// EventLogService is the interface that wraps methods for event log business logic.
type EventLogService interface {
	// List retrieves event log entries, newest first.
	List(ctx context.Context, q models.EventLogListQuery) (*models.PagedResult[models.EventLog], error)
	// GetByID retrieves a single entry by ID.
	GetByID(ctx context.Context, eventLogID string) (*models.EventLog, error)
	// Create records a usage event attributed to the principal.
	Create(ctx context.Context, principal auth.Principal, req *models.CreateEventLogRequest) (*models.EventLog, error)
}

// EventLogHandler handles HTTP requests for usage event logs
type EventLogHandler struct {
	handlers.BaseHandler
	service EventLogService
}

// NewEventLogHandler creates a new event log handler
func NewEventLogHandler(svc EventLogService, logger *zap.Logger) *EventLogHandler {
	return &EventLogHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all event log routes
// Note: This assumes the router is already scoped to /api
func (h *EventLogHandler) RegisterRoutes(r chi.Router, authMiddleware, professorMiddleware func(http.Handler) http.Handler) {
	r.With(professorMiddleware).Get("/event-logs", h.List)
	r.With(professorMiddleware).Get("/event-logs/{eventLogId}", h.GetByID)
	r.With(authMiddleware).Post("/event-logs", h.Create)
}

// List handles GET /api/event-logs
// @Summary List usage events
// @Tags event-logs
// @Produce json
// @Param userId query string false "Acting user filter"
// @Param eventType query string false "Event type filter"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.EventLog] "Page of events, newest first"
// @Failure 403 {object} map[string]string "Professor role required"
// @Router /event-logs [get]
func (h *EventLogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := models.EventLogListQuery{
		UserID:    r.URL.Query().Get("userId"),
		EventType: r.URL.Query().Get("eventType"),
		PageQuery: parsePageQuery(r),
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/event-logs/{eventLogId}
// @Summary Get a usage event
// @Tags event-logs
// @Produce json
// @Param eventLogId path string true "Event log ID"
// @Success 200 {object} models.EventLog "The event"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /event-logs/{eventLogId} [get]
func (h *EventLogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(r.Context(), chi.URLParam(r, "eventLogId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, e)
}

// Create handles POST /api/event-logs
// @Summary Record a usage event
// @Description The acting user is taken from the access token.
// @Tags event-logs
// @Accept json
// @Produce json
// @Param request body models.CreateEventLogRequest true "Event fields"
// @Success 201 {object} models.EventLog "The recorded event"
// @Failure 400 {object} map[string]string "Validation error"
// @Router /event-logs [post]
func (h *EventLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateEventLogRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.service.Create(r.Context(), principal, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, e)
}
