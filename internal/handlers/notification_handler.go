package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
	authmw "github.com/embryolab/backend/libs/auth/middleware"
	"github.com/embryolab/backend/libs/handlers"
)

// NotificationService is the interface that wraps methods for notification business logic.
type NotificationService interface {
	// List retrieves notifications; non-professors only ever see their own.
	List(ctx context.Context, principal auth.Principal, q models.NotificationListQuery) (*models.PagedResult[models.Notification], error)
	// GetByID retrieves a notification, requiring Professor or ownership.
	GetByID(ctx context.Context, principal auth.Principal, notificationID string) (*models.Notification, error)
	// Create sends a notification to one user.
	Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error)
	// MarkRead flags one notification as read, requiring Professor or ownership.
	MarkRead(ctx context.Context, principal auth.Principal, notificationID string) (*models.Notification, error)
	// MarkAllRead flags a user's unread notifications as read, returning the count.
	MarkAllRead(ctx context.Context, principal auth.Principal, userID string) (int, error)
	// Delete deletes a notification.
	Delete(ctx context.Context, notificationID string) error
}

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	handlers.BaseHandler
	service NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(svc NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all notification routes
// Note: This assumes the router is already scoped to /api
func (h *NotificationHandler) RegisterRoutes(r chi.Router, authMiddleware, roleMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/notifications", h.List)
	r.With(roleMiddleware).Post("/notifications", h.Create)
	r.With(authMiddleware).Post("/notifications/read-all", h.MarkAllRead)
	r.With(authMiddleware).Get("/notifications/{notificationId}", h.GetByID)
	r.With(authMiddleware).Post("/notifications/{notificationId}/read", h.MarkRead)
	r.With(roleMiddleware).Delete("/notifications/{notificationId}", h.Delete)
}

// List handles GET /api/notifications
// @Summary List notifications
// @Description Professors see every notification and may filter by userId; other callers only ever get their own.
// @Tags notifications
// @Produce json
// @Param userId query string false "Target user filter (professors only)"
// @Param unreadOnly query bool false "Only unread notifications"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.Notification] "Page of notifications"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	q := models.NotificationListQuery{
		UserID:    r.URL.Query().Get("userId"),
		PageQuery: parsePageQuery(r),
	}
	if v, err := strconv.ParseBool(r.URL.Query().Get("unreadOnly")); err == nil {
		q.UnreadOnly = v
	}

	page, err := h.service.List(r.Context(), principal, q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/notifications/{notificationId}
// @Summary Get a notification
// @Description Professors can read any notification; other callers only their own.
// @Tags notifications
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} models.Notification "The notification"
// @Failure 403 {object} map[string]string "Notification belongs to another user"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{notificationId} [get]
func (h *NotificationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	n, err := h.service.GetByID(r.Context(), principal, chi.URLParam(r, "notificationId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, n)
}

// Create handles POST /api/notifications
// @Summary Send a notification to a user
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body models.CreateNotificationRequest true "Notification fields"
// @Success 201 {object} models.Notification "The sent notification"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Target user not found"
// @Router /notifications [post]
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNotificationRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, n)
}

// MarkRead handles POST /api/notifications/{notificationId}/read
// @Summary Mark a notification as read
// @Description Marking an already-read notification succeeds without change.
// @Tags notifications
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} models.Notification "The notification, now read"
// @Failure 403 {object} map[string]string "Notification belongs to another user"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{notificationId}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	n, err := h.service.MarkRead(r.Context(), principal, chi.URLParam(r, "notificationId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, n)
}

// MarkAllRead handles POST /api/notifications/read-all
// @Summary Mark all notifications of a user as read
// @Description Without a userId parameter the caller targets themselves. Only professors may target other users. Returns how many notifications changed.
// @Tags notifications
// @Produce json
// @Param userId query string false "Target user (professors only)"
// @Success 200 {object} map[string]int "Number of notifications marked read"
// @Failure 403 {object} map[string]string "Non-professor targeting another user"
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	updated, err := h.service.MarkAllRead(r.Context(), principal, r.URL.Query().Get("userId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// Delete handles DELETE /api/notifications/{notificationId}
// @Summary Delete a notification
// @Tags notifications
// @Param notificationId path string true "Notification ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{notificationId} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "notificationId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
