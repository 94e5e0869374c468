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

// AttemptService is the interface that wraps methods for quiz attempt business logic.
type AttemptService interface {
	// List retrieves attempts; non-professors only ever see their own.
	List(ctx context.Context, principal auth.Principal, q models.AttemptListQuery) (*models.PagedResult[models.Attempt], error)
	// GetByID retrieves an attempt, requiring Professor or ownership.
	GetByID(ctx context.Context, principal auth.Principal, attemptID string) (*models.Attempt, error)
	// Create records an attempt for the calling user.
	Create(ctx context.Context, principal auth.Principal, req *models.CreateAttemptRequest) (*models.Attempt, error)
	// Delete deletes an attempt.
	Delete(ctx context.Context, attemptID string) error
	// MyStats aggregates the caller's attempts per quiz.
	MyStats(ctx context.Context, principal auth.Principal) ([]models.AttemptStats, error)
	// MyGlobalStats aggregates the caller's attempts across all quizzes.
	MyGlobalStats(ctx context.Context, principal auth.Principal) (*models.AttemptGlobalStats, error)
	// ListAnswers retrieves every answer of an attempt.
	ListAnswers(ctx context.Context, principal auth.Principal, attemptID string) ([]models.AttemptAnswer, error)
	// GetAnswer retrieves one answer of an attempt.
	GetAnswer(ctx context.Context, principal auth.Principal, attemptID, questionID string) (*models.AttemptAnswer, error)
	// CreateAnswer records an answer within an attempt.
	CreateAnswer(ctx context.Context, attemptID string, req *models.CreateAttemptAnswerRequest) (*models.AttemptAnswer, error)
	// DeleteAnswer removes one answer by its composite key.
	DeleteAnswer(ctx context.Context, attemptID, questionID string) error
}

// AttemptHandler handles HTTP requests for quiz attempts and their answers
type AttemptHandler struct {
	handlers.BaseHandler
	service AttemptService
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(svc AttemptService, logger *zap.Logger) *AttemptHandler {
	return &AttemptHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all attempt routes
// Note: This assumes the router is already scoped to /api
func (h *AttemptHandler) RegisterRoutes(r chi.Router, authMiddleware, roleMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/attempts", h.List)
	r.With(roleMiddleware).Post("/attempts", h.Create)
	r.With(roleMiddleware).Get("/attempts/my-stats", h.MyStats)
	r.With(roleMiddleware).Get("/attempts/my-global-stats", h.MyGlobalStats)
	r.With(authMiddleware).Get("/attempts/{attemptId}", h.GetByID)
	r.With(roleMiddleware).Delete("/attempts/{attemptId}", h.Delete)
	r.With(authMiddleware).Get("/attempts/{attemptId}/answers", h.ListAnswers)
	r.With(roleMiddleware).Post("/attempts/{attemptId}/answers", h.CreateAnswer)
	r.With(authMiddleware).Get("/attempts/{attemptId}/answers/{questionId}", h.GetAnswer)
	r.With(roleMiddleware).Delete("/attempts/{attemptId}/answers/{questionId}", h.DeleteAnswer)
}

// List handles GET /api/attempts
// @Summary List quiz attempts
// @Description Professors see every attempt and may filter by userId; other callers only ever get their own attempts.
// @Tags attempts
// @Produce json
// @Param quizId query string false "Quiz ID filter"
// @Param userId query string false "User ID filter (professors only)"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.Attempt] "Page of attempts"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /attempts [get]
func (h *AttemptHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	q := models.AttemptListQuery{
		QuizID:    r.URL.Query().Get("quizId"),
		UserID:    r.URL.Query().Get("userId"),
		PageQuery: parsePageQuery(r),
	}

	page, err := h.service.List(r.Context(), principal, q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/attempts/{attemptId}
// @Summary Get an attempt
// @Description Professors can read any attempt; other callers only their own.
// @Tags attempts
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} models.Attempt "The attempt"
// @Failure 403 {object} map[string]string "Attempt belongs to another user"
// @Failure 404 {object} map[string]string "Attempt not found"
// @Router /attempts/{attemptId} [get]
func (h *AttemptHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	a, err := h.service.GetByID(r.Context(), principal, chi.URLParam(r, "attemptId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, a)
}

// Create handles POST /api/attempts
// @Summary Record a quiz attempt
// @Description The attempting user always comes from the access token. The score is rounded to two decimals.
// @Tags attempts
// @Accept json
// @Produce json
// @Param request body models.CreateAttemptRequest true "Attempt fields"
// @Success 201 {object} models.Attempt "The recorded attempt"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /attempts [post]
func (h *AttemptHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateAttemptRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.service.Create(r.Context(), principal, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, a)
}

// Delete handles DELETE /api/attempts/{attemptId}
// @Summary Delete an attempt
// @Tags attempts
// @Param attemptId path string true "Attempt ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Attempt not found"
// @Router /attempts/{attemptId} [delete]
func (h *AttemptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "attemptId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyStats handles GET /api/attempts/my-stats
// @Summary Get the caller's per-quiz attempt statistics
// @Tags attempts
// @Produce json
// @Success 200 {array} models.AttemptStats "Per-quiz attempt counts and averages"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /attempts/my-stats [get]
func (h *AttemptHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.service.MyStats(r.Context(), principal)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}

// MyGlobalStats handles GET /api/attempts/my-global-stats
// @Summary Get the caller's overall attempt statistics
// @Tags attempts
// @Produce json
// @Success 200 {object} models.AttemptGlobalStats "Total attempts and overall average, zero when none"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /attempts/my-global-stats [get]
func (h *AttemptHandler) MyGlobalStats(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := h.service.MyGlobalStats(r.Context(), principal)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}

// ListAnswers handles GET /api/attempts/{attemptId}/answers
// @Summary List the answers of an attempt
// @Tags attempts
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {array} models.AttemptAnswer "The recorded answers"
// @Failure 403 {object} map[string]string "Attempt belongs to another user"
// @Failure 404 {object} map[string]string "Attempt not found"
// @Router /attempts/{attemptId}/answers [get]
func (h *AttemptHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	answers, err := h.service.ListAnswers(r.Context(), principal, chi.URLParam(r, "attemptId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, answers)
}

// GetAnswer handles GET /api/attempts/{attemptId}/answers/{questionId}
// @Summary Get one answer of an attempt
// @Tags attempts
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} models.AttemptAnswer "The answer"
// @Failure 403 {object} map[string]string "Attempt belongs to another user"
// @Failure 404 {object} map[string]string "Attempt or answer not found"
// @Router /attempts/{attemptId}/answers/{questionId} [get]
func (h *AttemptHandler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	a, err := h.service.GetAnswer(r.Context(), principal, chi.URLParam(r, "attemptId"), chi.URLParam(r, "questionId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, a)
}

// CreateAnswer handles POST /api/attempts/{attemptId}/answers
// @Summary Record an answer within an attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Param request body models.CreateAttemptAnswerRequest true "Answer fields"
// @Success 201 {object} models.AttemptAnswer "The recorded answer"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Attempt or question not found"
// @Router /attempts/{attemptId}/answers [post]
func (h *AttemptHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAttemptAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.service.CreateAnswer(r.Context(), chi.URLParam(r, "attemptId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, a)
}

// DeleteAnswer handles DELETE /api/attempts/{attemptId}/answers/{questionId}
// @Summary Delete one answer of an attempt
// @Tags attempts
// @Param attemptId path string true "Attempt ID"
// @Param questionId path string true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Answer not found"
// @Router /attempts/{attemptId}/answers/{questionId} [delete]
func (h *AttemptHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAnswer(r.Context(), chi.URLParam(r, "attemptId"), chi.URLParam(r, "questionId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
