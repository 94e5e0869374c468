package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/handlers"
)

// QuizService is the interface that wraps methods for quiz business logic.
type QuizService interface {
	// List retrieves quizzes matching the model and status filters, newest
	// published first, paginated.
	List(ctx context.Context, q models.QuizListQuery) (*models.PagedResult[models.Quiz], error)
	// GetByID retrieves a single quiz by ID.
	GetByID(ctx context.Context, quizID string) (*models.Quiz, error)
	// Create creates a quiz, optionally attached to a 3D model.
	Create(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error)
	// Update applies a partial update to a quiz.
	Update(ctx context.Context, quizID string, req *models.UpdateQuizRequest) (*models.Quiz, error)
	// Delete deletes a quiz.
	Delete(ctx context.Context, quizID string) error
}

// QuizHandler handles HTTP requests for quizzes
type QuizHandler struct {
	handlers.BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all quiz routes
// Note: This assumes the router is already scoped to /api
func (h *QuizHandler) RegisterRoutes(r chi.Router, roleMiddleware func(http.Handler) http.Handler) {
	r.Get("/quizzes", h.List)
	r.Get("/quizzes/{quizId}", h.GetByID)
	r.With(roleMiddleware).Post("/quizzes", h.Create)
	r.With(roleMiddleware).Put("/quizzes/{quizId}", h.Update)
	r.With(roleMiddleware).Delete("/quizzes/{quizId}", h.Delete)
}

// List handles GET /api/quizzes
// @Summary List quizzes
// @Description Get a paginated list of quizzes with optional model and status filters
// @Tags quizzes
// @Produce json
// @Param modelId query string false "Attached model ID filter"
// @Param status query string false "Status filter: Draft, Active or Closed"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.Quiz] "Page of quizzes"
// @Failure 400 {object} map[string]string "Unknown status value"
// @Router /quizzes [get]
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	q := models.QuizListQuery{
		ModelID:   r.URL.Query().Get("modelId"),
		PageQuery: parsePageQuery(r),
	}

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status, err := models.ParseModelStatus(statusParam)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		q.Status = &status
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/quizzes/{quizId}
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} models.Quiz "The quiz"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /quizzes/{quizId} [get]
func (h *QuizHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.GetByID(r.Context(), chi.URLParam(r, "quizId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, q)
}

// Create handles POST /api/quizzes
// @Summary Create a quiz
// @Description Status defaults to Draft; an attached model must exist.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body models.CreateQuizRequest true "Quiz fields"
// @Success 201 {object} models.Quiz "The created quiz"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Attached model not found"
// @Router /quizzes [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, q)
}

// Update handles PUT /api/quizzes/{quizId}
// @Summary Update a quiz
// @Description Partial update. A modelId of the zero UUID or null detaches the quiz from its model. Moving to Active stamps publishedAt once; moving back to Draft clears it.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param request body models.UpdateQuizRequest true "Quiz changes"
// @Success 200 {object} models.Quiz "The updated quiz"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Quiz or attached model not found"
// @Router /quizzes/{quizId} [put]
func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuizRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.service.Update(r.Context(), chi.URLParam(r, "quizId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, q)
}

// Delete handles DELETE /api/quizzes/{quizId}
// @Summary Delete a quiz
// @Tags quizzes
// @Param quizId path string true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /quizzes/{quizId} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "quizId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
