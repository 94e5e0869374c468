package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/handlers"
)

// QuestionService is the interface that wraps methods for question business logic.
type QuestionService interface {
	// ListByQuiz retrieves the questions of one quiz in insertion order.
	ListByQuiz(ctx context.Context, q models.QuestionListQuery) (*models.PagedResult[models.Question], error)
	// GetByID retrieves a single question by ID.
	GetByID(ctx context.Context, questionID string) (*models.Question, error)
	// Create adds a question to a quiz.
	Create(ctx context.Context, quizID string, req *models.CreateQuestionRequest) (*models.Question, error)
	// Update applies a partial update and revalidates the resulting state.
	Update(ctx context.Context, questionID string, req *models.UpdateQuestionRequest) (*models.Question, error)
	// Delete deletes a question.
	Delete(ctx context.Context, questionID string) error
}

// QuestionHandler handles HTTP requests for quiz questions
type QuestionHandler struct {
	handlers.BaseHandler
	service QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(svc QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all question routes
// Note: This assumes the router is already scoped to /api
func (h *QuestionHandler) RegisterRoutes(r chi.Router, roleMiddleware func(http.Handler) http.Handler) {
	r.Get("/quizzes/{quizId}/questions", h.ListByQuiz)
	r.With(roleMiddleware).Post("/quizzes/{quizId}/questions", h.Create)
	r.Get("/questions/{questionId}", h.GetByID)
	r.With(roleMiddleware).Put("/questions/{questionId}", h.Update)
	r.With(roleMiddleware).Delete("/questions/{questionId}", h.Delete)
}

// ListByQuiz handles GET /api/quizzes/{quizId}/questions
// @Summary List the questions of a quiz
// @Tags questions
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.Question] "Page of questions"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /quizzes/{quizId}/questions [get]
func (h *QuestionHandler) ListByQuiz(w http.ResponseWriter, r *http.Request) {
	q := models.QuestionListQuery{
		QuizID:    chi.URLParam(r, "quizId"),
		PageQuery: parsePageQuery(r),
	}

	page, err := h.service.ListByQuiz(r.Context(), q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/questions/{questionId}
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param questionId path string true "Question ID"
// @Success 200 {object} models.Question "The question"
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{questionId} [get]
func (h *QuestionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.GetByID(r.Context(), chi.URLParam(r, "questionId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, q)
}

// Create handles POST /api/quizzes/{quizId}/questions
// @Summary Add a question to a quiz
// @Description A QCM question needs at least two options and a correct answer among them; a true/false answer must be "true" or "false".
// @Tags questions
// @Accept json
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Param request body models.CreateQuestionRequest true "Question fields"
// @Success 201 {object} models.Question "The created question"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Failure 422 {object} map[string]string "Incoherent options or correct answer"
// @Router /quizzes/{quizId}/questions [post]
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.service.Create(r.Context(), chi.URLParam(r, "quizId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, q)
}

// Update handles PUT /api/questions/{questionId}
// @Summary Update a question
// @Description Partial update; the question is revalidated after all changes are applied, so a type change and its matching options can land in one request.
// @Tags questions
// @Accept json
// @Produce json
// @Param questionId path string true "Question ID"
// @Param request body models.UpdateQuestionRequest true "Question changes"
// @Success 200 {object} models.Question "The updated question"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Question or target quiz not found"
// @Failure 422 {object} map[string]string "Incoherent options or correct answer"
// @Router /questions/{questionId} [put]
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := h.service.Update(r.Context(), chi.URLParam(r, "questionId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, q)
}

// Delete handles DELETE /api/questions/{questionId}
// @Summary Delete a question
// @Tags questions
// @Param questionId path string true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{questionId} [delete]
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "questionId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
