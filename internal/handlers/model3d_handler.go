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

// Model3DService is the interface that wraps methods for 3D model business logic.
type Model3DService interface {
	// List retrieves models matching the search, status and author filters,
	// newest published first, paginated.
	List(ctx context.Context, q models.Model3DListQuery) (*models.PagedResult[models.Model3D], error)
	// GetByID retrieves a single model by ID.
	GetByID(ctx context.Context, modelID string) (*models.Model3D, error)
	// Create creates a model authored by the principal.
	Create(ctx context.Context, principal auth.Principal, req *models.CreateModel3DRequest) (*models.Model3D, error)
	// Update fully replaces the mutable state of a model.
	Update(ctx context.Context, modelID string, req *models.UpdateModel3DRequest) (*models.Model3D, error)
	// Delete deletes a model.
	Delete(ctx context.Context, modelID string) error
}

// Model3DHandler handles HTTP requests for 3D models
type Model3DHandler struct {
	handlers.BaseHandler
	service Model3DService
}

// NewModel3DHandler creates a new 3D model handler
func NewModel3DHandler(svc Model3DService, logger *zap.Logger) *Model3DHandler {
	return &Model3DHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all 3D model routes
// Note: This assumes the router is already scoped to /api
func (h *Model3DHandler) RegisterRoutes(r chi.Router, authMiddleware, roleMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/models", h.List)
	r.Get("/models/{modelId}", h.GetByID)
	r.With(roleMiddleware).Post("/models", h.Create)
	r.With(roleMiddleware).Put("/models/{modelId}", h.Update)
	r.With(roleMiddleware).Delete("/models/{modelId}", h.Delete)
}

// List handles GET /api/models
// @Summary List 3D models
// @Description Get a paginated list of 3D models with optional search, status and author filters
// @Tags models
// @Produce json
// @Param search query string false "Case-insensitive title search"
// @Param status query string false "Status filter: Draft, Active or Closed"
// @Param authorUserId query string false "Author user ID filter"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.Model3D] "Page of models"
// @Failure 400 {object} map[string]string "Unknown status value"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /models [get]
func (h *Model3DHandler) List(w http.ResponseWriter, r *http.Request) {
	q := models.Model3DListQuery{
		Search:       r.URL.Query().Get("search"),
		AuthorUserID: r.URL.Query().Get("authorUserId"),
		PageQuery:    parsePageQuery(r),
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

// GetByID handles GET /api/models/{modelId}
// @Summary Get a 3D model
// @Tags models
// @Produce json
// @Param modelId path string true "Model ID"
// @Success 200 {object} models.Model3D "The model"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId} [get]
func (h *Model3DHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.GetByID(r.Context(), chi.URLParam(r, "modelId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, m)
}

// Create handles POST /api/models
// @Summary Create a 3D model
// @Description Create a model authored by the calling user. Status defaults to Draft.
// @Tags models
// @Accept json
// @Produce json
// @Param request body models.CreateModel3DRequest true "Model fields"
// @Success 201 {object} models.Model3D "The created model"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 403 {object} map[string]string "Insufficient role"
// @Router /models [post]
func (h *Model3DHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := authmw.GetPrincipal(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateModel3DRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Create(r.Context(), principal, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, m)
}

// Update handles PUT /api/models/{modelId}
// @Summary Update a 3D model
// @Description Full update. Moving to Active stamps publishedAt once; moving back to Draft clears it.
// @Tags models
// @Accept json
// @Produce json
// @Param modelId path string true "Model ID"
// @Param request body models.UpdateModel3DRequest true "New model state"
// @Success 200 {object} models.Model3D "The updated model"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId} [put]
func (h *Model3DHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModel3DRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Update(r.Context(), chi.URLParam(r, "modelId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/models/{modelId}
// @Summary Delete a 3D model
// @Tags models
// @Param modelId path string true "Model ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId} [delete]
func (h *Model3DHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "modelId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
