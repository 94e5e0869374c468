package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/handlers"
)

// ModelMediaService is the interface that wraps methods for model media business logic.
type ModelMediaService interface {
	// ListByModel retrieves the media of one model, display order first.
	ListByModel(ctx context.Context, q models.ModelMediaListQuery) (*models.PagedResult[models.ModelMedia], error)
	// GetByID retrieves a single media item by ID.
	GetByID(ctx context.Context, mediaID string) (*models.ModelMedia, error)
	// Create attaches a media item to a model.
	Create(ctx context.Context, modelID string, req *models.CreateModelMediaRequest) (*models.ModelMedia, error)
	// UpdateMeta applies a partial metadata update.
	UpdateMeta(ctx context.Context, mediaID string, req *models.UpdateModelMediaMetaRequest) (*models.ModelMedia, error)
	// Delete removes a media item.
	Delete(ctx context.Context, mediaID string) error
}

// ModelMediaHandler handles HTTP requests for model media
type ModelMediaHandler struct {
	handlers.BaseHandler
	service ModelMediaService
}

// NewModelMediaHandler creates a new model media handler
func NewModelMediaHandler(svc ModelMediaService, logger *zap.Logger) *ModelMediaHandler {
	return &ModelMediaHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all model media routes
// Note: This assumes the router is already scoped to /api
func (h *ModelMediaHandler) RegisterRoutes(r chi.Router, roleMiddleware, professorMiddleware func(http.Handler) http.Handler) {
	r.Get("/models/{modelId}/media", h.ListByModel)
	r.With(roleMiddleware).Post("/models/{modelId}/media", h.Create)
	r.Get("/media/{mediaId}", h.GetByID)
	r.With(professorMiddleware).Put("/media/{mediaId}", h.UpdateMeta)
	r.With(roleMiddleware).Delete("/media/{mediaId}", h.Delete)
}

// ListByModel handles GET /api/models/{modelId}/media
// @Summary List the media of a model
// @Tags media
// @Produce json
// @Param modelId path string true "Model ID"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.ModelMedia] "Page of media"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId}/media [get]
func (h *ModelMediaHandler) ListByModel(w http.ResponseWriter, r *http.Request) {
	q := models.ModelMediaListQuery{
		ModelID:   chi.URLParam(r, "modelId"),
		PageQuery: parsePageQuery(r),
	}

	page, err := h.service.ListByModel(r.Context(), q)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetByID handles GET /api/media/{mediaId}
// @Summary Get a media item
// @Tags media
// @Produce json
// @Param mediaId path string true "Media ID"
// @Success 200 {object} models.ModelMedia "The media item"
// @Failure 404 {object} map[string]string "Media not found"
// @Router /media/{mediaId} [get]
func (h *ModelMediaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.GetByID(r.Context(), chi.URLParam(r, "mediaId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, m)
}

// Create handles POST /api/models/{modelId}/media
// @Summary Attach a media item to a model
// @Description Marking the item primary demotes the current primary media of the model.
// @Tags media
// @Accept json
// @Produce json
// @Param modelId path string true "Model ID"
// @Param request body models.CreateModelMediaRequest true "Media fields"
// @Success 201 {object} models.ModelMedia "The created media item"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId}/media [post]
func (h *ModelMediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateModelMediaRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Create(r.Context(), chi.URLParam(r, "modelId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, m)
}

// UpdateMeta handles PUT /api/media/{mediaId}
// @Summary Update media metadata
// @Description Partial update: absent fields stay untouched, legende or position sent as null clear the value. Setting isPrimary true demotes the current primary media.
// @Tags media
// @Accept json
// @Produce json
// @Param mediaId path string true "Media ID"
// @Param request body models.UpdateModelMediaMetaRequest true "Metadata changes"
// @Success 200 {object} models.ModelMedia "The updated media item"
// @Failure 404 {object} map[string]string "Media not found"
// @Router /media/{mediaId} [put]
func (h *ModelMediaHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModelMediaMetaRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.UpdateMeta(r.Context(), chi.URLParam(r, "mediaId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/media/{mediaId}
// @Summary Delete a media item
// @Tags media
// @Param mediaId path string true "Media ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Media not found"
// @Router /media/{mediaId} [delete]
func (h *ModelMediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "mediaId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
