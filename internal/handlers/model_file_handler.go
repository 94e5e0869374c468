package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/handlers"
)

// maxUploadMemory caps how much of a multipart body is buffered in memory
const maxUploadMemory = 32 << 20

// ModelFileService is the interface that wraps methods for model file business logic.
type ModelFileService interface {
	// ListByModel retrieves the files of one model, display order first.
	ListByModel(ctx context.Context, q models.ModelFileListQuery) (*models.PagedResult[models.ModelFile], error)
	// GetByID retrieves a single file by ID.
	GetByID(ctx context.Context, fileID string) (*models.ModelFile, error)
	// Upload stores the uploaded content and records the file.
	Upload(ctx context.Context, modelID, filename string, content io.Reader, req *models.UploadModelFileRequest) (*models.ModelFile, error)
	// UpdateMeta applies a partial metadata update.
	UpdateMeta(ctx context.Context, fileID string, req *models.UpdateModelFileMetaRequest) (*models.ModelFile, error)
	// Delete removes the file row and its stored content.
	Delete(ctx context.Context, fileID string) error
}

// ModelFileHandler handles HTTP requests for model files
type ModelFileHandler struct {
	handlers.BaseHandler
	service ModelFileService
}

// NewModelFileHandler creates a new model file handler
func NewModelFileHandler(svc ModelFileService, logger *zap.Logger) *ModelFileHandler {
	return &ModelFileHandler{
		service:     svc,
		BaseHandler: handlers.BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all model file routes
// Note: This assumes the router is already scoped to /api
func (h *ModelFileHandler) RegisterRoutes(r chi.Router, roleMiddleware func(http.Handler) http.Handler) {
	r.With(roleMiddleware).Get("/models/{modelId}/files", h.ListByModel)
	r.With(roleMiddleware).Post("/models/{modelId}/files", h.Upload)
	r.With(roleMiddleware).Get("/files/{fileId}", h.GetByID)
	r.With(roleMiddleware).Put("/files/{fileId}", h.UpdateMeta)
	r.With(roleMiddleware).Delete("/files/{fileId}", h.Delete)
}

// ListByModel handles GET /api/models/{modelId}/files
// @Summary List the files of a model
// @Tags files
// @Produce json
// @Param modelId path string true "Model ID"
// @Param page query int false "Page number, default 1"
// @Param pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} models.PagedResult[models.ModelFile] "Page of files"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId}/files [get]
func (h *ModelFileHandler) ListByModel(w http.ResponseWriter, r *http.Request) {
	q := models.ModelFileListQuery{
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

// GetByID handles GET /api/files/{fileId}
// @Summary Get a model file
// @Tags files
// @Produce json
// @Param fileId path string true "File ID"
// @Success 200 {object} models.ModelFile "The file"
// @Failure 404 {object} map[string]string "File not found"
// @Router /files/{fileId} [get]
func (h *ModelFileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	f, err := h.service.GetByID(r.Context(), chi.URLParam(r, "fileId"))
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, f)
}

// Upload handles POST /api/models/{modelId}/files
// @Summary Upload a file for a model
// @Description Multipart upload. Only .glb and .fbx files are accepted. Marking the upload primary demotes the current primary file.
// @Tags files
// @Accept mpfd
// @Produce json
// @Param modelId path string true "Model ID"
// @Param file formData file true "The file"
// @Param fileRole formData string false "Role of the file (geometry, texture, thumbnail...)"
// @Param isPrimary formData bool false "Make this the primary file"
// @Param position formData int false "Display position"
// @Success 201 {object} models.ModelFile "The recorded file"
// @Failure 400 {object} map[string]string "Missing file or unsupported extension"
// @Failure 404 {object} map[string]string "Model not found"
// @Router /models/{modelId}/files [post]
func (h *ModelFileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	req := models.UploadModelFileRequest{}
	if v := r.FormValue("fileRole"); v != "" {
		req.FileRole = &v
	}
	if v := r.FormValue("isPrimary"); v != "" {
		isPrimary, err := strconv.ParseBool(v)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "isPrimary must be a boolean")
			return
		}
		req.IsPrimary = isPrimary
	}
	if v := r.FormValue("position"); v != "" {
		position, err := strconv.Atoi(v)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "position must be an integer")
			return
		}
		req.Position = &position
	}

	f, err := h.service.Upload(r.Context(), chi.URLParam(r, "modelId"), header.Filename, file, &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, f)
}

// UpdateMeta handles PUT /api/files/{fileId}
// @Summary Update file metadata
// @Description Partial update: absent fields stay untouched, fileRole or position sent as null clear the value. Setting isPrimary true demotes the current primary file.
// @Tags files
// @Accept json
// @Produce json
// @Param fileId path string true "File ID"
// @Param request body models.UpdateModelFileMetaRequest true "Metadata changes"
// @Success 200 {object} models.ModelFile "The updated file"
// @Failure 404 {object} map[string]string "File not found"
// @Router /files/{fileId} [put]
func (h *ModelFileHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModelFileMetaRequest
	if err := decodeBody(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := h.service.UpdateMeta(r.Context(), chi.URLParam(r, "fileId"), &req)
	if err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, f)
}

// Delete handles DELETE /api/files/{fileId}
// @Summary Delete a model file
// @Description Removes the record, then deletes the stored file best effort.
// @Tags files
// @Param fileId path string true "File ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "File not found"
// @Router /files/{fileId} [delete]
func (h *ModelFileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "fileId")); err != nil {
		respondServiceError(&h.BaseHandler, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
