package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/internal/storage"
)

// allowed upload extensions for 3D geometry files
var allowedFileExtensions = map[string]bool{
	".glb": true,
	".fbx": true,
}

// ModelLookupRepository checks 3D model existence for child resources
type ModelLookupRepository interface {
	Exists(ctx context.Context, modelID string) (bool, error)
}

// ModelFileRepository defines methods for model file data access
type ModelFileRepository interface {
	// GetByID retrieves a file by ID, nil when absent
	GetByID(ctx context.Context, fileID string) (*models.ModelFile, error)
	// ListByModel retrieves the files of one model with pagination
	ListByModel(ctx context.Context, q models.ModelFileListQuery) ([]models.ModelFile, int, error)
	// Create inserts a file, demoting any sibling primary in the same transaction
	Create(ctx context.Context, f *models.ModelFile) error
	// UpdateMeta persists file metadata; makePrimary demotes siblings first
	UpdateMeta(ctx context.Context, f *models.ModelFile, makePrimary bool) error
	// Delete removes a file row, reporting whether one matched
	Delete(ctx context.Context, fileID string) (bool, error)
}

// FileStore persists uploaded file content under a confined root
type FileStore interface {
	// Save writes the content at relPath and returns the stored relative path
	Save(ctx context.Context, relPath string, r io.Reader) (string, error)
	// Delete removes a stored file; missing files are not an error
	Delete(ctx context.Context, relPath string) error
	// URL returns the public URL for a stored relative path
	URL(relPath string) string
}

type modelFileService struct {
	files  ModelFileRepository
	models ModelLookupRepository
	store  FileStore
	logger *zap.Logger
	now    func() time.Time
}

// NewModelFileService creates a new model file service
func NewModelFileService(files ModelFileRepository, modelRepo ModelLookupRepository, store FileStore, logger *zap.Logger) *modelFileService {
	return &modelFileService{
		files:  files,
		models: modelRepo,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListByModel retrieves the files attached to one model, display order first
func (s *modelFileService) ListByModel(ctx context.Context, q models.ModelFileListQuery) (*models.PagedResult[models.ModelFile], error) {
	exists, err := s.models.Exists(ctx, q.ModelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.files.ListByModel(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ModelFile{}
	}
	for i := range items {
		items[i].URL = s.store.URL(items[i].Path)
	}

	return &models.PagedResult[models.ModelFile]{Total: total, Items: items}, nil
}

// GetByID retrieves a single file
func (s *modelFileService) GetByID(ctx context.Context, fileID string) (*models.ModelFile, error) {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}
	f.URL = s.store.URL(f.Path)
	return f, nil
}

// Upload stores the uploaded content under the model's directory and records
// the file. A primary upload demotes the current primary in the same
// transaction as the insert.
func (s *modelFileService) Upload(ctx context.Context, modelID, filename string, content io.Reader, req *models.UploadModelFileRequest) (*models.ModelFile, error) {
	exists, err := s.models.Exists(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	ext := strings.ToLower(path.Ext(filename))
	if !allowedFileExtensions[ext] {
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrValidation, ext)
	}

	relPath := path.Join("models", modelID, storage.GenerateFileName(filename))
	stored, err := s.store.Save(ctx, relPath, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	fileType := strings.TrimPrefix(ext, ".")
	f := &models.ModelFile{
		FileID:    uuid.NewString(),
		Path:      stored,
		URL:       s.store.URL(stored),
		FileType:  &fileType,
		FileRole:  normalizeOptText(req.FileRole),
		IsPrimary: req.IsPrimary,
		Position:  req.Position,
		CreatedAt: s.now().UTC(),
		ModelID:   modelID,
	}

	if err := s.files.Create(ctx, f); err != nil {
		// the row never existed, reclaim the stored content
		if delErr := s.store.Delete(ctx, stored); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload",
				zap.String("path", stored),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	return f, nil
}

// UpdateMeta applies a partial metadata update. Absent fields stay untouched;
// fileRole or position sent as null clear the stored value.
func (s *modelFileService) UpdateMeta(ctx context.Context, fileID string, req *models.UpdateModelFileMetaRequest) (*models.ModelFile, error) {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNotFound
	}

	if req.FileRole.Set {
		if req.FileRole.Valid {
			f.FileRole = normalizeOptText(&req.FileRole.Value)
		} else {
			f.FileRole = nil
		}
	}
	if req.Position.Set {
		if req.Position.Valid {
			pos := req.Position.Value
			f.Position = &pos
		} else {
			f.Position = nil
		}
	}
	if req.IsPrimary.Set {
		f.IsPrimary = req.IsPrimary.Valid && req.IsPrimary.Value
	}

	makePrimary := req.IsPrimary.Set && f.IsPrimary
	if err := s.files.UpdateMeta(ctx, f, makePrimary); err != nil {
		return nil, err
	}

	f.URL = s.store.URL(f.Path)
	return f, nil
}

// Delete removes the file row, then reclaims the stored content best effort.
// A failed physical delete is logged and the request still succeeds.
func (s *modelFileService) Delete(ctx context.Context, fileID string) error {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}

	deleted, err := s.files.Delete(ctx, fileID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if err := s.store.Delete(ctx, f.Path); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.String("fileId", fileID),
			zap.String("path", f.Path),
			zap.Error(err),
		)
	}

	return nil
}
