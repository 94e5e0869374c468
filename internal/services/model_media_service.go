package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
)

// ModelMediaRepository defines methods for model media data access
type ModelMediaRepository interface {
	// GetByID retrieves a media item by ID, nil when absent
	GetByID(ctx context.Context, mediaID string) (*models.ModelMedia, error)
	// ListByModel retrieves the media of one model with pagination
	ListByModel(ctx context.Context, q models.ModelMediaListQuery) ([]models.ModelMedia, int, error)
	// Create inserts a media item, demoting any sibling primary in the same transaction
	Create(ctx context.Context, m *models.ModelMedia) error
	// UpdateMeta persists media metadata; makePrimary demotes siblings first
	UpdateMeta(ctx context.Context, m *models.ModelMedia, makePrimary bool) error
	// Delete removes a media row, reporting whether one matched
	Delete(ctx context.Context, mediaID string) (bool, error)
}

type modelMediaService struct {
	media  ModelMediaRepository
	models ModelLookupRepository
	now    func() time.Time
}

// NewModelMediaService creates a new model media service
func NewModelMediaService(media ModelMediaRepository, modelRepo ModelLookupRepository) *modelMediaService {
	return &modelMediaService{
		media:  media,
		models: modelRepo,
		now:    time.Now,
	}
}

// ListByModel retrieves the media attached to one model, display order first
func (s *modelMediaService) ListByModel(ctx context.Context, q models.ModelMediaListQuery) (*models.PagedResult[models.ModelMedia], error) {
	exists, err := s.models.Exists(ctx, q.ModelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.media.ListByModel(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ModelMedia{}
	}

	return &models.PagedResult[models.ModelMedia]{Total: total, Items: items}, nil
}

// GetByID retrieves a single media item
func (s *modelMediaService) GetByID(ctx context.Context, mediaID string) (*models.ModelMedia, error) {
	m, err := s.media.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Create attaches a media item to a model. A primary item demotes the
// current primary in the same transaction as the insert.
func (s *modelMediaService) Create(ctx context.Context, modelID string, req *models.CreateModelMediaRequest) (*models.ModelMedia, error) {
	exists, err := s.models.Exists(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	mediaType, err := models.ParseMediaType(req.MediaType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	url := trimmed(req.URL)
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}

	m := &models.ModelMedia{
		MediaID:   uuid.NewString(),
		URL:       url,
		MediaType: mediaType,
		Legende:   normalizeOptText(req.Legende),
		Position:  req.Position,
		IsPrimary: req.IsPrimary,
		CreatedAt: s.now().UTC(),
		ModelID:   modelID,
	}

	if err := s.media.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// UpdateMeta applies a partial metadata update. Absent fields stay untouched;
// legende or position sent as null clear the stored value.
func (s *modelMediaService) UpdateMeta(ctx context.Context, mediaID string, req *models.UpdateModelMediaMetaRequest) (*models.ModelMedia, error) {
	m, err := s.media.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}

	if req.Legende.Set {
		if req.Legende.Valid {
			m.Legende = normalizeOptText(&req.Legende.Value)
		} else {
			m.Legende = nil
		}
	}
	if req.Position.Set {
		if req.Position.Valid {
			pos := req.Position.Value
			m.Position = &pos
		} else {
			m.Position = nil
		}
	}
	if req.IsPrimary.Set {
		m.IsPrimary = req.IsPrimary.Valid && req.IsPrimary.Value
	}

	makePrimary := req.IsPrimary.Set && m.IsPrimary
	if err := s.media.UpdateMeta(ctx, m, makePrimary); err != nil {
		return nil, err
	}

	return m, nil
}

// Delete removes a media row. The URL may point outside our storage, so no
// physical cleanup happens here.
func (s *modelMediaService) Delete(ctx context.Context, mediaID string) error {
	deleted, err := s.media.Delete(ctx, mediaID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
