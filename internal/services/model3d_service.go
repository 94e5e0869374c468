package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
)

// Model3DRepository defines methods for 3D model data access
type Model3DRepository interface {
	// GetByID retrieves a model by ID
	//
	// "ctx" is the context for the request.
	// "modelID" is the ID of the model.
	//
	// Returns the model (nil when absent) and an error if any.
	GetByID(ctx context.Context, modelID string) (*models.Model3D, error)
	// Exists checks if a model with the given ID exists
	//
	// "ctx" is the context for the request.
	// "modelID" is the ID of the model.
	//
	// Returns a boolean and an error if any.
	Exists(ctx context.Context, modelID string) (bool, error)
	// List retrieves models with filtering and pagination
	//
	// "ctx" is the context for the request.
	// "q" carries the search, status and author filters plus paging.
	//
	// Returns the page items, the total match count and an error if any.
	List(ctx context.Context, q models.Model3DListQuery) ([]models.Model3D, int, error)
	// Create creates a new model
	//
	// "ctx" is the context for the request.
	// "m" is the model to create.
	//
	// Returns an error if any.
	Create(ctx context.Context, m *models.Model3D) error
	// Update updates a model
	//
	// "ctx" is the context for the request.
	// "m" is the full new state of the model.
	//
	// Returns an error if any.
	Update(ctx context.Context, m *models.Model3D) error
	// Delete deletes a model
	//
	// "ctx" is the context for the request.
	// "modelID" is the ID of the model.
	//
	// Returns whether a row was deleted and an error if any.
	Delete(ctx context.Context, modelID string) (bool, error)
}

type model3DService struct {
	repo Model3DRepository
	now  func() time.Time
}

// NewModel3DService creates a new 3D model service
func NewModel3DService(repo Model3DRepository) *model3DService {
	return &model3DService{
		repo: repo,
		now:  time.Now,
	}
}

// transitionPublishedAt applies the publication state machine shared by
// models and quizzes: moving to Active stamps publishedAt once and keeps it
// on later re-activations, moving to Draft clears it, Closed leaves it alone.
func transitionPublishedAt(status models.ModelStatus, current *time.Time, now time.Time) *time.Time {
	switch status {
	case models.StatusActive:
		if current == nil {
			t := now.UTC()
			return &t
		}
		return current
	case models.StatusDraft:
		return nil
	default:
		return current
	}
}

// List retrieves models with filtering and pagination
func (s *model3DService) List(ctx context.Context, q models.Model3DListQuery) (*models.PagedResult[models.Model3D], error) {
	q.PageQuery = q.PageQuery.Normalize()
	q.Search = trimmed(q.Search)

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Model3D{}
	}

	return &models.PagedResult[models.Model3D]{Total: total, Items: items}, nil
}

// GetByID retrieves a single model
func (s *model3DService) GetByID(ctx context.Context, modelID string) (*models.Model3D, error) {
	m, err := s.repo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Create creates a new model authored by the principal. An omitted status
// defaults to Draft; creating directly as Active stamps publishedAt.
func (s *model3DService) Create(ctx context.Context, principal auth.Principal, req *models.CreateModel3DRequest) (*models.Model3D, error) {
	status := models.StatusDraft
	if req.Status != "" {
		parsed, err := models.ParseModelStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		status = parsed
	}

	title := trimmed(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	m := &models.Model3D{
		ModelID:      uuid.NewString(),
		Title:        title,
		Discipline:   normalizeOptText(req.Discipline),
		EmbryoDay:    req.EmbryoDay,
		Description:  normalizeOptText(req.Description),
		Status:       status,
		PublishedAt:  transitionPublishedAt(status, nil, s.now()),
		AuthorUserID: principal.UserID,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Update replaces the mutable state of a model and applies the status
// transition relative to the stored state
func (s *model3DService) Update(ctx context.Context, modelID string, req *models.UpdateModel3DRequest) (*models.Model3D, error) {
	m, err := s.repo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}

	status, err := models.ParseModelStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	title := trimmed(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	m.Title = title
	m.Discipline = normalizeOptText(req.Discipline)
	m.EmbryoDay = req.EmbryoDay
	m.Description = normalizeOptText(req.Description)
	m.PublishedAt = transitionPublishedAt(status, m.PublishedAt, s.now())
	m.Status = status

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Delete deletes a model. Attached files and media rows go with it via the
// schema; stored upload files are reclaimed through the file endpoints.
func (s *model3DService) Delete(ctx context.Context, modelID string) error {
	deleted, err := s.repo.Delete(ctx, modelID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
