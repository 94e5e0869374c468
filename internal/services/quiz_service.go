package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
)

// zeroUUID detaches a quiz from its model when sent as the new modelId
const zeroUUID = "00000000-0000-0000-0000-000000000000"

// QuizRepository defines methods for quiz data access
type QuizRepository interface {
	// GetByID retrieves a quiz by ID, nil when absent
	GetByID(ctx context.Context, quizID string) (*models.Quiz, error)
	// Exists checks if a quiz with the given ID exists
	Exists(ctx context.Context, quizID string) (bool, error)
	// List retrieves quizzes with filtering and pagination
	List(ctx context.Context, q models.QuizListQuery) ([]models.Quiz, int, error)
	// Create inserts a quiz
	Create(ctx context.Context, q *models.Quiz) error
	// Update persists the full new state of a quiz
	Update(ctx context.Context, q *models.Quiz) error
	// Delete removes a quiz, reporting whether a row matched
	Delete(ctx context.Context, quizID string) (bool, error)
}

type quizService struct {
	quizzes QuizRepository
	models  ModelLookupRepository
	now     func() time.Time
}

// NewQuizService creates a new quiz service
func NewQuizService(quizzes QuizRepository, modelRepo ModelLookupRepository) *quizService {
	return &quizService{
		quizzes: quizzes,
		models:  modelRepo,
		now:     time.Now,
	}
}

// List retrieves quizzes with filtering and pagination
func (s *quizService) List(ctx context.Context, q models.QuizListQuery) (*models.PagedResult[models.Quiz], error) {
	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.quizzes.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Quiz{}
	}

	return &models.PagedResult[models.Quiz]{Total: total, Items: items}, nil
}

// GetByID retrieves a single quiz
func (s *quizService) GetByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	q, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	return q, nil
}

// Create creates a new quiz, optionally attached to a 3D model. An omitted
// status defaults to Draft; creating directly as Active stamps publishedAt.
func (s *quizService) Create(ctx context.Context, req *models.CreateQuizRequest) (*models.Quiz, error) {
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

	modelID := normalizeOptText(req.ModelID)
	if modelID != nil {
		exists, err := s.models.Exists(ctx, *modelID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrParentNotFound
		}
	}

	q := &models.Quiz{
		QuizID:      uuid.NewString(),
		Title:       title,
		Description: normalizeOptText(req.Description),
		TimeLimit:   req.TimeLimit,
		Attempts:    req.Attempts,
		Status:      status,
		PublishedAt: transitionPublishedAt(status, nil, s.now()),
		ModelID:     modelID,
	}

	if err := s.quizzes.Create(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Update applies a partial update. Absent fields stay untouched, nullable
// fields sent as null are cleared, and a modelId of the zero UUID (or null)
// detaches the quiz from its model.
func (s *quizService) Update(ctx context.Context, quizID string, req *models.UpdateQuizRequest) (*models.Quiz, error) {
	q, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}

	if req.Title.Set {
		title := ""
		if req.Title.Valid {
			title = trimmed(req.Title.Value)
		}
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be blank", ErrValidation)
		}
		q.Title = title
	}
	if req.Description.Set {
		if req.Description.Valid {
			q.Description = normalizeOptText(&req.Description.Value)
		} else {
			q.Description = nil
		}
	}
	if req.TimeLimit.Set {
		if req.TimeLimit.Valid {
			v := req.TimeLimit.Value
			q.TimeLimit = &v
		} else {
			q.TimeLimit = nil
		}
	}
	if req.Attempts.Set {
		if req.Attempts.Valid {
			v := req.Attempts.Value
			q.Attempts = &v
		} else {
			q.Attempts = nil
		}
	}
	if req.ModelID.Set {
		newModelID := ""
		if req.ModelID.Valid {
			newModelID = trimmed(req.ModelID.Value)
		}
		if newModelID == "" || newModelID == zeroUUID {
			q.ModelID = nil
		} else {
			exists, err := s.models.Exists(ctx, newModelID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, ErrParentNotFound
			}
			q.ModelID = &newModelID
		}
	}
	if req.Status.Set {
		if !req.Status.Valid {
			return nil, fmt.Errorf("%w: status cannot be null", ErrValidation)
		}
		status, err := models.ParseModelStatus(req.Status.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		q.PublishedAt = transitionPublishedAt(status, q.PublishedAt, s.now())
		q.Status = status
	}

	if err := s.quizzes.Update(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Delete deletes a quiz
func (s *quizService) Delete(ctx context.Context, quizID string) error {
	deleted, err := s.quizzes.Delete(ctx, quizID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
