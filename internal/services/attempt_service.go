package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
)

// QuestionLookupRepository checks question existence for answer records
type QuestionLookupRepository interface {
	Exists(ctx context.Context, questionID string) (bool, error)
}

// AttemptRepository defines methods for quiz attempt data access
type AttemptRepository interface {
	// GetByID retrieves an attempt by ID, nil when absent
	GetByID(ctx context.Context, attemptID string) (*models.Attempt, error)
	// List retrieves attempts with filtering and pagination
	List(ctx context.Context, q models.AttemptListQuery) ([]models.Attempt, int, error)
	// Create inserts an attempt
	Create(ctx context.Context, a *models.Attempt) error
	// Delete removes an attempt, reporting whether a row matched
	Delete(ctx context.Context, attemptID string) (bool, error)
	// StatsByUser aggregates one user's attempts per quiz
	StatsByUser(ctx context.Context, userID string) ([]models.AttemptStats, error)
	// GlobalStatsByUser aggregates one user's attempts across all quizzes
	GlobalStatsByUser(ctx context.Context, userID string) (*models.AttemptGlobalStats, error)
}

// AttemptAnswerRepository defines methods for attempt answer data access
type AttemptAnswerRepository interface {
	// Get retrieves one answer by attempt and question, nil when absent
	Get(ctx context.Context, attemptID, questionID string) (*models.AttemptAnswer, error)
	// ListByAttempt retrieves every answer of an attempt
	ListByAttempt(ctx context.Context, attemptID string) ([]models.AttemptAnswer, error)
	// Create inserts an answer
	Create(ctx context.Context, a *models.AttemptAnswer) error
	// Delete removes an answer, reporting whether a row matched
	Delete(ctx context.Context, attemptID, questionID string) (bool, error)
}

type attemptService struct {
	attempts  AttemptRepository
	answers   AttemptAnswerRepository
	quizzes   QuizLookupRepository
	questions QuestionLookupRepository
	now       func() time.Time
}

// NewAttemptService creates a new attempt service
func NewAttemptService(attempts AttemptRepository, answers AttemptAnswerRepository, quizzes QuizLookupRepository, questions QuestionLookupRepository) *attemptService {
	return &attemptService{
		attempts:  attempts,
		answers:   answers,
		quizzes:   quizzes,
		questions: questions,
		now:       time.Now,
	}
}

// List retrieves attempts. Non-professors only ever see their own: the owner
// filter is silently forced to the caller's ID, whatever was requested.
func (s *attemptService) List(ctx context.Context, principal auth.Principal, q models.AttemptListQuery) (*models.PagedResult[models.Attempt], error) {
	if !principal.IsProfessor() {
		q.UserID = principal.UserID
	}

	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.attempts.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Attempt{}
	}

	return &models.PagedResult[models.Attempt]{Total: total, Items: items}, nil
}

// GetByID retrieves an attempt, requiring the Professor role or ownership
func (s *attemptService) GetByID(ctx context.Context, principal auth.Principal, attemptID string) (*models.Attempt, error) {
	a, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if !principal.IsProfessor() && a.UserID != principal.UserID {
		return nil, ErrForbidden
	}
	return a, nil
}

// Create records an attempt for the calling user. The user always comes from
// the token, never the body; the score is rounded to two decimals.
func (s *attemptService) Create(ctx context.Context, principal auth.Principal, req *models.CreateAttemptRequest) (*models.Attempt, error) {
	if req.Score < 0 || req.Score > 100 {
		return nil, fmt.Errorf("%w: score must be between 0 and 100", ErrValidation)
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be greater than 0", ErrValidation)
	}

	exists, err := s.quizzes.Exists(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	a := &models.Attempt{
		AttemptID:   uuid.NewString(),
		Score:       math.Round(req.Score*100) / 100,
		AttemptedAt: s.now().UTC(),
		Duration:    req.Duration,
		UserID:      principal.UserID,
		QuizID:      req.QuizID,
	}

	if err := s.attempts.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// Delete deletes an attempt
func (s *attemptService) Delete(ctx context.Context, attemptID string) error {
	deleted, err := s.attempts.Delete(ctx, attemptID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// MyStats aggregates the caller's attempts per quiz
func (s *attemptService) MyStats(ctx context.Context, principal auth.Principal) ([]models.AttemptStats, error) {
	stats, err := s.attempts.StatsByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []models.AttemptStats{}
	}
	return stats, nil
}

// MyGlobalStats aggregates the caller's attempts across all quizzes. A user
// without attempts gets zero counts, not an error.
func (s *attemptService) MyGlobalStats(ctx context.Context, principal auth.Principal) (*models.AttemptGlobalStats, error) {
	return s.attempts.GlobalStatsByUser(ctx, principal.UserID)
}

// loadOwnedAttempt fetches an attempt and applies the Professor-or-owner
// read gate shared by the answer endpoints
func (s *attemptService) loadOwnedAttempt(ctx context.Context, principal auth.Principal, attemptID string) (*models.Attempt, error) {
	a, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if !principal.IsProfessor() && a.UserID != principal.UserID {
		return nil, ErrForbidden
	}
	return a, nil
}

// ListAnswers retrieves every answer of an attempt in question order
func (s *attemptService) ListAnswers(ctx context.Context, principal auth.Principal, attemptID string) ([]models.AttemptAnswer, error) {
	if _, err := s.loadOwnedAttempt(ctx, principal, attemptID); err != nil {
		return nil, err
	}

	items, err := s.answers.ListByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.AttemptAnswer{}
	}
	return items, nil
}

// GetAnswer retrieves one answer of an attempt
func (s *attemptService) GetAnswer(ctx context.Context, principal auth.Principal, attemptID, questionID string) (*models.AttemptAnswer, error) {
	if _, err := s.loadOwnedAttempt(ctx, principal, attemptID); err != nil {
		return nil, err
	}

	a, err := s.answers.Get(ctx, attemptID, questionID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// CreateAnswer records an answer within an attempt. Both the attempt and the
// question must exist.
func (s *attemptService) CreateAnswer(ctx context.Context, attemptID string, req *models.CreateAttemptAnswerRequest) (*models.AttemptAnswer, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, ErrParentNotFound
	}

	exists, err := s.questions.Exists(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	a := &models.AttemptAnswer{
		AttemptID:  attemptID,
		QuestionID: req.QuestionID,
		Response:   normalizeOptText(req.Response),
		IsCorrect:  req.IsCorrect,
	}

	if err := s.answers.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// DeleteAnswer removes one answer by its composite key
func (s *attemptService) DeleteAnswer(ctx context.Context, attemptID, questionID string) error {
	deleted, err := s.answers.Delete(ctx, attemptID, questionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
