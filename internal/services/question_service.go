package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
)

// QuizLookupRepository checks quiz existence for child resources
type QuizLookupRepository interface {
	Exists(ctx context.Context, quizID string) (bool, error)
}

// QuestionRepository defines methods for question data access
type QuestionRepository interface {
	// GetByID retrieves a question by ID, nil when absent
	GetByID(ctx context.Context, questionID string) (*models.Question, error)
	// ListByQuiz retrieves the questions of one quiz with pagination
	ListByQuiz(ctx context.Context, q models.QuestionListQuery) ([]models.Question, int, error)
	// Create inserts a question
	Create(ctx context.Context, q *models.Question) error
	// Update persists the full new state of a question
	Update(ctx context.Context, q *models.Question) error
	// Delete removes a question, reporting whether a row matched
	Delete(ctx context.Context, questionID string) (bool, error)
}

type questionService struct {
	questions QuestionRepository
	quizzes   QuizLookupRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questions QuestionRepository, quizzes QuizLookupRepository) *questionService {
	return &questionService{
		questions: questions,
		quizzes:   quizzes,
	}
}

// ListByQuiz retrieves the questions of one quiz in insertion order
func (s *questionService) ListByQuiz(ctx context.Context, q models.QuestionListQuery) (*models.PagedResult[models.Question], error) {
	exists, err := s.quizzes.Exists(ctx, q.QuizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.questions.ListByQuiz(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Question{}
	}

	return &models.PagedResult[models.Question]{Total: total, Items: items}, nil
}

// GetByID retrieves a single question
func (s *questionService) GetByID(ctx context.Context, questionID string) (*models.Question, error) {
	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}
	return q, nil
}

// Create adds a question to a quiz after validating it against its type
func (s *questionService) Create(ctx context.Context, quizID string, req *models.CreateQuestionRequest) (*models.Question, error) {
	exists, err := s.quizzes.Exists(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	questionType, err := models.ParseQuestionType(req.QuestionType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	statement := trimmed(req.Statement)
	if statement == "" {
		return nil, fmt.Errorf("%w: statement is required", ErrValidation)
	}

	q := &models.Question{
		QuestionID:    uuid.NewString(),
		QuestionType:  questionType,
		Statement:     statement,
		Options:       normalizeOptions(req.Options),
		CorrectAnswer: normalizeOptText(req.CorrectAnswer),
		QuizID:        quizID,
	}

	if err := validateQuestionState(q); err != nil {
		return nil, err
	}

	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Update applies a partial update and revalidates the resulting state of the
// question, so a type change and its matching options can land in one request
func (s *questionService) Update(ctx context.Context, questionID string, req *models.UpdateQuestionRequest) (*models.Question, error) {
	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNotFound
	}

	if req.QuizID.Set {
		if !req.QuizID.Valid || trimmed(req.QuizID.Value) == "" {
			return nil, fmt.Errorf("%w: quizId cannot be null", ErrValidation)
		}
		newQuizID := trimmed(req.QuizID.Value)
		if newQuizID != q.QuizID {
			exists, err := s.quizzes.Exists(ctx, newQuizID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, ErrParentNotFound
			}
			q.QuizID = newQuizID
		}
	}
	if req.QuestionType.Set {
		if !req.QuestionType.Valid {
			return nil, fmt.Errorf("%w: questionType cannot be null", ErrValidation)
		}
		questionType, err := models.ParseQuestionType(req.QuestionType.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		q.QuestionType = questionType
	}
	if req.Statement.Set {
		statement := ""
		if req.Statement.Valid {
			statement = trimmed(req.Statement.Value)
		}
		if statement == "" {
			return nil, fmt.Errorf("%w: statement cannot be blank", ErrValidation)
		}
		q.Statement = statement
	}
	if req.Options.Set {
		if req.Options.Valid {
			q.Options = normalizeOptions(req.Options.Value)
		} else {
			q.Options = nil
		}
	}
	if req.CorrectAnswer.Set {
		if req.CorrectAnswer.Valid {
			q.CorrectAnswer = normalizeOptText(&req.CorrectAnswer.Value)
		} else {
			q.CorrectAnswer = nil
		}
	}

	if err := validateQuestionState(q); err != nil {
		return nil, err
	}

	if err := s.questions.Update(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Delete deletes a question
func (s *questionService) Delete(ctx context.Context, questionID string) error {
	deleted, err := s.questions.Delete(ctx, questionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// normalizeOptions trims every option and drops blank entries. An empty
// result collapses to nil so the column stores NULL instead of [].
func normalizeOptions(options []string) []string {
	var out []string
	for _, o := range options {
		t := strings.TrimSpace(o)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// validateQuestionState checks the coherence of a question after all updates
// were applied. Validation always runs against the resulting state, never the
// incoming request alone.
func validateQuestionState(q *models.Question) error {
	switch q.QuestionType {
	case models.QuestionTypeQCM:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: a QCM question needs at least two options", ErrInvalidOptions)
		}
		if q.CorrectAnswer == nil {
			return fmt.Errorf("%w: a QCM question needs a correct answer", ErrInvalidAnswer)
		}
		if !slices.Contains(q.Options, *q.CorrectAnswer) {
			return fmt.Errorf("%w: the correct answer must be one of the options", ErrInvalidAnswer)
		}
	case models.QuestionTypeTrueFalse:
		q.Options = nil
		if q.CorrectAnswer == nil {
			return fmt.Errorf("%w: a true/false question needs an answer", ErrInvalidAnswer)
		}
		v := strings.ToLower(*q.CorrectAnswer)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: a true/false answer must be \"true\" or \"false\"", ErrInvalidAnswer)
		}
	case models.QuestionTypeFreeText:
		q.Options = nil
	}
	return nil
}
