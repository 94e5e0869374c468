package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestQuestionService_Create(t *testing.T) {
	tests := []struct {
		name        string
		quizExists  bool
		req         *models.CreateQuestionRequest
		expectedErr error
	}{
		{
			name:       "valid QCM",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType:  "QCM",
				Statement:     "Which germ layer forms the heart?",
				Options:       []string{"Ectoderm", "Mesoderm", "Endoderm"},
				CorrectAnswer: strPtr("Mesoderm"),
			},
		},
		{
			name:       "QCM with one option",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "QCM",
				Statement:    "Which germ layer forms the heart?",
				Options:      []string{"Mesoderm"},
			},
			expectedErr: ErrInvalidOptions,
		},
		{
			name:       "QCM blank options are dropped before counting",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "QCM",
				Statement:    "Which germ layer forms the heart?",
				Options:      []string{"Mesoderm", "   ", ""},
			},
			expectedErr: ErrInvalidOptions,
		},
		{
			name:       "QCM without a correct answer",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "QCM",
				Statement:    "Which germ layer forms the heart?",
				Options:      []string{"Ectoderm", "Mesoderm"},
			},
			expectedErr: ErrInvalidAnswer,
		},
		{
			name:       "QCM with a blank correct answer",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType:  "QCM",
				Statement:     "Which germ layer forms the heart?",
				Options:       []string{"Ectoderm", "Mesoderm"},
				CorrectAnswer: strPtr("   "),
			},
			expectedErr: ErrInvalidAnswer,
		},
		{
			name:       "QCM answer outside options",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType:  "QCM",
				Statement:     "Which germ layer forms the heart?",
				Options:       []string{"Ectoderm", "Mesoderm"},
				CorrectAnswer: strPtr("Endoderm"),
			},
			expectedErr: ErrInvalidAnswer,
		},
		{
			name:       "true/false accepts mixed case answer",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType:  "TrueFalse",
				Statement:     "The neural tube closes by day 28",
				CorrectAnswer: strPtr("True"),
			},
		},
		{
			name:       "true/false without an answer",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "TrueFalse",
				Statement:    "The neural tube closes by day 28",
			},
			expectedErr: ErrInvalidAnswer,
		},
		{
			name:       "true/false rejects other answers",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType:  "TrueFalse",
				Statement:     "The neural tube closes by day 28",
				CorrectAnswer: strPtr("yes"),
			},
			expectedErr: ErrInvalidAnswer,
		},
		{
			name:       "unknown type",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "Essay",
				Statement:    "Describe gastrulation",
			},
			expectedErr: ErrValidation,
		},
		{
			name:       "blank statement",
			quizExists: true,
			req: &models.CreateQuestionRequest{
				QuestionType: "FreeText",
				Statement:    "   ",
			},
			expectedErr: ErrValidation,
		},
		{
			name:       "missing quiz",
			quizExists: false,
			req: &models.CreateQuestionRequest{
				QuestionType: "FreeText",
				Statement:    "Describe gastrulation",
			},
			expectedErr: ErrParentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := &mockQuestionRepository{}
			svc := NewQuestionService(questions, &mockQuizLookup{exists: tt.quizExists})

			result, err := svc.Create(context.Background(), "quiz-1", tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				assert.Nil(t, questions.created)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.QuestionID)
			assert.Equal(t, "quiz-1", result.QuizID)
			assert.Equal(t, result, questions.created)
		})
	}

	t.Run("non-QCM questions never keep options", func(t *testing.T) {
		questions := &mockQuestionRepository{}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: true})

		result, err := svc.Create(context.Background(), "quiz-1", &models.CreateQuestionRequest{
			QuestionType:  "TrueFalse",
			Statement:     "The neural tube closes by day 28",
			Options:       []string{"True", "False"},
			CorrectAnswer: strPtr("true"),
		})

		require.NoError(t, err)
		assert.Nil(t, result.Options)
	})
}

func TestQuestionService_Update(t *testing.T) {
	existing := func() *models.Question {
		return &models.Question{
			QuestionID:    "question-1",
			QuestionType:  models.QuestionTypeQCM,
			Statement:     "Which germ layer forms the heart?",
			Options:       []string{"Ectoderm", "Mesoderm"},
			CorrectAnswer: strPtr("Mesoderm"),
			QuizID:        "quiz-1",
		}
	}

	t.Run("type change revalidates the resulting state", func(t *testing.T) {
		questions := &mockQuestionRepository{question: existing()}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: true})

		result, err := svc.Update(context.Background(), "question-1", &models.UpdateQuestionRequest{
			QuestionType:  models.NewOptional("FreeText"),
			CorrectAnswer: models.NullOptional[string](),
		})

		require.NoError(t, err)
		assert.Equal(t, models.QuestionTypeFreeText, result.QuestionType)
		assert.Nil(t, result.Options)
		assert.Nil(t, result.CorrectAnswer)
	})

	t.Run("shrinking QCM options below two fails", func(t *testing.T) {
		questions := &mockQuestionRepository{question: existing()}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: true})

		result, err := svc.Update(context.Background(), "question-1", &models.UpdateQuestionRequest{
			Options:       models.NewOptional([]string{"Mesoderm"}),
			CorrectAnswer: models.NewOptional("Mesoderm"),
		})

		assert.ErrorIs(t, err, ErrInvalidOptions)
		assert.Nil(t, result)
		assert.Nil(t, questions.updated)
	})

	t.Run("clearing the QCM answer fails", func(t *testing.T) {
		questions := &mockQuestionRepository{question: existing()}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: true})

		result, err := svc.Update(context.Background(), "question-1", &models.UpdateQuestionRequest{
			CorrectAnswer: models.NullOptional[string](),
		})

		assert.ErrorIs(t, err, ErrInvalidAnswer)
		assert.Nil(t, result)
		assert.Nil(t, questions.updated)
	})

	t.Run("moving to another quiz checks it exists", func(t *testing.T) {
		questions := &mockQuestionRepository{question: existing()}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: false})

		result, err := svc.Update(context.Background(), "question-1", &models.UpdateQuestionRequest{
			QuizID: models.NewOptional("quiz-2"),
		})

		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.Nil(t, result)
	})

	t.Run("null quizId is rejected", func(t *testing.T) {
		questions := &mockQuestionRepository{question: existing()}
		svc := NewQuestionService(questions, &mockQuizLookup{exists: true})

		result, err := svc.Update(context.Background(), "question-1", &models.UpdateQuestionRequest{
			QuizID: models.NullOptional[string](),
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewQuestionService(&mockQuestionRepository{}, &mockQuizLookup{exists: true})

		result, err := svc.Update(context.Background(), "missing", &models.UpdateQuestionRequest{})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestQuestionService_ListByQuiz(t *testing.T) {
	t.Run("missing quiz", func(t *testing.T) {
		svc := NewQuestionService(&mockQuestionRepository{}, &mockQuizLookup{exists: false})

		result, err := svc.ListByQuiz(context.Background(), models.QuestionListQuery{QuizID: "missing"})

		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.Nil(t, result)
	})

	t.Run("empty quiz yields an empty slice", func(t *testing.T) {
		svc := NewQuestionService(&mockQuestionRepository{}, &mockQuizLookup{exists: true})

		result, err := svc.ListByQuiz(context.Background(), models.QuestionListQuery{QuizID: "quiz-1"})

		require.NoError(t, err)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
	})
}

func TestNormalizeOptions(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, normalizeOptions([]string{" A ", "", "B", "  "}))
	assert.Nil(t, normalizeOptions([]string{"", "   "}))
	assert.Nil(t, normalizeOptions(nil))
}
