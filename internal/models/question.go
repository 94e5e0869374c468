package models

import "fmt"

// QuestionType is the closed set of supported question kinds
type QuestionType string

const (
	QuestionTypeQCM       QuestionType = "QCM"
	QuestionTypeTrueFalse QuestionType = "TrueFalse"
	QuestionTypeFreeText  QuestionType = "FreeText"
)

// ParseQuestionType decodes a question type string, rejecting unknown values
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionTypeQCM, QuestionTypeTrueFalse, QuestionTypeFreeText:
		return QuestionType(s), nil
	default:
		return "", fmt.Errorf("unknown question type %q", s)
	}
}

// String returns the persisted string form of the question type
func (t QuestionType) String() string {
	return string(t)
}

// Question belongs to a quiz. Options are only meaningful for QCM questions
// and are persisted as a JSON array.
type Question struct {
	QuestionID    string       `json:"questionId"`
	QuestionType  QuestionType `json:"questionType"`
	Statement     string       `json:"statement"`
	Options       []string     `json:"options"`
	CorrectAnswer *string      `json:"correctAnswer"`
	QuizID        string       `json:"quizId"`
}

// CreateQuestionRequest represents a request to add a question to a quiz
type CreateQuestionRequest struct {
	QuestionType  string   `json:"questionType" validate:"required,oneof=QCM TrueFalse FreeText"`
	Statement     string   `json:"statement" validate:"required,max=2000"`
	Options       []string `json:"options"`
	CorrectAnswer *string  `json:"correctAnswer"`
}

// UpdateQuestionRequest is a partial update; validation runs against the
// resulting state of the question
type UpdateQuestionRequest struct {
	QuizID        Optional[string]   `json:"quizId"`
	QuestionType  Optional[string]   `json:"questionType"`
	Statement     Optional[string]   `json:"statement"`
	Options       Optional[[]string] `json:"options"`
	CorrectAnswer Optional[string]   `json:"correctAnswer"`
}

// QuestionListQuery lists the questions of one quiz
type QuestionListQuery struct {
	QuizID string
	PageQuery
}
