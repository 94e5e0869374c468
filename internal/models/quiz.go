package models

import "time"

// Quiz groups questions, optionally attached to a 3D model
type Quiz struct {
	QuizID      string      `json:"quizId"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	TimeLimit   *int        `json:"timeLimit"`
	Attempts    *int        `json:"attempts"`
	Status      ModelStatus `json:"status"`
	PublishedAt *time.Time  `json:"publishedAt"`
	ModelID     *string     `json:"modelId"`
}

// CreateQuizRequest represents a request to create a quiz
type CreateQuizRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	TimeLimit   *int    `json:"timeLimit"`
	Attempts    *int    `json:"attempts"`
	Status      string  `json:"status" validate:"omitempty,oneof=Draft Active Closed"`
	ModelID     *string `json:"modelId" validate:"omitempty,uuid4"`
}

// UpdateQuizRequest is a partial update. The zero UUID in ModelID detaches
// the quiz from its model.
type UpdateQuizRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	TimeLimit   Optional[int]    `json:"timeLimit"`
	Attempts    Optional[int]    `json:"attempts"`
	Status      Optional[string] `json:"status"`
	ModelID     Optional[string] `json:"modelId"`
}

// QuizListQuery filters the quiz list
type QuizListQuery struct {
	ModelID string
	Status  *ModelStatus
	PageQuery
}
