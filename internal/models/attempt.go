package models

import "time"

// Attempt records one quiz attempt by a user. Score is on 100, two decimals.
type Attempt struct {
	AttemptID   string    `json:"attemptId"`
	Score       float64   `json:"score"`
	AttemptedAt time.Time `json:"attemptedAt"`
	Duration    int       `json:"duration"`
	UserID      string    `json:"userId"`
	QuizID      string    `json:"quizId"`
}

// CreateAttemptRequest represents a request to record a quiz attempt. The
// attempting user comes from the access token, never the body.
type CreateAttemptRequest struct {
	QuizID   string  `json:"quizId" validate:"required,uuid4"`
	Score    float64 `json:"score" validate:"min=0,max=100"`
	Duration int     `json:"duration" validate:"required,gt=0"`
}

// AttemptListQuery filters the attempt list
type AttemptListQuery struct {
	QuizID string
	UserID string
	PageQuery
}

// AttemptStats is the per-quiz aggregate for one user
type AttemptStats struct {
	QuizID       string  `json:"quizId"`
	AttemptCount int     `json:"attemptCount"`
	AverageScore float64 `json:"averageScore"`
}

// AttemptGlobalStats is the overall aggregate for one user. AverageScore is 0
// when the user has no attempts.
type AttemptGlobalStats struct {
	TotalAttempts      int     `json:"totalAttempts"`
	GlobalAverageScore float64 `json:"globalAverageScore"`
}
