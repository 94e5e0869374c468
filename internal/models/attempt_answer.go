package models

// AttemptAnswer is one answer recorded within an attempt, keyed by the
// attempt and question pair
type AttemptAnswer struct {
	AttemptID  string  `json:"attemptId"`
	QuestionID string  `json:"questionId"`
	Response   *string `json:"response"`
	IsCorrect  bool    `json:"isCorrect"`
}

// CreateAttemptAnswerRequest represents a request to record an answer
type CreateAttemptAnswerRequest struct {
	QuestionID string  `json:"questionId" validate:"required,uuid4"`
	Response   *string `json:"response"`
	IsCorrect  bool    `json:"isCorrect"`
}
