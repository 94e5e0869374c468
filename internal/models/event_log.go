package models

import "time"

// EventLog records a usage event. UserID is nil for anonymous events.
type EventLog struct {
	EventLogID string    `json:"eventLogId"`
	EventType  string    `json:"eventType"`
	Payload    string    `json:"payload"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     *string   `json:"userId"`
}

// CreateEventLogRequest represents a request to record a usage event. The
// acting user comes from the access token.
type CreateEventLogRequest struct {
	EventType string `json:"eventType" validate:"required,max=100"`
	Payload   string `json:"payload" validate:"required"`
}

// EventLogListQuery filters the event log list
type EventLogListQuery struct {
	UserID    string
	EventType string
	PageQuery
}
