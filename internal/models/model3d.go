package models

import (
	"fmt"
	"time"
)

// ModelStatus is the publication status shared by 3D models and quizzes
type ModelStatus string

const (
	StatusDraft  ModelStatus = "Draft"
	StatusActive ModelStatus = "Active"
	StatusClosed ModelStatus = "Closed"
)

// ParseModelStatus decodes a status string, rejecting unknown values
func ParseModelStatus(s string) (ModelStatus, error) {
	switch ModelStatus(s) {
	case StatusDraft, StatusActive, StatusClosed:
		return ModelStatus(s), nil
	default:
		return "", fmt.Errorf("unknown model status %q", s)
	}
}

// String returns the persisted string form of the status
func (s ModelStatus) String() string {
	return string(s)
}

// Model3D represents a 3D anatomical model
type Model3D struct {
	ModelID      string      `json:"modelId"`
	Title        string      `json:"title"`
	Discipline   *string     `json:"discipline"`
	EmbryoDay    *int        `json:"embryoDay"`
	Description  *string     `json:"description"`
	Status       ModelStatus `json:"status"`
	PublishedAt  *time.Time  `json:"publishedAt"`
	AuthorUserID string      `json:"authorUserId"`
}

// CreateModel3DRequest represents a request to create a 3D model
type CreateModel3DRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Discipline  *string `json:"discipline" validate:"omitempty,max=100"`
	EmbryoDay   *int    `json:"embryoDay"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=Draft Active Closed"`
}

// UpdateModel3DRequest represents a full update of a 3D model
type UpdateModel3DRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Discipline  *string `json:"discipline" validate:"omitempty,max=100"`
	EmbryoDay   *int    `json:"embryoDay"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"required,oneof=Draft Active Closed"`
}

// Model3DListQuery filters the model list
type Model3DListQuery struct {
	Search       string
	Status       *ModelStatus
	AuthorUserID string
	PageQuery
}
