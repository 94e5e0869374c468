package models

import (
	"fmt"
	"time"
)

// MediaType distinguishes photos from videos attached to a model
type MediaType string

const (
	MediaTypePhoto MediaType = "Photo"
	MediaTypeVideo MediaType = "Video"
)

// ParseMediaType decodes a media type string, rejecting unknown values
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaTypePhoto, MediaTypeVideo:
		return MediaType(s), nil
	default:
		return "", fmt.Errorf("unknown media type %q", s)
	}
}

// String returns the persisted string form of the media type
func (t MediaType) String() string {
	return string(t)
}

// ModelMedia is an illustration (photo or video) attached to a 3D model
type ModelMedia struct {
	MediaID   string    `json:"mediaId"`
	URL       string    `json:"url"`
	MediaType MediaType `json:"mediaType"`
	Legende   *string   `json:"legende"`
	Position  *int      `json:"position"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	ModelID   string    `json:"modelId"`
}

// CreateModelMediaRequest represents a request to attach media to a model
type CreateModelMediaRequest struct {
	URL       string  `json:"url" validate:"required,max=1024"`
	MediaType string  `json:"mediaType" validate:"required,oneof=Photo Video"`
	Legende   *string `json:"legende" validate:"omitempty,max=300"`
	Position  *int    `json:"position"`
	IsPrimary bool    `json:"isPrimary"`
}

// UpdateModelMediaMetaRequest is a partial metadata update. Absent fields are
// left unchanged; a field present as null clears the stored value.
type UpdateModelMediaMetaRequest struct {
	Legende   Optional[string] `json:"legende"`
	IsPrimary Optional[bool]   `json:"isPrimary"`
	Position  Optional[int]    `json:"position"`
}

// ModelMediaListQuery lists media attached to one model
type ModelMediaListQuery struct {
	ModelID string
	PageQuery
}
