package models

import "time"

// ModelFile is a file attached to a 3D model (geometry, texture, thumbnail...)
type ModelFile struct {
	FileID    string    `json:"fileId"`
	Path      string    `json:"path"`
	URL       string    `json:"url,omitempty"` // public URL, derived from Path, never stored
	FileType  *string   `json:"fileType"`
	FileRole  *string   `json:"fileRole"`
	IsPrimary bool      `json:"isPrimary"`
	Position  *int      `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	ModelID   string    `json:"modelId"`
}

// UploadModelFileRequest carries the metadata fields of a multipart file
// upload; the file itself travels alongside it
type UploadModelFileRequest struct {
	FileRole  *string `json:"fileRole" validate:"omitempty,max=50"`
	IsPrimary bool    `json:"isPrimary"`
	Position  *int    `json:"position"`
}

// UpdateModelFileMetaRequest is a partial metadata update. Absent fields are
// left unchanged; a field present as null clears the stored value.
type UpdateModelFileMetaRequest struct {
	FileRole  Optional[string] `json:"fileRole"`
	IsPrimary Optional[bool]   `json:"isPrimary"`
	Position  Optional[int]    `json:"position"`
}

// ModelFileListQuery lists files attached to one model
type ModelFileListQuery struct {
	ModelID string
	PageQuery
}
