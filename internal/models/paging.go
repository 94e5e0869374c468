package models

const (
	// DefaultPageSize is used when no page size is requested
	DefaultPageSize = 20
	// MaxPageSize caps the number of items a single page may return
	MaxPageSize = 100
)

// PageQuery holds the pagination parameters shared by every list endpoint
type PageQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps the page and page size into their valid ranges.
// Callers never see unclamped values past this point.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the number of rows to skip for the current page
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PagedResult is a bounded, ordered window of a larger match set plus the
// total match count (ignoring pagination)
type PagedResult[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
