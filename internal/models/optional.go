package models

import (
	"bytes"
	"encoding/json"
)

// Optional wraps an updatable request field and records whether the field was
// present in the payload at all. Absent means "leave unchanged"; present and
// null means "clear".
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NewOptional returns an Optional holding a present, non-null value
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: value}
}

// NullOptional returns an Optional that was present in the payload as null
func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. The method is only invoked for
// fields present in the payload, so Set is always true here.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
