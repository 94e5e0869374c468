package services

import "strings"

// trimmed returns the string with surrounding whitespace removed
func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// normalizeOptText trims an optional text field and collapses blank values
// to nil, so the database only ever stores NULL or meaningful text
func normalizeOptText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
