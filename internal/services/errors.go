package services

import "errors"

// Error kinds returned by the service layer. Handlers map them to HTTP
// statuses with errors.Is, so wrapping is fine; string matching is not.
var (
	// ErrNotFound means the requested resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrParentNotFound means a referenced parent resource does not exist
	ErrParentNotFound = errors.New("parent resource not found")
	// ErrForbidden means the caller may not act on this resource
	ErrForbidden = errors.New("operation not allowed")
	// ErrValidation means the request payload failed a business rule
	ErrValidation = errors.New("validation failed")
	// ErrInvalidOptions means a QCM question has no usable option list
	ErrInvalidOptions = errors.New("invalid question options")
	// ErrInvalidAnswer means the correct answer does not fit the question type
	ErrInvalidAnswer = errors.New("invalid correct answer")
)
