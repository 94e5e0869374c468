// Package validation exposes the shared request validator
package validation

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used for request DTOs
var Validate = validator.New(validator.WithRequiredStructEnabled())
