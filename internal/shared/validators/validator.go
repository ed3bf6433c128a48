package validators

import (
	"github.com/go-playground/validator/v10"
)

// Aliases so config loading does not import the validator module directly.
type (
	Validate         = validator.Validate
	ValidationErrors = validator.ValidationErrors
	FieldError       = validator.FieldError
)

// New creates a validator instance.
func New() *Validate {
	return validator.New()
}
