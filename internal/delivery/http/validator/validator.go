// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "pricewatch/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates a request validator backed by struct tags.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request body against its `validate` tags. The
// failure surfaces as a 400 with the per-field violations in the details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
