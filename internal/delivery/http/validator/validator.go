// Package validator wires go-playground/validator into Echo.
package validator

import (
	domainerrors "fence/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// customValidator adapts go-playground/validator to echo.Validator.
type customValidator struct {
	validate *validator.Validate
}

// New creates the validator used for request input structs.
func New() echo.Validator {
	return &customValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct's validate tags and maps failures onto the
// application's validation error.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "request validation failed")
	}

	return nil
}
