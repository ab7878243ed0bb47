// Package validator binds go-playground/validator to echo.
package validator

import (
	domainerrors "vidvault/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reads `validate` struct tags.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct and reports any violation as ErrInvalidInput.
// Field-level details stay in the wrapped message for logs.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return nil
}
