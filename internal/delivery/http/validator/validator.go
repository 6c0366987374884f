// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates request DTOs against their struct tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the Echo server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the validation
// AppError so the error handler renders the standard envelope.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
