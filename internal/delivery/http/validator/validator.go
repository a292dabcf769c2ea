// Package validator wires go-playground/validator into echo.
package validator

import (
	domainerrors "revcart/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator implements echo.Validator using struct tags.
type requestValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo request validator.
func New() echo.Validator {
	return &requestValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request DTO against its validate tags.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
