// Package validator adapts go-playground/validator to echo.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator that checks `validate` struct tags.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate validates the bound request struct.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]

			return errors.Errorf("field '%s' failed on the '%s' rule", first.Field(), first.Tag())
		}

		return errors.WithStack(err)
	}

	return nil
}
