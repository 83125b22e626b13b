// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that also knows the asset_state and role rules.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("asset_state", func(fl validator.FieldLevel) bool {
		return entity.AssetState(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are reported as ErrValidationFailed.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, strings.ToLower(fe.Field())+" "+fe.Tag())
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, ", ")))
}
