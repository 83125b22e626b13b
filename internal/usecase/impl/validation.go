package impl

import (
	"strings"

	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/repository"
	"locus/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// inputValidator checks asset form input before any store call.
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("asset_state", func(fl validator.FieldLevel) bool {
		return entity.AssetState(fl.Field().String()).IsValid()
	})

	return &inputValidator{validate: validate}
}

// normalizeCode trims a scanned or typed code and rejects codes that cannot
// key exactly one record, such as URLs read from foreign QR labels.
func normalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.WithStack(domainerrors.ErrInvalidCode)
	}
	if err := repository.ValidateKey(code); err != nil {
		return "", errors.WithStack(domainerrors.ErrInvalidCode.WithDetails(err.Error()))
	}

	return code, nil
}

// normalizeAssetInput trims every attribute. The image payload is left untouched.
func normalizeAssetInput(input usecase.AssetInput) usecase.AssetInput {
	input.Description = strings.TrimSpace(input.Description)
	input.Brand = strings.TrimSpace(input.Brand)
	input.Model = strings.TrimSpace(input.Model)
	input.SerialNumber = strings.TrimSpace(input.SerialNumber)
	input.State = strings.TrimSpace(input.State)
	input.Location = strings.TrimSpace(input.Location)
	input.Sector = strings.TrimSpace(input.Sector)

	return input
}

// Check returns ErrValidationFailed naming the first offending fields.
func (v *inputValidator) Check(input usecase.AssetInput) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate asset input")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fieldName(fe.Field())+" "+fe.Tag())
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, ", ")))
}

// fieldName maps an input field to its stored attribute name.
func fieldName(field string) string {
	switch field {
	case "Description":
		return entity.FieldDescription
	case "State":
		return entity.FieldState
	case "Location":
		return entity.FieldLocation
	default:
		return field
	}
}

func assetFromInput(code string, input usecase.AssetInput) *entity.Asset {
	return &entity.Asset{
		Code:         code,
		Description:  input.Description,
		Brand:        input.Brand,
		Model:        input.Model,
		SerialNumber: input.SerialNumber,
		State:        entity.AssetState(input.State),
		Location:     input.Location,
		Sector:       input.Sector,
	}
}
