// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates request structs tagged with `validate`.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their json name.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures become ErrValidationFailed with
// one "field: rule" entry per violation.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": is required"
	case "email":
		return fe.Field() + ": must be a valid email"
	case "oneof":
		return fe.Field() + ": must be one of [" + fe.Param() + "]"
	case "min", "gte":
		return fe.Field() + ": must be at least " + fe.Param()
	case "max", "lte":
		return fe.Field() + ": must be at most " + fe.Param()
	case "gt":
		return fe.Field() + ": must be greater than " + fe.Param()
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}
