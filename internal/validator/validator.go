package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ratings accepted for a movie listing.
var ratings = map[string]bool{
	"G":     true,
	"PG":    true,
	"PG-13": true,
	"R":     true,
	"NC-17": true,
	"NR":    true,
}

var customValidations = map[string]validator.Func{
	"rating":   validateRating,
	"notblank": validateNotBlank,
}

// NewValidator panics if a custom validation cannot be registered, since
// every request struct depends on those tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	if err := registerValidations(v, customValidations); err != nil {
		panic(err)
	}

	return v
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}

	return nil
}

// jsonFieldName reports fields by their JSON name so issues match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func validateRating(fl validator.FieldLevel) bool {
	return ratings[strings.ToUpper(strings.TrimSpace(fl.Field().String()))]
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		if err.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters long", err.Param())
		}
		return fmt.Sprintf("must be at most %s", err.Param())
	case "rating":
		return "must be one of G, PG, PG-13, R, NC-17, NR"
	default:
		return "is invalid"
	}
}
