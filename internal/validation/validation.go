// File: internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	"dicefit-api/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate *validator.Validate
	policy   *bluemonday.Policy
)

func init() {
	validate = validator.New()

	// Report fields by their JSON names so messages match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("isodate", validateISODate)

	// StrictPolicy() strips all HTML tags.
	policy = bluemonday.StrictPolicy()
}

// ValidateStruct validates a struct and returns an error wrapping
// core.ErrValidation with a user-friendly message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", core.ErrValidation, err)
	}

	var errorMessages []string
	for _, fe := range fieldErrs {
		errorMessages = append(errorMessages, getErrorMessage(fe))
	}

	return core.Validationf("%s", strings.Join(errorMessages, "; "))
}

// getErrorMessage returns a user-friendly error message for validation errors
func getErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be a positive number", field)
	case "clock":
		return fmt.Sprintf("%s must be a time as HH:MM or HH:MM:SS", field)
	case "isodate":
		return fmt.Sprintf("%s must be a date as YYYY-MM-DD", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// validateClock accepts a time of day as HH:MM or HH:MM:SS.
func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// IsClock reports whether s is a time of day as HH:MM or HH:MM:SS.
func IsClock(s string) bool {
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// SanitizeString strips markup and null bytes from user input. The policy
// escapes what it keeps, so the text is unescaped again before it is stored.
func SanitizeString(input string) string {
	// Remove null bytes
	cleaned := strings.ReplaceAll(input, "\x00", "")

	// This will strip all HTML tags, leaving only the text.
	sanitized := html.UnescapeString(policy.Sanitize(cleaned))

	return strings.TrimSpace(sanitized)
}
