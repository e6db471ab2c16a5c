package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins FormatValidationErrors into a single line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This value should not be blank.", field)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: This value is too long. It should have %s characters or less.", field, param)
		}
		return fmt.Sprintf("%s: This value should be %s or less.", field, param)
	case "min":
		return fmt.Sprintf("%s: This value should be %s or more.", field, param)
	case "email":
		return fmt.Sprintf("%s: This value is not a valid email address.", field)
	case "url":
		return fmt.Sprintf("%s: This value is not a valid URL.", field)
	case "uuid":
		return fmt.Sprintf("%s: This is not a valid UUID.", field)
	case "ymd_date":
		return fmt.Sprintf("%s: This value is not a valid date.", field)
	case "no_emoji":
		return fmt.Sprintf("%s: This value should not contain emoji or symbols.", field)
	default:
		return fmt.Sprintf("%s: This value is not valid (%s).", field, e.Tag())
	}
}
