package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown to applicants
var FieldLabels = map[string]string{
	"FirstName":   "First name",
	"LastName":    "Last name",
	"Email":       "Email",
	"Phone":       "Phone",
	"Department":  "Department",
	"Position":    "Position",
	"LinkedIn":    "LinkedIn URL",
	"Portfolio":   "Portfolio URL",
	"CoverLetter": "Cover letter",
	"AgreeTerms":  "Terms agreement",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly
// messages. Every violated rule produces one message; the validator never
// short-circuits, so the applicant can fix everything in one round trip.
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "simple_email":
		return "Email must be a valid email address"

	case "http_url":
		return fmt.Sprintf("%s must be a valid http or https URL", label)

	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, formatOneOfOptions(e.Param()))

	case "eq":
		if e.Field() == "AgreeTerms" {
			return "You must agree to the terms and conditions"
		}
		return fmt.Sprintf("%s must equal %s", label, e.Param())

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// formatOneOfOptions turns the space-separated oneof param into a readable list
func formatOneOfOptions(param string) string {
	options := strings.Fields(param)
	if len(options) <= 1 {
		return param
	}
	return strings.Join(options[:len(options)-1], ", ") + " or " + options[len(options)-1]
}
