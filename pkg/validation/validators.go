package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// simpleEmailRegex is intentionally permissive: a non-whitespace local part,
// an @, a domain with at least one dot and a TLD of 2+ characters. It catches
// obviously malformed input without pretending to guarantee deliverability.
var simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("simple_email", SimpleEmail)
}

// SimpleEmail validates the local@domain.tld shape described above.
func SimpleEmail(fl validator.FieldLevel) bool {
	return simpleEmailRegex.MatchString(fl.Field().String())
}
