package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyEmail indicates the email address is empty
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmailTooLong indicates the email address exceeds the maximum length
	ErrEmailTooLong = errors.New("email must be at most 254 characters")

	// ErrInvalidEmail indicates the email address is not syntactically valid
	ErrInvalidEmail = errors.New("email is not a valid address")
)

// emailRegex matches local@domain with a dotted domain and a letter-only TLD
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)

// EmailValidator handles email address validation
type EmailValidator struct{}

// NewEmailValidator creates a new email validator instance
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{}
}

// Validate validates an email address syntactically.
// Returns the sanitized address (surrounding whitespace removed) and an error
// if the address is invalid.
func (v *EmailValidator) Validate(email string) (string, error) {
	sanitized := v.Sanitize(email)

	if sanitized == "" {
		return "", ErrEmptyEmail
	}

	if len(sanitized) > 254 {
		return "", ErrEmailTooLong
	}

	if !emailRegex.MatchString(sanitized) {
		return "", ErrInvalidEmail
	}

	return sanitized, nil
}

// Sanitize removes surrounding whitespace from an email address
func (v *EmailValidator) Sanitize(email string) string {
	return strings.TrimSpace(email)
}
