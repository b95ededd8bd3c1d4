package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Accepts international formats with an optional leading +.
	phoneRegex   = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// SanitizeString escapes HTML special characters and strips tags from
// free-text fields before they are stored.
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}

// ValidateEmail checks if the email address has a valid format
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidatePhone checks if the phone number has a valid format
func ValidatePhone(phone string) (bool, string) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if cleaned == "" {
		return false, "Phone number is required"
	}
	if !phoneRegex.MatchString(cleaned) {
		return false, "Phone number must be 8 to 15 digits"
	}
	return true, ""
}
