package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>"), "<script>")
	assert.Equal(t, "متجر النور", SanitizeString("متجر النور"))
}

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("customer@example.com")
	assert.True(t, ok)

	for _, email := range []string{"", "not-an-email", "a@b", "a @b.com"} {
		ok, msg := ValidateEmail(email)
		assert.False(t, ok, "expected %q to be invalid", email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePhone(t *testing.T) {
	for _, phone := range []string{"+201001234567", "0100 123 4567", "07712345678"} {
		ok, msg := ValidatePhone(phone)
		assert.True(t, ok, "expected %q to be valid: %s", phone, msg)
	}

	for _, phone := range []string{"", "12345", "phone", "+1-800-FLOWERS"} {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, "expected %q to be invalid", phone)
	}
}
