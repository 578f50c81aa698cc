package phone

import (
	"errors"
	"testing"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"us number with country code", "15551234567", "+15551234567"},
		{"us number formatted", "+1 (555) 123-4567", "+15551234567"},
		{"international with plus", "+447911123456", "+447911123456"},
		{"international without plus", "919876543210", "+919876543210"},
		{"ten digit number", "5551234567", "+5551234567"},
		{"with spaces and dashes", "91 98765-43210", "+919876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"15551234567", "+447911123456", "5551234567"}
	for _, raw := range inputs {
		first, err := Normalize(raw)
		require.NoError(t, err)
		second, err := Normalize(first)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestNormalizeRejectsShortNumbers(t *testing.T) {
	for _, raw := range []string{"", "12345", "555-1234", "abc", "+1 (55) 5"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Normalize(raw)
			require.Error(t, err)

			var invalidErr *domain.InvalidPhoneNumberError
			assert.True(t, errors.As(err, &invalidErr))
			assert.False(t, IsValid(raw))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+15551234567"))
	assert.True(t, IsValid("5551234567"))
	assert.False(t, IsValid("12345"))
	// 15 digits formats to 16 characters with the plus sign, past the cap.
	assert.False(t, IsValid("123456789012345"))
}
