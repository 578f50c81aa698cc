// Package phone canonicalizes raw phone numbers into the E.164-ish format the
// messaging provider expects.
//
// The rules are deliberately lenient: digits are stripped, an 11-digit number
// starting with the North-American country code gets a +, and anything with
// at least 10 digits is accepted as an international number. No country-code
// table is consulted. This is a known limitation carried over intentionally;
// tightening it would be a behavior change.
package phone

import (
	"strings"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

// Normalize canonicalizes raw into +<digits> form. It returns an
// InvalidPhoneNumberError when fewer than 10 digits remain after stripping.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()

	switch {
	case len(clean) == 11 && strings.HasPrefix(clean, "1"):
		// US/Canada number.
		return "+" + clean, nil
	case len(clean) >= 10:
		return "+" + clean, nil
	default:
		return "", &domain.InvalidPhoneNumberError{Raw: raw}
	}
}

// IsValid reports whether raw normalizes into a plausible WhatsApp address.
func IsValid(raw string) bool {
	formatted, err := Normalize(raw)
	if err != nil {
		return false
	}
	return len(formatted) >= 11 && len(formatted) <= 15
}
