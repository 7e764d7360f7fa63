package phone

import "strings"

// DefaultCountryCode is prefixed to national numbers that carry no country code.
const DefaultCountryCode = "1"

// Normalize converts a phone number to E.164 format (e.g. +15551234567).
// Normalization is best-effort: input is never rejected, an implausible
// result simply fails downstream at the verification provider.
func Normalize(number string) string {
	// Already E.164
	if strings.HasPrefix(number, "+") {
		return number
	}

	digits := digitsOnly(number)

	// National number without country code (10 digits for the default region)
	if len(digits) == 10 {
		return "+" + DefaultCountryCode + digits
	}

	// Country code already present (11 digits starting with the default code)
	if len(digits) == 11 && strings.HasPrefix(digits, DefaultCountryCode) {
		return "+" + digits
	}

	return "+" + digits
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
