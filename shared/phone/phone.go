package phone

import "strings"

// countryPrefix is the Slovak country code without the leading plus.
const countryPrefix = "421"

// Normalize collapses a free-form phone number into its canonical digit-only
// form so that "+421919123456", "0919123456" and "919123456" compare equal.
// Everything that is not a digit is dropped first; then either the country
// prefix or any leading zeros are stripped. An input with no digits at all
// normalizes to the empty string and must not be used as a matching key.
func Normalize(raw string) string {
	var digits strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()

	if strings.HasPrefix(number, countryPrefix) {
		return number[len(countryPrefix):]
	}

	return strings.TrimLeft(number, "0")
}
