package phone_test

import (
	"testing"

	"rozvoz/shared/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "international format with plus",
			input:    "+421919123456",
			expected: "919123456",
		},
		{
			name:     "international format without plus",
			input:    "421919123456",
			expected: "919123456",
		},
		{
			name:     "local format with leading zero",
			input:    "0919123456",
			expected: "919123456",
		},
		{
			name:     "bare number",
			input:    "919123456",
			expected: "919123456",
		},
		{
			name:     "spaces and dashes",
			input:    "0919 123-456",
			expected: "919123456",
		},
		{
			name:     "parenthesised prefix",
			input:    "(+421) 919 123 456",
			expected: "919123456",
		},
		{
			name:     "multiple leading zeros",
			input:    "00919123456",
			expected: "919123456",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "no digits at all",
			input:    "call me maybe",
			expected: "",
		},
		{
			name:     "only zeros",
			input:    "000",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := phone.Normalize(tt.input)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"+421919123456",
		"0919123456",
		"919123456",
		"0 919 123 456",
		"",
		"no digits",
	}

	for _, input := range inputs {
		once := phone.Normalize(input)
		twice := phone.Normalize(once)

		if once != twice {
			t.Errorf("Normalize(%q) is not idempotent: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeCollapsesEquivalentFormats(t *testing.T) {
	variants := []string{"+421919123456", "0919123456", "919123456"}

	for _, v := range variants {
		if got := phone.Normalize(v); got != "919123456" {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, "919123456")
		}
	}
}
