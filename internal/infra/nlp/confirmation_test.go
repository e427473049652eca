package nlp

import (
	"testing"

	"vittasaathi/internal/domain/entities"
)

func TestExtractConfirmation(t *testing.T) {
	cases := []struct {
		input    string
		expected entities.Polarity
	}{
		{"yes", entities.PolarityPositive},
		{"  OK  ", entities.PolarityPositive},
		{"हां", entities.PolarityPositive},
		{"no", entities.PolarityNegative},
		{"wait", entities.PolarityNegative},
		{"नहीं", entities.PolarityNegative},
		{"yes please send it", entities.PolarityNone},
		{"no idea how much i spent", entities.PolarityNone},
		{"", entities.PolarityNone},
	}

	for _, tc := range cases {
		if got := ExtractConfirmation(tc.input); got != tc.expected {
			t.Fatalf("ExtractConfirmation(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
