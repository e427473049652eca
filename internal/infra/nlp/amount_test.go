package nlp

import "testing"

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		input    string
		expected int
		found    bool
	}{
		{"spent 200 on tea", 200, true},
		{"earned 5000 from delivery", 5000, true},
		{"got 3k today", 3000, true},
		{"save 1 lakh for bike", 100000, true},
		{"2.5 lakh target", 250000, true},
		{"1.5k tip", 1500, true},
		{"paid ₹1,234 for the bill", 1234, true},
		{"rs 500 kharch", 500, true},
		{"no numbers here", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := ExtractAmount(tc.input)
		if ok != tc.found {
			t.Fatalf("ExtractAmount(%q) found = %v, want %v", tc.input, ok, tc.found)
		}
		if got != tc.expected {
			t.Fatalf("ExtractAmount(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}

func TestExtractAmountDecimalTruncation(t *testing.T) {
	// Bare decimals are not parsed as fractions; the integer token before
	// the point wins.
	got, ok := ExtractAmount("paid 12.50 for chai")
	if !ok || got != 12 {
		t.Fatalf("ExtractAmount = %d (%v), want 12", got, ok)
	}
}

func TestExtractAmountShorthandBeatsEarlierBareInteger(t *testing.T) {
	got, ok := ExtractAmount("spent 200 and got 3k")
	if !ok || got != 3000 {
		t.Fatalf("ExtractAmount = %d (%v), want 3000", got, ok)
	}
}

func TestExtractAmounts(t *testing.T) {
	got := ExtractAmounts("earned 500 and spent 200 on tea")
	if len(got) != 2 || got[0] != 500 || got[1] != 200 {
		t.Fatalf("ExtractAmounts = %v, want [500 200]", got)
	}

	got = ExtractAmounts("2k income, 1 lakh goal")
	if len(got) != 2 || got[0] != 2000 || got[1] != 100000 {
		t.Fatalf("ExtractAmounts = %v, want [2000 100000]", got)
	}

	if got := ExtractAmounts("nothing"); len(got) != 0 {
		t.Fatalf("ExtractAmounts = %v, want empty", got)
	}
}
