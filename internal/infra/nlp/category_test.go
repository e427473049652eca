package nlp

import "testing"

func TestExtractCategoryExpense(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"spent 50 on chai", "food"},
		{"auto to office", "transport"},
		{"electricity bill 1200", "bills"},
		{"bought clothes from flipkart", "shopping"},
		{"doctor visit", "medical"},
		{"movie tickets", "entertainment"},
		{"दवाई के लिए 300", "medical"},
		{"spent 100", "other"},
	}

	for _, tc := range cases {
		if got := ExtractCategory(tc.input, DirectionExpense); got != tc.expected {
			t.Fatalf("ExtractCategory(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestExtractCategoryIncome(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"salary credited", "salary"},
		{"swiggy delivery payout", "gig"},
		{"shop sale today", "business"},
		{"client project payment", "freelance"},
		{"cashback 50", "other"},
		{"earned 500", "other"},
	}

	for _, tc := range cases {
		if got := ExtractCategory(tc.input, DirectionIncome); got != tc.expected {
			t.Fatalf("ExtractCategory(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestExtractCategoryTableOrderBreaksTies(t *testing.T) {
	// "tea" (food) comes before "bill" (bills) in the expense table.
	if got := ExtractCategory("tea and the phone bill", DirectionExpense); got != "food" {
		t.Fatalf("ExtractCategory = %q, want food", got)
	}
}
