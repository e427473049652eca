package nlp

import (
	"errors"
	"testing"

	"vittasaathi/internal/domain/dto"
	"vittasaathi/internal/domain/entities"
)

type stubAdapter struct {
	resp  dto.QueryAIResponse
	err   error
	calls int
}

func (s *stubAdapter) ExecuteQueryAI(queryText, locale, messageContext string) (dto.QueryAIResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestClassifyCascade(t *testing.T) {
	c := NewClassifier(nil)

	cases := []struct {
		input    string
		expected entities.Intent
	}{
		{"send otp", entities.IntentOtpRequest},
		{"hi", entities.IntentGreeting},
		{"help", entities.IntentHelp},
		{"help me invest 5000", entities.IntentHelp},
		{"should i invest in sip", entities.IntentInvestmentAdvice},
		{"how is nifty today", entities.IntentMarketUpdate},
		{"spent 200 on tea", entities.IntentLogExpense},
		{"earned 500 from delivery", entities.IntentLogIncome},
		{"check my balance", entities.IntentCheckBalance},
		{"monthly summary", entities.IntentViewReport},
		{"goal progress", entities.IntentBudgetQuery},
		{"asdf qwerty", entities.IntentUnknown},
	}

	for _, tc := range cases {
		got, _ := c.Classify(tc.input, entities.LocaleEnglish, entities.SessionContext{})
		if got != tc.expected {
			t.Fatalf("Classify(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestClassifyGreetingIsExactMatchOnly(t *testing.T) {
	c := NewClassifier(nil)
	got, ents := c.Classify("hi spent 200 on tea", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentLogExpense {
		t.Fatalf("Classify = %q, want log_expense", got)
	}
	if ents.Amount == nil || *ents.Amount != 200 || ents.Category != "food" {
		t.Fatalf("entities = %+v, want amount 200 category food", ents)
	}
}

func TestClassifyIncomeBeforeExpense(t *testing.T) {
	c := NewClassifier(nil)

	// "got paid" carries the expense keyword "paid" inside it; the utterance
	// is still one income leg.
	got, ents := c.Classify("got paid 500 today", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentLogIncome {
		t.Fatalf("Classify = %q, want log_income", got)
	}
	if ents.Amount == nil || *ents.Amount != 500 {
		t.Fatalf("amount = %v, want 500", ents.Amount)
	}
	if ents.ExpenseAmount != nil {
		t.Fatalf("expense leg = %v, want none", *ents.ExpenseAmount)
	}
}

func TestClassifyTwoLegMessage(t *testing.T) {
	c := NewClassifier(nil)
	got, ents := c.Classify("earned 500 and spent 200 on tea", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentLogIncome {
		t.Fatalf("Classify = %q, want log_income", got)
	}
	if ents.Amount == nil || *ents.Amount != 500 {
		t.Fatalf("income amount = %v, want 500", ents.Amount)
	}
	if ents.ExpenseAmount == nil || *ents.ExpenseAmount != 200 {
		t.Fatalf("expense amount = %v, want 200", ents.ExpenseAmount)
	}
	if ents.ExpenseCategory != "food" {
		t.Fatalf("expense category = %q, want food", ents.ExpenseCategory)
	}
}

func TestClassifyConfirmationIsContextGated(t *testing.T) {
	c := NewClassifier(nil)

	got, ents := c.Classify("yes", entities.LocaleEnglish, entities.SessionContext{AwaitingConfirmation: true})
	if got != entities.IntentConfirmation || ents.Confirmation != entities.PolarityPositive {
		t.Fatalf("Classify = %q/%q, want confirmation/positive", got, ents.Confirmation)
	}

	// The same word outside a pending question is not a confirmation.
	got, _ = c.Classify("yes", entities.LocaleEnglish, entities.SessionContext{})
	if got == entities.IntentConfirmation {
		t.Fatal("confirmation must not fire without a pending question")
	}
}

func TestClassifyHindiKeywords(t *testing.T) {
	c := NewClassifier(nil)
	got, ents := c.Classify("चाय पर 50 खर्च किया", entities.LocaleHindi, entities.SessionContext{})
	if got != entities.IntentLogExpense {
		t.Fatalf("Classify = %q, want log_expense", got)
	}
	if ents.Amount == nil || *ents.Amount != 50 {
		t.Fatalf("amount = %v, want 50", ents.Amount)
	}
}

func TestClassifyBareAmountDegradesToFallback(t *testing.T) {
	c := NewClassifier(nil)
	got, ents := c.Classify("200", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentFallback {
		t.Fatalf("Classify = %q, want fallback", got)
	}
	if ents.Amount == nil || *ents.Amount != 200 {
		t.Fatalf("amount = %v, want 200", ents.Amount)
	}
}

func TestClassifyAdapterResolvesUnmatchedText(t *testing.T) {
	amount := 300
	adapter := &stubAdapter{resp: dto.QueryAIResponse{Intent: "log_expense", Amount: &amount, Category: "food"}}
	c := NewClassifier(adapter)

	got, ents := c.Classify("chai pe kuch paise gaye", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentLogExpense {
		t.Fatalf("Classify = %q, want log_expense", got)
	}
	if ents.Amount == nil || *ents.Amount != 300 || ents.Category != "food" {
		t.Fatalf("entities = %+v, want amount 300 category food", ents)
	}
	if adapter.calls != 1 {
		t.Fatalf("adapter calls = %d, want 1", adapter.calls)
	}
}

func TestClassifyAdapterIsLastResort(t *testing.T) {
	adapter := &stubAdapter{resp: dto.QueryAIResponse{Intent: "check_balance"}}
	c := NewClassifier(adapter)

	got, _ := c.Classify("spent 200 on tea", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentLogExpense {
		t.Fatalf("Classify = %q, want log_expense", got)
	}
	if adapter.calls != 0 {
		t.Fatalf("adapter calls = %d, want 0", adapter.calls)
	}
}

func TestClassifyAdapterFailureNeverErrors(t *testing.T) {
	adapter := &stubAdapter{err: errors.New("timeout")}
	c := NewClassifier(adapter)

	got, _ := c.Classify("asdf qwerty", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentFallback {
		t.Fatalf("Classify = %q, want fallback", got)
	}
}

func TestClassifyAdapterTransactionWithoutAmountDegrades(t *testing.T) {
	adapter := &stubAdapter{resp: dto.QueryAIResponse{Intent: "log_expense"}}
	c := NewClassifier(adapter)

	got, _ := c.Classify("asdf qwerty", entities.LocaleEnglish, entities.SessionContext{})
	if got != entities.IntentFallback {
		t.Fatalf("Classify = %q, want fallback", got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := NewClassifier(nil)
	session := entities.SessionContext{}

	first, firstEnts := c.Classify("earned 2k and spent 500 on petrol", entities.LocaleEnglish, session)
	for i := 0; i < 5; i++ {
		got, ents := c.Classify("earned 2k and spent 500 on petrol", entities.LocaleEnglish, session)
		if got != first {
			t.Fatalf("run %d: intent %q, want %q", i, got, first)
		}
		if *ents.Amount != *firstEnts.Amount || *ents.ExpenseAmount != *firstEnts.ExpenseAmount {
			t.Fatalf("run %d: entities diverged", i)
		}
	}
}
