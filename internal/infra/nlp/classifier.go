package nlp

import (
	"strings"
	"vittasaathi/internal/domain/dto"
	"vittasaathi/internal/domain/entities"
)

// FallbackAdapter is the opaque inference collaborator consulted only when
// the rule cascade finds nothing. It must return within a bounded time or
// error; either way the classified turn degrades instead of failing.
type FallbackAdapter interface {
	ExecuteQueryAI(queryText string, locale string, messageContext string) (dto.QueryAIResponse, error)
}

// Classifier scores a fixed, ordered rule cascade against one utterance.
// The cascade order itself encodes priority, so there are no score ties to
// break and two identical inputs always classify identically.
type Classifier struct {
	fallback FallbackAdapter
}

// NewClassifier creates a classifier. The adapter may be nil, in which case
// unmatched text classifies as Unknown (or Fallback when an amount exists).
func NewClassifier(fallback FallbackAdapter) *Classifier {
	return &Classifier{fallback: fallback}
}

var adapterIntents = map[string]entities.Intent{
	"log_expense":       entities.IntentLogExpense,
	"expense_entry":     entities.IntentLogExpense,
	"log_income":        entities.IntentLogIncome,
	"income_entry":      entities.IntentLogIncome,
	"check_balance":     entities.IntentCheckBalance,
	"balance_query":     entities.IntentCheckBalance,
	"view_report":       entities.IntentViewReport,
	"report_query":      entities.IntentViewReport,
	"budget_query":      entities.IntentBudgetQuery,
	"greeting":          entities.IntentGreeting,
	"help":              entities.IntentHelp,
	"investment_query":  entities.IntentInvestmentAdvice,
	"investment_advice": entities.IntentInvestmentAdvice,
	"market_update":     entities.IntentMarketUpdate,
}

// Classify runs the cascade. The first matching rule wins. It never fails:
// absence of a match degrades to Fallback or Unknown.
func (c *Classifier) Classify(text string, locale entities.Locale, session entities.SessionContext) (entities.Intent, entities.Entities) {
	lower := strings.ToLower(strings.TrimSpace(text))
	var ents entities.Entities

	if otpKeywords.matches(lower, locale) {
		return entities.IntentOtpRequest, ents
	}

	if greetingPhrases.matchesExact(lower, locale) {
		return entities.IntentGreeting, ents
	}

	if helpKeywords.matches(lower, locale) {
		return entities.IntentHelp, ents
	}

	// Context-gated: the same phrases mean nothing special when no question
	// is pending.
	if session.AwaitingConfirmation {
		if polarity := ExtractConfirmation(lower); polarity != entities.PolarityNone {
			ents.Confirmation = polarity
			return entities.IntentConfirmation, ents
		}
	}

	if investmentKeywords.matches(lower, locale) {
		return entities.IntentInvestmentAdvice, ents
	}
	if marketKeywords.matches(lower, locale) {
		return entities.IntentMarketUpdate, ents
	}

	// Income is tried before expense so that phrases like "got paid" never
	// fall through to the generic expense patterns.
	incIdx, incEnd := incomeKeywords.findSpan(lower, locale)
	if incIdx >= 0 {
		expIdx := expenseKeywords.find(lower, locale)
		// A hit inside the income keyword itself ("paid" within "got paid")
		// is not a second leg.
		if expIdx >= incIdx && expIdx < incEnd {
			expIdx = -1
		}
		incomeClause, expenseClause := splitClauses(lower, incIdx, expIdx)
		amount, ok := ExtractAmount(incomeClause)
		if !ok {
			amount, ok = ExtractAmount(lower)
		}
		if ok {
			ents.Amount = &amount
			ents.Category = ExtractCategory(incomeClause, DirectionIncome)
			ents.Description = strings.TrimSpace(text)
			if expenseClause != "" {
				if expAmount, expOk := ExtractAmount(expenseClause); expOk {
					ents.ExpenseAmount = &expAmount
					ents.ExpenseCategory = ExtractCategory(expenseClause, DirectionExpense)
				}
			}
			return entities.IntentLogIncome, ents
		}
	}

	if incIdx < 0 && expenseKeywords.matches(lower, locale) {
		if amount, ok := ExtractAmount(lower); ok {
			ents.Amount = &amount
			ents.Category = ExtractCategory(lower, DirectionExpense)
			ents.Description = strings.TrimSpace(text)
			return entities.IntentLogExpense, ents
		}
	}

	if balanceKeywords.matches(lower, locale) {
		return entities.IntentCheckBalance, ents
	}
	if reportKeywords.matches(lower, locale) {
		return entities.IntentViewReport, ents
	}
	if goalKeywords.matches(lower, locale) {
		return entities.IntentBudgetQuery, ents
	}

	return c.classifyWithFallback(text, lower, locale, session)
}

// splitClauses cuts the text into an income clause and an expense clause
// when one message carries both legs ("earned 500 and spent 200 on tea").
// The expense clause is empty when no expense keyword occurs.
func splitClauses(lower string, incIdx, expIdx int) (string, string) {
	if expIdx < 0 {
		return lower, ""
	}
	if incIdx < expIdx {
		return lower[:expIdx], lower[expIdx:]
	}
	return lower[incIdx:], lower[expIdx:incIdx]
}

func (c *Classifier) classifyWithFallback(text, lower string, locale entities.Locale, session entities.SessionContext) (entities.Intent, entities.Entities) {
	var ents entities.Entities

	if c.fallback != nil {
		result, err := c.fallback.ExecuteQueryAI(text, string(locale), session.LastResponse)
		if err == nil {
			if intent, ok := adapterIntents[strings.ToLower(result.Intent)]; ok {
				ents.Amount = result.Amount
				ents.Category = result.Category
				ents.Description = result.Description
				if (intent == entities.IntentLogExpense || intent == entities.IntentLogIncome) && ents.Amount == nil {
					return c.degrade(lower)
				}
				return intent, ents
			}
		}
		return c.degrade(lower)
	}

	return c.degrade(lower)
}

// degrade produces the terminal no-match result. A bare numeric token is
// surfaced so the router can ask the user to disambiguate income vs expense.
func (c *Classifier) degrade(lower string) (entities.Intent, entities.Entities) {
	var ents entities.Entities
	if amount, ok := ExtractAmount(lower); ok {
		ents.Amount = &amount
		return entities.IntentFallback, ents
	}
	if c.fallback != nil {
		return entities.IntentFallback, ents
	}
	return entities.IntentUnknown, ents
}
