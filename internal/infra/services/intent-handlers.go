package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"vittasaathi/internal/domain/entities"
	"vittasaathi/internal/infra/nlp"
	"vittasaathi/internal/infra/store"
)

const otpTTL = 5 * time.Minute

func (ds *DialogService) handleGreeting(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	return replyf(replyGreeting, locale, uc.Onboarding.Profile.DisplayName)
}

func (ds *DialogService) handleHelp(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	return reply(replyHelp, locale)
}

func (ds *DialogService) handleOtpRequest(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	code := generateOTP()
	uc.Session.OTP = code
	uc.Session.OTPExpiry = ds.now().Add(otpTTL)
	return replyf(replyOtp, locale, code)
}

// generateOTP draws a six-digit code from crypto/rand.
func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "000000"
	}
	return strconv.Itoa(int(n.Int64()) + 100000)
}

type expenseLeg struct {
	amount   int
	category string
}

// expenseLegs splits a message like "100 on tea and 50 on auto" into its
// individual expenses. Only a message carrying more than one amount is
// split; a single-amount message stays one leg using the already-extracted
// entities, even when it contains a conjunction.
func expenseLegs(text string, ents entities.Entities) []expenseLeg {
	if amounts := nlp.ExtractAmounts(text); len(amounts) > 1 {
		lower := strings.ToLower(text)
		parts := strings.FieldsFunc(lower, func(r rune) bool { return r == ',' })

		var split []string
		for _, part := range parts {
			split = append(split, strings.Split(part, " and ")...)
		}

		var legs []expenseLeg
		for _, part := range split {
			if amount, ok := nlp.ExtractAmount(part); ok {
				legs = append(legs, expenseLeg{amount, nlp.ExtractCategory(part, nlp.DirectionExpense)})
			}
		}
		if len(legs) > 1 {
			return legs
		}
	}

	if ents.Amount != nil {
		return []expenseLeg{{*ents.Amount, ents.Category}}
	}
	return nil
}

func (ds *DialogService) handleLogExpense(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	legs := expenseLegs(text, ents)
	if len(legs) == 0 {
		return reply(replyUnknown, locale)
	}

	total := 0
	for _, leg := range legs {
		if _, err := ds.Ledger.Insert(ds.Ctx, store.Transaction{
			ConversationID: uc.ConversationID,
			Type:           store.TxnExpense,
			Amount:         leg.amount,
			Category:       leg.category,
			Description:    strings.TrimSpace(text),
		}); err != nil {
			ds.Logger.Error(fmt.Sprintf("Failed to insert expense for %s: %v", uc.ConversationID, err))
			return reply(replyError, locale)
		}
		total += leg.amount
	}

	category := legs[0].category
	if len(legs) > 1 {
		category = "multiple items"
	}

	summary, err := ds.Ledger.DaySummary(ds.Ctx, uc.ConversationID, ds.now())
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read day summary for %s: %v", uc.ConversationID, err))
		return expenseLoggedReply(locale, total, category, total, 0)
	}

	remaining := uc.Onboarding.Profile.DailyBudget - summary.Expense
	if remaining < 0 {
		return replyf(replyOverBudget, locale, total, category, summary.Expense, -remaining)
	}
	return expenseLoggedReply(locale, total, category, summary.Expense, remaining)
}

func (ds *DialogService) handleLogIncome(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	if ents.Amount == nil {
		return reply(replyUnknown, locale)
	}

	if _, err := ds.Ledger.Insert(ds.Ctx, store.Transaction{
		ConversationID: uc.ConversationID,
		Type:           store.TxnIncome,
		Amount:         *ents.Amount,
		Category:       ents.Category,
		Description:    strings.TrimSpace(text),
	}); err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to insert income for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}

	if ents.ExpenseAmount == nil {
		return incomeLoggedReply(locale, *ents.Amount, ents.Category)
	}

	// Second leg of a combined "earned X and spent Y" message.
	if _, err := ds.Ledger.Insert(ds.Ctx, store.Transaction{
		ConversationID: uc.ConversationID,
		Type:           store.TxnExpense,
		Amount:         *ents.ExpenseAmount,
		Category:       ents.ExpenseCategory,
		Description:    strings.TrimSpace(text),
	}); err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to insert expense leg for %s: %v", uc.ConversationID, err))
		return incomeLoggedReply(locale, *ents.Amount, ents.Category)
	}

	summary, err := ds.Ledger.DaySummary(ds.Ctx, uc.ConversationID, ds.now())
	net := 0
	if err == nil {
		net = summary.Net()
	}
	return replyf(replyBothLogged, locale, *ents.Amount, ents.Category, *ents.ExpenseAmount, ents.ExpenseCategory, net)
}

func (ds *DialogService) handleCheckBalance(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	day, err := ds.Ledger.DaySummary(ds.Ctx, uc.ConversationID, ds.now())
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read day summary for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}
	month, err := ds.Ledger.MonthSummary(ds.Ctx, uc.ConversationID, ds.now())
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read month summary for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}
	return replyf(replyBalance, locale, day.Income, day.Expense, month.Income, month.Expense, month.Net())
}

func (ds *DialogService) handleViewReport(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	month, err := ds.Ledger.MonthSummary(ds.Ctx, uc.ConversationID, ds.now())
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read month summary for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}
	breakdown, err := ds.Ledger.CategoryBreakdown(ds.Ctx, uc.ConversationID, monthStart(ds.now()))
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read category breakdown for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}

	uc.Session.AwaitingConfirmation = true
	return replyf(replyReport, locale, month.Income, month.Expense, month.Net(), formatBreakdown(breakdown))
}

func (ds *DialogService) handleBudgetQuery(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	p := uc.Onboarding.Profile
	if p.TargetAmount == 0 {
		return reply(replyNoGoal, locale)
	}

	saved, err := ds.Ledger.SavedSince(ds.Ctx, uc.ConversationID, uc.Onboarding.StartDate)
	if err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to read savings for %s: %v", uc.ConversationID, err))
		return reply(replyError, locale)
	}
	if saved < 0 {
		saved = 0
	}

	percent := saved * 100 / p.TargetAmount
	if percent > 100 {
		percent = 100
	}
	return replyf(replyBudgetProgress, locale, p.GoalName, p.TargetAmount, progressBar(percent), percent, saved, p.DailyTarget)
}

func (ds *DialogService) handleInvestment(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	return reply(replyInvestment, locale)
}

func (ds *DialogService) handleMarket(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	return reply(replyMarket, locale)
}

func (ds *DialogService) handleConfirmation(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	if ents.Confirmation == entities.PolarityPositive && uc.Session.LastIntent == entities.IntentViewReport {
		breakdown, err := ds.Ledger.CategoryBreakdown(ds.Ctx, uc.ConversationID, monthStart(ds.now()))
		if err != nil {
			ds.Logger.Error(fmt.Sprintf("Failed to read category breakdown for %s: %v", uc.ConversationID, err))
			return reply(replyError, locale)
		}
		month, err := ds.Ledger.MonthSummary(ds.Ctx, uc.ConversationID, ds.now())
		if err != nil {
			return reply(replyError, locale)
		}
		return replyf(replyReportDetail, locale, formatBreakdown(breakdown), month.Net())
	}
	return reply(replyReportDeclined, locale)
}

func (ds *DialogService) handleFallback(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	if ents.Amount != nil {
		return replyf(replyAmountAmbiguous, locale, *ents.Amount, *ents.Amount, *ents.Amount)
	}
	return reply(replyUnknown, locale)
}

func (ds *DialogService) handleUnknown(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string {
	return reply(replyUnknown, locale)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
