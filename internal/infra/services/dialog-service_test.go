package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vittasaathi/internal/domain/entities"
	"vittasaathi/internal/domain/interfaces/repository"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
	"vittasaathi/internal/infra/nlp"
	"vittasaathi/internal/infra/onboarding"
	"vittasaathi/internal/infra/store"
)

type memSessions struct {
	data    map[string]entities.UserContext
	findErr error
	creates int
}

func newMemSessions() *memSessions {
	return &memSessions{data: map[string]entities.UserContext{}}
}

func (m *memSessions) Create(input entities.UserContext) error {
	m.creates++
	m.data[input.ConversationID] = input
	return nil
}

func (m *memSessions) FindContext(conversationID string) (entities.UserContext, error) {
	if m.findErr != nil {
		return entities.UserContext{}, m.findErr
	}
	uc, ok := m.data[conversationID]
	if !ok {
		return entities.UserContext{}, repository.ErrNotFound
	}
	return uc, nil
}

func (m *memSessions) UpdateUserContext(conversationID string, entity entities.UserContext) (entities.UserContext, error) {
	m.data[conversationID] = entity
	return entity, nil
}

type fakeLedger struct {
	txns []store.Transaction
}

func (f *fakeLedger) Insert(ctx context.Context, txn store.Transaction) (store.Transaction, error) {
	f.txns = append(f.txns, txn)
	return txn, nil
}

func (f *fakeLedger) sum(conversationID string) store.Summary {
	var s store.Summary
	for _, txn := range f.txns {
		if txn.ConversationID != conversationID {
			continue
		}
		if txn.Type == store.TxnIncome {
			s.Income += txn.Amount
		} else {
			s.Expense += txn.Amount
		}
	}
	return s
}

func (f *fakeLedger) DaySummary(ctx context.Context, conversationID string, day time.Time) (store.Summary, error) {
	return f.sum(conversationID), nil
}

func (f *fakeLedger) MonthSummary(ctx context.Context, conversationID string, month time.Time) (store.Summary, error) {
	return f.sum(conversationID), nil
}

func (f *fakeLedger) CategoryBreakdown(ctx context.Context, conversationID string, since time.Time) (map[string]int, error) {
	breakdown := map[string]int{}
	for _, txn := range f.txns {
		if txn.ConversationID == conversationID && txn.Type == store.TxnExpense {
			breakdown[txn.Category] += txn.Amount
		}
	}
	return breakdown, nil
}

func (f *fakeLedger) SavedSince(ctx context.Context, conversationID string, since time.Time) (int, error) {
	return f.sum(conversationID).Net(), nil
}

func (f *fakeLedger) Close() error { return nil }

func newTestDialog(t *testing.T) (*DialogService, *fakeLedger) {
	t.Helper()
	ctx := context.Background()
	log := logger.NewLogger(ctx, false)
	m := metrics.New(prometheus.NewRegistry())
	ledger := &fakeLedger{}
	machine := onboarding.NewMachine(200)
	classifier := nlp.NewClassifier(nil)
	ds := NewDialogService(ctx, log, newMemSessions(), ledger, classifier, machine, m)
	return ds, ledger
}

func onboard(t *testing.T, ds *DialogService, id string) {
	t.Helper()
	for _, answer := range []string{"start", "1", "Ravi", "delivery", "30000", "bike", "1 lakh", "10 months"} {
		_, err := ds.HandleInbound(id, answer)
		require.NoError(t, err)
	}
}

func TestDialogNewUserStartsOnboarding(t *testing.T) {
	ds, _ := newTestDialog(t)

	reply, err := ds.HandleInbound("911234567890", "hi")
	require.NoError(t, err)
	assert.Contains(t, reply, "Choose your language")
}

func TestDialogOnboardingGateBlocksClassification(t *testing.T) {
	ds, ledger := newTestDialog(t)
	id := "911234567890"

	_, err := ds.HandleInbound(id, "hello")
	require.NoError(t, err)
	_, err = ds.HandleInbound(id, "1")
	require.NoError(t, err)

	// Mid-onboarding transaction text is consumed as the name answer, not
	// logged to the ledger.
	reply, err := ds.HandleInbound(id, "spent 200 on tea")
	require.NoError(t, err)
	assert.Empty(t, ledger.txns)
	assert.Contains(t, reply, "work")
}

func TestDialogExpenseFlow(t *testing.T) {
	ds, ledger := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	reply, err := ds.HandleInbound(id, "spent 200 on tea")
	require.NoError(t, err)
	require.Len(t, ledger.txns, 1)
	assert.Equal(t, store.TxnExpense, ledger.txns[0].Type)
	assert.Equal(t, 200, ledger.txns[0].Amount)
	assert.Equal(t, "food", ledger.txns[0].Category)

	// Daily budget is 667 after onboarding, so 467 remains.
	assert.Contains(t, reply, "₹200")
	assert.Contains(t, reply, "₹467")
}

func TestDialogCombinedIncomeExpenseTurn(t *testing.T) {
	ds, ledger := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	reply, err := ds.HandleInbound(id, "earned 500 and spent 200 on tea")
	require.NoError(t, err)
	require.Len(t, ledger.txns, 2)
	assert.Equal(t, store.TxnIncome, ledger.txns[0].Type)
	assert.Equal(t, 500, ledger.txns[0].Amount)
	assert.Equal(t, store.TxnExpense, ledger.txns[1].Type)
	assert.Equal(t, 200, ledger.txns[1].Amount)
	assert.Contains(t, reply, "₹300")
}

func TestDialogMultipleExpensesInOneTurn(t *testing.T) {
	ds, ledger := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "spent 100 on tea and 50 on bus")
	require.NoError(t, err)
	require.Len(t, ledger.txns, 2)
	assert.Equal(t, 100, ledger.txns[0].Amount)
	assert.Equal(t, "food", ledger.txns[0].Category)
	assert.Equal(t, 50, ledger.txns[1].Amount)
	assert.Equal(t, "transport", ledger.txns[1].Category)
}

func TestDialogReportConfirmationFlow(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "spent 200 on tea")
	require.NoError(t, err)

	reply, err := ds.HandleInbound(id, "report")
	require.NoError(t, err)
	assert.Contains(t, reply, "yes/no")

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.True(t, uc.Session.AwaitingConfirmation)

	reply, err = ds.HandleInbound(id, "yes")
	require.NoError(t, err)
	assert.Contains(t, reply, "food")

	uc, err = ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.False(t, uc.Session.AwaitingConfirmation)
}

func TestDialogConfirmationDeclined(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "report")
	require.NoError(t, err)

	reply, err := ds.HandleInbound(id, "no")
	require.NoError(t, err)
	assert.Contains(t, reply, "No problem")
}

func TestDialogGoalProgress(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "earned 30000 salary")
	require.NoError(t, err)
	_, err = ds.HandleInbound(id, "spent 5000 on rent")
	require.NoError(t, err)

	reply, err := ds.HandleInbound(id, "goal progress")
	require.NoError(t, err)
	// Saved 25000 of 100000.
	assert.Contains(t, reply, "25%")
	assert.Contains(t, reply, "bike")
}

func TestDialogLanguageChange(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	reply, err := ds.HandleInbound(id, "language")
	require.NoError(t, err)
	assert.Contains(t, reply, "हिंदी")

	_, err = ds.HandleInbound(id, "2")
	require.NoError(t, err)

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.Equal(t, entities.LocaleHindi, uc.Session.Locale)
}

func TestDialogLanguageChangeInvalidChoiceKeepsLocale(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "language")
	require.NoError(t, err)
	reply, err := ds.HandleInbound(id, "klingon")
	require.NoError(t, err)
	assert.Contains(t, reply, "current language")

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.Equal(t, entities.LocaleEnglish, uc.Session.Locale)
	assert.False(t, uc.Session.AwaitingLocale)
}

func TestDialogRestartAfterCompletion(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	reply, err := ds.HandleInbound(id, "restart")
	require.NoError(t, err)
	assert.Contains(t, reply, "Choose your language")

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.False(t, uc.Onboarding.Completed)
	assert.Empty(t, uc.Onboarding.Profile.DisplayName)
}

func TestDialogOtpRequest(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	reply, err := ds.HandleInbound(id, "send otp")
	require.NoError(t, err)
	assert.Contains(t, reply, "verification code")

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.Len(t, uc.Session.OTP, 6)
	assert.True(t, uc.Session.OTPExpiry.After(time.Now()))
}

func TestDialogSessionStateAcrossTurns(t *testing.T) {
	ds, _ := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "spent 200 on tea")
	require.NoError(t, err)

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.Equal(t, entities.IntentLogExpense, uc.Session.LastIntent)
	require.NotNil(t, uc.Session.LastEntities.Amount)
	assert.Equal(t, 200, *uc.Session.LastEntities.Amount)
}

func TestDialogStoreFailureDoesNotRestartOnboarding(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger(ctx, false)
	m := metrics.New(prometheus.NewRegistry())
	sessions := newMemSessions()
	ledger := &fakeLedger{}
	ds := NewDialogService(ctx, log, sessions, ledger, nlp.NewClassifier(nil), onboarding.NewMachine(200), m)
	id := "911234567890"
	onboard(t, ds, id)
	require.Equal(t, 1, sessions.creates)

	// A transient lookup failure surfaces as an error instead of being
	// mistaken for a brand new user.
	sessions.findErr = errors.New("connection reset by peer")
	_, err := ds.HandleInbound(id, "spent 200 on tea")
	require.Error(t, err)
	assert.Equal(t, 1, sessions.creates)
	assert.Empty(t, ledger.txns)

	sessions.findErr = nil
	_, err = ds.HandleInbound(id, "spent 200 on tea")
	require.NoError(t, err)
	assert.Len(t, ledger.txns, 1)

	uc, err := ds.UserContextService.FindContext(id)
	require.NoError(t, err)
	assert.True(t, uc.Onboarding.Completed)
}

func TestExpenseLegsSplitOnlyOnMultipleAmounts(t *testing.T) {
	amount := 100
	single := entities.Entities{Amount: &amount, Category: "food"}

	legs := expenseLegs("spent 100 on tea and snacks", single)
	require.Len(t, legs, 1)
	assert.Equal(t, expenseLeg{100, "food"}, legs[0])

	legs = expenseLegs("2k on chai and 500 on auto", single)
	require.Len(t, legs, 2)
	assert.Equal(t, expenseLeg{2000, "food"}, legs[0])
	assert.Equal(t, expenseLeg{500, "transport"}, legs[1])
}

func TestDialogSingleAmountWithConjunctionLogsOneExpense(t *testing.T) {
	ds, ledger := newTestDialog(t)
	id := "911234567890"
	onboard(t, ds, id)

	_, err := ds.HandleInbound(id, "spent 100 on tea and snacks")
	require.NoError(t, err)
	require.Len(t, ledger.txns, 1)
	assert.Equal(t, 100, ledger.txns[0].Amount)
}
