package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func insert(t *testing.T, s *SQLiteStore, id string, txnType TxnType, amount int, category string, at time.Time) {
	t.Helper()
	_, err := s.Insert(context.Background(), Transaction{
		ConversationID: id,
		Type:           txnType,
		Amount:         amount,
		Category:       category,
		CreatedAt:      at,
	})
	require.NoError(t, err)
}

func TestSQLiteInsertAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	txn, err := s.Insert(context.Background(), Transaction{
		ConversationID: "user1",
		Type:           TxnExpense,
		Amount:         200,
		Category:       "food",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())
}

func TestSQLiteDaySummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	insert(t, s, "user1", TxnExpense, 200, "food", day)
	insert(t, s, "user1", TxnIncome, 500, "gig", day.Add(2*time.Hour))
	insert(t, s, "user1", TxnExpense, 100, "transport", day.AddDate(0, 0, -1))
	insert(t, s, "user2", TxnExpense, 999, "food", day)

	summary, err := s.DaySummary(ctx, "user1", day)
	require.NoError(t, err)
	assert.Equal(t, 500, summary.Income)
	assert.Equal(t, 200, summary.Expense)
	assert.Equal(t, 300, summary.Net())
}

func TestSQLiteMonthSummary(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insert(t, s, "user1", TxnIncome, 30000, "salary", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	insert(t, s, "user1", TxnExpense, 5000, "bills", time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC))
	insert(t, s, "user1", TxnExpense, 700, "food", time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC))

	summary, err := s.MonthSummary(ctx, "user1", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 30000, summary.Income)
	assert.Equal(t, 5000, summary.Expense)
}

func TestSQLiteCategoryBreakdown(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	insert(t, s, "user1", TxnExpense, 200, "food", day)
	insert(t, s, "user1", TxnExpense, 150, "food", day.Add(time.Hour))
	insert(t, s, "user1", TxnExpense, 80, "transport", day)
	insert(t, s, "user1", TxnIncome, 500, "gig", day)

	breakdown, err := s.CategoryBreakdown(ctx, "user1", day.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"food": 350, "transport": 80}, breakdown)
}

func TestSQLiteSavedSince(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	insert(t, s, "user1", TxnIncome, 30000, "salary", start.AddDate(0, 0, 2))
	insert(t, s, "user1", TxnExpense, 5000, "bills", start.AddDate(0, 0, 3))
	insert(t, s, "user1", TxnExpense, 1000, "food", start.AddDate(0, 0, -2))

	saved, err := s.SavedSince(ctx, "user1", start)
	require.NoError(t, err)
	assert.Equal(t, 25000, saved)
}
