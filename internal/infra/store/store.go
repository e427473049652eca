package store

import (
	"context"
	"time"
)

// TxnType is the ledger direction of one logged transaction.
type TxnType string

const (
	TxnIncome  TxnType = "income"
	TxnExpense TxnType = "expense"
)

// Transaction is one logged income or expense event.
type Transaction struct {
	ID             string
	ConversationID string
	Type           TxnType
	Amount         int
	Category       string
	Description    string
	CreatedAt      time.Time
}

// Summary totals both directions over some window.
type Summary struct {
	Income  int
	Expense int
}

// Net is what was kept: income minus expense.
func (s Summary) Net() int {
	return s.Income - s.Expense
}

// Store is the transaction ledger. Day and month windows are resolved in
// the store's configured location, not UTC.
type Store interface {
	Insert(ctx context.Context, txn Transaction) (Transaction, error)
	DaySummary(ctx context.Context, conversationID string, day time.Time) (Summary, error)
	MonthSummary(ctx context.Context, conversationID string, month time.Time) (Summary, error)
	CategoryBreakdown(ctx context.Context, conversationID string, since time.Time) (map[string]int, error)
	SavedSince(ctx context.Context, conversationID string, since time.Time) (int, error)
	Close() error
}
