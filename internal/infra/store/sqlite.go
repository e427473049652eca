package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	loc *time.Location
}

// NewSQLite creates a new SQLite-backed ledger. Day and month boundaries
// are computed in loc, which should be the user-facing timezone.
func NewSQLite(dbPath string, loc *time.Location) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db, loc: loc}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_txn_conversation_time ON transactions(conversation_id, created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Insert persists one transaction, assigning its ID and timestamp when
// they are unset.
func (s *SQLiteStore) Insert(ctx context.Context, txn Transaction) (Transaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now().In(s.loc)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, conversation_id, type, amount, category, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.ConversationID, string(txn.Type), txn.Amount, txn.Category, txn.Description, txn.CreatedAt.Unix())
	if err != nil {
		return Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return txn, nil
}

func (s *SQLiteStore) summaryBetween(ctx context.Context, conversationID string, from, to time.Time) (Summary, error) {
	var summary Summary
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE conversation_id = ? AND created_at >= ? AND created_at < ?`,
		conversationID, from.Unix(), to.Unix()).Scan(&summary.Income, &summary.Expense)
	if err != nil {
		return Summary{}, fmt.Errorf("summary query: %w", err)
	}
	return summary, nil
}

// DaySummary totals the calendar day containing day.
func (s *SQLiteStore) DaySummary(ctx context.Context, conversationID string, day time.Time) (Summary, error) {
	local := day.In(s.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return s.summaryBetween(ctx, conversationID, from, from.AddDate(0, 0, 1))
}

// MonthSummary totals the calendar month containing month.
func (s *SQLiteStore) MonthSummary(ctx context.Context, conversationID string, month time.Time) (Summary, error) {
	local := month.In(s.loc)
	from := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.loc)
	return s.summaryBetween(ctx, conversationID, from, from.AddDate(0, 1, 0))
}

// CategoryBreakdown sums expenses per category since the cutoff.
func (s *SQLiteStore) CategoryBreakdown(ctx context.Context, conversationID string, since time.Time) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, SUM(amount)
		 FROM transactions
		 WHERE conversation_id = ? AND type = 'expense' AND created_at >= ?
		 GROUP BY category`,
		conversationID, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("category breakdown query: %w", err)
	}
	defer rows.Close()

	breakdown := map[string]int{}
	for rows.Next() {
		var category string
		var total int
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		breakdown[category] = total
	}
	return breakdown, rows.Err()
}

// SavedSince returns net savings (income minus expense) since the cutoff.
func (s *SQLiteStore) SavedSince(ctx context.Context, conversationID string, since time.Time) (int, error) {
	summary, err := s.summaryBetween(ctx, conversationID, since, time.Now().In(s.loc).AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return summary.Net(), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
