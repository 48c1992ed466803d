package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id    TEXT PRIMARY KEY,
    coins      INTEGER NOT NULL DEFAULT 0,
    streak     INTEGER NOT NULL DEFAULT 0,
    min_score  INTEGER NOT NULL DEFAULT 0,
    completed  INTEGER NOT NULL DEFAULT 0,
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
    id        TEXT PRIMARY KEY,
    user_id   TEXT NOT NULL,
    symbol    TEXT NOT NULL,
    entry     REAL NOT NULL,
    exit      REAL NOT NULL,
    shares    INTEGER NOT NULL,
    profit    REAL NOT NULL,
    closed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_user ON trades(user_id, closed_at);
`

// SQLiteStore implements ports.UserStore on SQLite (pure Go driver, no CGo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at the given path and
// applies the schema. Use ":memory:" in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStore: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStore: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the persisted state for a user, or the zero state for a user
// with no row yet.
func (s *SQLiteStore) Load(ctx context.Context, userID string) (domain.UserState, error) {
	var state domain.UserState
	var completed int

	err := s.db.QueryRowContext(ctx,
		`SELECT coins, streak, min_score, completed FROM users WHERE user_id = ?`,
		userID,
	).Scan(&state.Coins, &state.Challenge.Streak, &state.Challenge.MinScore, &completed)

	if err == sql.ErrNoRows {
		return domain.UserState{}, nil
	}
	if err != nil {
		return domain.UserState{}, fmt.Errorf("storage.Load: %s: %w", userID, err)
	}

	state.Challenge.Completed = completed != 0
	return state, nil
}

// Save upserts the user's wallet and challenge state.
func (s *SQLiteStore) Save(ctx context.Context, userID string, state domain.UserState) error {
	completed := 0
	if state.Challenge.Completed {
		completed = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (user_id, coins, streak, min_score, completed, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			coins      = excluded.coins,
			streak     = excluded.streak,
			min_score  = excluded.min_score,
			completed  = excluded.completed,
			updated_at = excluded.updated_at
	`, userID, state.Coins, state.Challenge.Streak, state.Challenge.MinScore, completed, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storage.Save: %s: %w", userID, err)
	}
	return nil
}

// AppendTrade journals one closed practice trade.
func (s *SQLiteStore) AppendTrade(ctx context.Context, userID, symbol string, trade domain.ClosedTrade) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (id, user_id, symbol, entry, exit, shares, profit, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, userID, symbol, trade.Entry, trade.Exit, trade.Shares, trade.Profit, trade.ClosedAt.UTC())
	if err != nil {
		return fmt.Errorf("storage.AppendTrade: %s: %w", userID, err)
	}
	return nil
}

// Trades returns the user's closed trades, oldest first.
func (s *SQLiteStore) Trades(ctx context.Context, userID string) ([]domain.ClosedTrade, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry, exit, shares, profit, closed_at
		FROM trades WHERE user_id = ? ORDER BY closed_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.Trades: %s: %w", userID, err)
	}
	defer rows.Close()

	var trades []domain.ClosedTrade
	for rows.Next() {
		var t domain.ClosedTrade
		if err := rows.Scan(&t.ID, &t.Entry, &t.Exit, &t.Shares, &t.Profit, &t.ClosedAt); err != nil {
			return nil, fmt.Errorf("storage.Trades: scan: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.Trades: %w", err)
	}
	return trades, nil
}

// Close shuts the database down cleanly.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
