package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Attempts are numbered from a single-row counter table rather than by
// rowid so numbering survives deletes and stays gap-free per insert. The
// counter is advanced inside the inserting transaction, which keeps the
// increment and the insert atomic together.

// ensureSequence creates and seeds the counter table.
func ensureSequence(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS attempt_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`); err != nil {
		return fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO attempt_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

// nextSequence returns the next attempt number and advances the counter.
func nextSequence(ctx context.Context, tx *sql.Tx) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx,
		`UPDATE attempt_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
