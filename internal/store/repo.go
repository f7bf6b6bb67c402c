package store

import (
	"context"
	"time"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	QuizID string    // only attempts at this quiz ("" = all)
	Limit  int       // max results (0 = unlimited)
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// AttemptRecord is one completed quiz attempt as persisted.
type AttemptRecord struct {
	ID         string
	Sequence   int64
	QuizID     string
	Nickname   string
	ResultName string
	Phase      string
	Satisfied  int
	Scores     map[string]int
	Levels     map[string]string
	Duration   time.Duration
	CreatedAt  time.Time
}

// ResultCount is how often one result was selected.
type ResultCount struct {
	ResultName string
	Count      int
	Share      float64 // Count / total attempts in the query, 0-1
}

// AttemptRepo persists completed attempts.
type AttemptRepo interface {
	// Save stores a new attempt. Empty ID and zero CreatedAt are filled in;
	// Sequence is always assigned by the store.
	Save(ctx context.Context, rec *AttemptRecord) error

	// Recent returns attempts newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// Distribution returns how often each result was selected, most
	// frequent first, ties by name.
	Distribution(ctx context.Context, opts QueryOpts) ([]ResultCount, error)

	// Delete removes matching attempts (Limit is ignored) and returns how
	// many were removed. Sequence numbers are never reused.
	Delete(ctx context.Context, opts QueryOpts) (int64, error)
}
