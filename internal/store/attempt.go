package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo over database/sql.
type attemptRepo struct {
	db *sql.DB
}

var _ AttemptRepo = (*attemptRepo)(nil)

func (r *attemptRepo) Save(ctx context.Context, rec *AttemptRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	levels, err := json.Marshal(rec.Levels)
	if err != nil {
		return fmt.Errorf("marshal levels: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO attempts
		(id, sequence, quiz_id, nickname, result_name, phase, satisfied, scores, levels, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, seq, rec.QuizID, rec.Nickname, rec.ResultName, rec.Phase, rec.Satisfied,
		string(scores), string(levels), rec.Duration.Milliseconds(), rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attempt: %w", err)
	}
	rec.Sequence = seq
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	where, args := opts.where()
	query := `SELECT id, sequence, quiz_id, nickname, result_name, phase, satisfied, scores, levels, duration_ms, created_at
		FROM attempts` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var (
			rec            AttemptRecord
			scores, levels string
			durMs, created int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.QuizID, &rec.Nickname, &rec.ResultName,
			&rec.Phase, &rec.Satisfied, &scores, &levels, &durMs, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
			return nil, fmt.Errorf("attempt %s: decode scores: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(levels), &rec.Levels); err != nil {
			return nil, fmt.Errorf("attempt %s: decode levels: %w", rec.ID, err)
		}
		rec.Duration = time.Duration(durMs) * time.Millisecond
		rec.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Distribution(ctx context.Context, opts QueryOpts) ([]ResultCount, error) {
	where, args := opts.where()
	query := `SELECT result_name, COUNT(*) AS n FROM attempts` + where +
		` GROUP BY result_name ORDER BY n DESC, result_name ASC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query distribution: %w", err)
	}
	defer rows.Close()

	var (
		out   []ResultCount
		total int
	)
	for rows.Next() {
		var rc ResultCount
		if err := rows.Scan(&rc.ResultName, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		total += rc.Count
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distribution: %w", err)
	}

	if opts.Limit > 0 {
		// Shares are relative to every matching attempt, not just the top rows.
		if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`+where, args...).Scan(&total); err != nil {
			return nil, fmt.Errorf("count attempts: %w", err)
		}
	}
	for i := range out {
		if total > 0 {
			out[i].Share = float64(out[i].Count) / float64(total)
		}
	}
	return out, nil
}

func (r *attemptRepo) Delete(ctx context.Context, opts QueryOpts) (int64, error) {
	where, args := opts.where()
	res, err := r.db.ExecContext(ctx, `DELETE FROM attempts`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete attempts: %w", err)
	}
	return n, nil
}

// where builds the WHERE clause shared by attempt queries.
func (o QueryOpts) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if o.QuizID != "" {
		conds = append(conds, "quiz_id = ?")
		args = append(args, o.QuizID)
	}
	if !o.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, o.To.UnixMilli())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
