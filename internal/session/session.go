package session

import (
	"fmt"
	"log/slog"
	"time"
)

// Finish scores a complete attempt and selects its result.
func (a *Attempt) Finish() (*Summary, error) {
	if !a.Complete() {
		return nil, fmt.Errorf("%w (%d of %d)", ErrIncomplete, a.Answered(), a.Total())
	}
	return a.FinishPartial()
}

// FinishPartial scores the attempt as it stands, treating unanswered
// questions as contributing nothing.
func (a *Attempt) FinishPartial() (*Summary, error) {
	scores := a.Scores()
	outcome, err := a.Quiz.Evaluate(scores)
	if err != nil {
		return nil, fmt.Errorf("evaluate quiz %q: %w", a.Quiz.ID, err)
	}

	finished := time.Now()
	sum := BuildSummary(a, scores, outcome, finished)

	slog.Debug("Attempt scored",
		"quiz", a.Quiz.ID,
		"result", outcome.Result.Name,
		"phase", outcome.Phase,
		"satisfied", outcome.Satisfied,
		"answered", a.Answered(),
		"total", a.Total(),
	)
	return sum, nil
}
