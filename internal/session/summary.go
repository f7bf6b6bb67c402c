package session

import (
	"time"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/store"
)

// DimensionResult is one dimension's score and level in a summary.
type DimensionResult struct {
	Key      string
	Name     string
	Emoji    string
	Score    int
	MaxScore int
	Percent  float64
	Level    matching.Level
}

// Summary holds the data displayed on the result screen and persisted.
type Summary struct {
	QuizID     string
	QuizTitle  string
	Nickname   string
	Result     quiz.Result
	Outcome    matching.Outcome
	Scores     matching.ScoreMap
	Dimensions []DimensionResult
	Answered   int
	Total      int
	Duration   time.Duration
	FinishedAt time.Time
}

// BuildSummary assembles a Summary for a scored attempt.
func BuildSummary(a *Attempt, scores matching.ScoreMap, outcome matching.Outcome, finished time.Time) *Summary {
	q := a.Quiz
	counts := q.QuestionCounts()
	cfg := q.Config()

	dims := make([]DimensionResult, 0, len(q.Dimensions))
	for _, d := range q.Dimensions {
		max := cfg.MaxScore(counts[d.Key])
		name := d.Name
		if name == "" {
			name = d.Key
		}
		dims = append(dims, DimensionResult{
			Key:      d.Key,
			Name:     name,
			Emoji:    d.Emoji,
			Score:    scores[d.Key],
			MaxScore: max,
			Percent:  matching.Percentage(scores[d.Key], max),
			Level:    outcome.Levels[d.Key],
		})
	}

	var result quiz.Result
	if outcome.Index >= 0 && outcome.Index < len(q.Results) {
		result = q.Results[outcome.Index]
	}

	return &Summary{
		QuizID:     q.ID,
		QuizTitle:  q.Title,
		Nickname:   a.Nickname,
		Result:     result,
		Outcome:    outcome,
		Scores:     scores,
		Dimensions: dims,
		Answered:   a.Answered(),
		Total:      a.Total(),
		Duration:   finished.Sub(a.StartTime),
		FinishedAt: finished,
	}
}

// Record converts the summary into a storable attempt record.
func (s *Summary) Record() *store.AttemptRecord {
	levels := make(map[string]string, len(s.Outcome.Levels))
	for dim, l := range s.Outcome.Levels {
		levels[dim] = l.String()
	}
	scores := make(map[string]int, len(s.Scores))
	for dim, v := range s.Scores {
		scores[dim] = v
	}
	return &store.AttemptRecord{
		QuizID:     s.QuizID,
		Nickname:   s.Nickname,
		ResultName: s.Outcome.Result.Name,
		Phase:      string(s.Outcome.Phase),
		Satisfied:  s.Outcome.Satisfied,
		Scores:     scores,
		Levels:     levels,
		Duration:   s.Duration,
		CreatedAt:  s.FinishedAt.UTC(),
	}
}
