package quiz

import (
	"github.com/dayoumin/mbti-sub003/internal/matching"
)

// DimensionKeys returns the dimension keys in declaration order.
func (q *Quiz) DimensionKeys() []string {
	keys := make([]string, len(q.Dimensions))
	for i, d := range q.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// Dimension looks up a dimension by key.
func (q *Quiz) Dimension(key string) (Dimension, bool) {
	for _, d := range q.Dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return Dimension{}, false
}

// QuestionCounts returns the number of questions per dimension.
func (q *Quiz) QuestionCounts() map[string]int {
	counts := make(map[string]int, len(q.Dimensions))
	for _, qu := range q.Questions {
		counts[qu.Dimension]++
	}
	return counts
}

// Config returns the quiz thresholds: the defaults with any Scoring
// overrides applied.
func (q *Quiz) Config() matching.Config {
	cfg := matching.DefaultConfig()
	if q.Scoring == nil {
		return cfg
	}
	if q.Scoring.HighPercent != 0 {
		cfg.HighPercent = q.Scoring.HighPercent
	}
	if q.Scoring.LowPercent != 0 {
		cfg.LowPercent = q.Scoring.LowPercent
	}
	if q.Scoring.MaxPerQuestion != 0 {
		cfg.MaxPerQuestion = q.Scoring.MaxPerQuestion
	}
	if q.Scoring.DefaultQuestionCount != 0 {
		cfg.DefaultQuestionCount = q.Scoring.DefaultQuestionCount
	}
	return cfg
}

// Engine returns a matching engine configured for this quiz.
func (q *Quiz) Engine() (*matching.Engine, error) {
	return matching.NewEngine(q.Config())
}

// MaxScore returns the largest attainable score for a dimension.
func (q *Quiz) MaxScore(dimension string) int {
	return q.Config().MaxScore(q.QuestionCounts()[dimension])
}

// Candidates converts the results into matching candidates, in order.
func (q *Quiz) Candidates() []matching.ResultLabel {
	out := make([]matching.ResultLabel, len(q.Results))
	for i, r := range q.Results {
		out[i] = matching.ResultLabel{Name: r.Name, Condition: matching.Condition(r.Condition)}
	}
	return out
}

// ResultByName looks up a result by its display name.
func (q *Quiz) ResultByName(name string) (Result, bool) {
	for _, r := range q.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// Question looks up a question by ID.
func (q *Quiz) Question(id string) (Question, bool) {
	for _, qu := range q.Questions {
		if qu.ID == id {
			return qu, true
		}
	}
	return Question{}, false
}

// Evaluate runs the matching engine over scores using this quiz's
// dimensions, results, question counts and thresholds.
func (q *Quiz) Evaluate(scores matching.ScoreMap) (matching.Outcome, error) {
	engine, err := q.Engine()
	if err != nil {
		return matching.Outcome{}, err
	}
	return engine.Evaluate(scores, q.DimensionKeys(), q.Candidates(), q.QuestionCounts())
}
