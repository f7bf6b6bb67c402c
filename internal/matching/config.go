package matching

import (
	"fmt"
	"strings"
)

// Config holds the classification thresholds and score conventions.
// Percentages are whole numbers in [0, 100].
type Config struct {
	// HighPercent is the inclusive lower bound of the high level.
	HighPercent int
	// LowPercent is the exclusive upper bound of the low level and the
	// inclusive lower bound of the medium level.
	LowPercent int
	// MaxPerQuestion is the largest score a single answer can contribute.
	MaxPerQuestion int
	// DefaultQuestionCount is assumed for dimensions with no known count.
	DefaultQuestionCount int
}

// DefaultConfig returns the standard 60/40 thresholds with five-point answers
// and five questions per dimension.
func DefaultConfig() Config {
	return Config{
		HighPercent:          60,
		LowPercent:           40,
		MaxPerQuestion:       5,
		DefaultQuestionCount: 5,
	}
}

// Validate checks that the thresholds are ordered and the counts positive.
func (c Config) Validate() error {
	var errs []string
	if c.LowPercent <= 0 || c.LowPercent > 100 {
		errs = append(errs, fmt.Sprintf("LowPercent must be in (0, 100], got %d", c.LowPercent))
	}
	if c.HighPercent <= 0 || c.HighPercent > 100 {
		errs = append(errs, fmt.Sprintf("HighPercent must be in (0, 100], got %d", c.HighPercent))
	}
	if c.LowPercent > c.HighPercent {
		errs = append(errs, fmt.Sprintf("LowPercent (%d) must not exceed HighPercent (%d)", c.LowPercent, c.HighPercent))
	}
	if c.MaxPerQuestion <= 0 {
		errs = append(errs, fmt.Sprintf("MaxPerQuestion must be > 0, got %d", c.MaxPerQuestion))
	}
	if c.DefaultQuestionCount <= 0 {
		errs = append(errs, fmt.Sprintf("DefaultQuestionCount must be > 0, got %d", c.DefaultQuestionCount))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid scoring config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// MaxScore returns the largest attainable score for a dimension with
// questionCount questions. Non-positive counts fall back to
// DefaultQuestionCount.
func (c Config) MaxScore(questionCount int) int {
	if questionCount <= 0 {
		questionCount = c.DefaultQuestionCount
	}
	return questionCount * c.MaxPerQuestion
}

// Classify maps a raw score to a level relative to maxScore.
//
// The comparison is done on integers (score*100 against threshold*maxScore)
// so a score sitting exactly on 40% or 60% lands on the closed lower bound
// of medium or high. Scores are not clamped: an out-of-range score is
// classified by the percentage it produces. A non-positive maxScore
// classifies as low.
func (c Config) Classify(score, maxScore int) Level {
	if maxScore <= 0 {
		return LevelLow
	}
	scaled := int64(score) * 100
	switch {
	case scaled >= int64(c.HighPercent)*int64(maxScore):
		return LevelHigh
	case scaled < int64(c.LowPercent)*int64(maxScore):
		return LevelLow
	default:
		return LevelMedium
	}
}

// Classify classifies with DefaultConfig thresholds.
func Classify(score, maxScore int) Level {
	return DefaultConfig().Classify(score, maxScore)
}

// Percentage returns score as a percentage of maxScore, for display.
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
