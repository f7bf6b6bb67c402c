package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/viper"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

// Level colors for console output.
var (
	highColor   = color.New(color.FgMagenta, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgCyan)

	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// colorLevel renders a level name in its console color.
func colorLevel(l matching.Level) string {
	switch l {
	case matching.LevelHigh:
		return highColor.Sprint(l.String())
	case matching.LevelMedium:
		return mediumColor.Sprint(l.String())
	case matching.LevelLow:
		return lowColor.Sprint(l.String())
	}
	return l.String()
}

// newTable returns a table writer with numeric columns right-aligned.
func newTable(w io.Writer, headers []string, numeric ...int) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	if len(numeric) > 0 {
		align := make([]tw.Align, len(headers))
		for i := range align {
			align[i] = tw.AlignLeft
		}
		for _, col := range numeric {
			if col >= 0 && col < len(align) {
				align[col] = tw.AlignRight
			}
		}
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.PerColumn = align
		})
	}
	return table
}

// loadQuiz resolves a builtin ID or file path and applies any threshold
// overrides from flags, environment or config file.
func loadQuiz(ref string) (*quiz.Quiz, error) {
	q, err := quiz.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return withThresholds(q, viper.GetInt("high-percent"), viper.GetInt("low-percent"))
}

// withThresholds returns q unchanged when both overrides are zero,
// otherwise a copy whose scoring uses the given percentages. The combined
// thresholds must still be valid.
func withThresholds(q *quiz.Quiz, high, low int) (*quiz.Quiz, error) {
	if high == 0 && low == 0 {
		return q, nil
	}
	cp := *q
	scoring := quiz.Scoring{}
	if q.Scoring != nil {
		scoring = *q.Scoring
	}
	if high != 0 {
		scoring.HighPercent = high
	}
	if low != 0 {
		scoring.LowPercent = low
	}
	cp.Scoring = &scoring
	if err := cp.Config().Validate(); err != nil {
		return nil, fmt.Errorf("threshold override: %w", err)
	}
	return &cp, nil
}
