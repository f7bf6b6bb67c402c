package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Select a result for precomputed dimension scores",
	Long: `Classifies the given per-dimension scores against a quiz and prints the
selected result. Dimensions left out score zero.

  quizmatch score --quiz energy-style --score energy=13 --score social=7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("quiz")
		if ref == "" {
			ref = viper.GetString("quiz")
		}
		if ref == "" {
			return fmt.Errorf("--quiz is required")
		}
		q, err := loadQuiz(ref)
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetStringArray("score")
		scores, err := parseScores(q, raw)
		if err != nil {
			return err
		}

		outcome, err := q.Evaluate(scores)
		if err != nil {
			return err
		}
		slog.Debug("Scored", "quiz", q.ID, "result", outcome.Result.Name, "phase", outcome.Phase)

		report := buildScoreReport(q, scores, outcome)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		return writeScoreReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	scoreCmd.Flags().String("quiz", "", "Builtin quiz ID or path to a quiz YAML file")
	scoreCmd.Flags().StringArray("score", nil, "Dimension score as dim=N (repeatable)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// parseScores turns dim=N pairs into a ScoreMap. Unknown dimensions and
// repeated dimensions are rejected.
func parseScores(q *quiz.Quiz, raw []string) (matching.ScoreMap, error) {
	scores := make(matching.ScoreMap, len(q.Dimensions))
	for _, d := range q.Dimensions {
		scores[d.Key] = 0
	}
	seen := make(map[string]bool, len(raw))
	for _, pair := range raw {
		dim, val, ok := strings.Cut(pair, "=")
		dim = strings.TrimSpace(dim)
		if !ok || dim == "" {
			return nil, fmt.Errorf("invalid --score %q: want dim=N", pair)
		}
		if _, known := q.Dimension(dim); !known {
			return nil, fmt.Errorf("invalid --score %q: quiz %q has no dimension %q (have %s)",
				pair, q.ID, dim, strings.Join(q.DimensionKeys(), ", "))
		}
		if seen[dim] {
			return nil, fmt.Errorf("invalid --score %q: dimension %q given more than once", pair, dim)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("invalid --score %q: %w", pair, err)
		}
		seen[dim] = true
		scores[dim] = n
	}
	return scores, nil
}

// scoreReport is the printable outcome of a score run.
type scoreReport struct {
	Quiz        string           `json:"quiz"`
	Result      string           `json:"result"`
	Emoji       string           `json:"emoji,omitempty"`
	Description string           `json:"description,omitempty"`
	Phase       matching.Phase   `json:"phase"`
	Satisfied   int              `json:"satisfied"`
	Dimensions  []dimensionScore `json:"dimensions"`
}

type dimensionScore struct {
	Key     string         `json:"key"`
	Score   int            `json:"score"`
	Max     int            `json:"max"`
	Percent float64        `json:"percent"`
	Level   matching.Level `json:"level"`
}

func buildScoreReport(q *quiz.Quiz, scores matching.ScoreMap, o matching.Outcome) scoreReport {
	r := scoreReport{
		Quiz:      q.ID,
		Result:    o.Result.Name,
		Phase:     o.Phase,
		Satisfied: o.Satisfied,
	}
	if res, ok := q.ResultByName(o.Result.Name); ok {
		r.Emoji = res.Emoji
		r.Description = res.Description
	}
	for _, key := range q.DimensionKeys() {
		max := q.MaxScore(key)
		r.Dimensions = append(r.Dimensions, dimensionScore{
			Key:     key,
			Score:   scores[key],
			Max:     max,
			Percent: matching.Percentage(scores[key], max),
			Level:   o.Levels[key],
		})
	}
	return r
}

func writeScoreReport(w io.Writer, r scoreReport) error {
	table := newTable(w, []string{"Dimension", "Score", "Max", "Percent", "Level"}, 1, 2, 3)
	var rows [][]string
	for _, d := range r.Dimensions {
		rows = append(rows, []string{
			d.Key,
			strconv.Itoa(d.Score),
			strconv.Itoa(d.Max),
			fmt.Sprintf("%.1f%%", d.Percent),
			colorLevel(d.Level),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	name := strings.TrimSpace(r.Emoji + " " + r.Result)
	if _, err := fmt.Fprintf(w, "\nResult: %s (%s)\n", okColor.Sprint(name), phaseNote(r)); err != nil {
		return err
	}
	if r.Description != "" {
		if _, err := fmt.Fprintln(w, r.Description); err != nil {
			return err
		}
	}
	return nil
}

func phaseNote(r scoreReport) string {
	if r.Phase == matching.PhasePartial {
		return fmt.Sprintf("%s, %d matched", r.Phase.DisplayName(), r.Satisfied)
	}
	return r.Phase.DisplayName()
}
