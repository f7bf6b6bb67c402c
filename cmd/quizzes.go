package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List the builtin quizzes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := newTable(cmd.OutOrStdout(), []string{"ID", "Title", "Dimensions", "Questions", "Results"}, 3, 4)
		var rows [][]string
		for _, q := range quiz.Builtin() {
			rows = append(rows, []string{
				q.ID,
				q.Title,
				strings.Join(q.DimensionKeys(), ", "),
				strconv.Itoa(len(q.Questions)),
				strconv.Itoa(len(q.Results)),
			})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		return table.Render()
	},
}
