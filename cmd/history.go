package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dayoumin/mbti-sub003/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		quizID, _ := cmd.Flags().GetString("quiz")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().Recent(cmd.Context(), store.QueryOpts{QuizID: quizID, Limit: limit})
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts recorded yet.")
			return nil
		}

		table := newTable(cmd.OutOrStdout(), []string{"#", "When", "Quiz", "Nickname", "Result", "Match"}, 0)
		var rows [][]string
		for _, a := range attempts {
			rows = append(rows, []string{
				strconv.FormatInt(a.Sequence, 10),
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.QuizID,
				a.Nickname,
				a.ResultName,
				a.Phase,
			})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		return table.Render()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 = all)")
	historyCmd.Flags().String("quiz", "", "Only show attempts at this quiz ID")
}
