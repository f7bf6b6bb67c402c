package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dayoumin/mbti-sub003/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each result has been selected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quizID, _ := cmd.Flags().GetString("quiz")

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		dist, err := st.AttemptRepo().Distribution(cmd.Context(), store.QueryOpts{QuizID: quizID})
		if err != nil {
			return err
		}
		if len(dist) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts recorded yet.")
			return nil
		}

		total := 0
		table := newTable(cmd.OutOrStdout(), []string{"Result", "Count", "Share"}, 1, 2)
		var rows [][]string
		for _, rc := range dist {
			total += rc.Count
			rows = append(rows, []string{
				rc.ResultName,
				strconv.Itoa(rc.Count),
				fmt.Sprintf("%.1f%%", rc.Share*100),
			})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d attempts\n", total)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("quiz", "", "Only count attempts at this quiz ID")
}
