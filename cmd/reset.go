package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayoumin/mbti-sub003/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete recorded attempts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quizID, _ := cmd.Flags().GetString("quiz")
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete attempts without --yes")
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.AttemptRepo().Delete(cmd.Context(), store.QueryOpts{QuizID: quizID})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d attempts.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("quiz", "", "Only delete attempts at this quiz ID")
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
