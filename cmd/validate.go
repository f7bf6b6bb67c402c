package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate PATH...",
	Short: "Check quiz YAML files against the schema and content rules",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := quiz.LintFiles(cmd.Context(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, r := range reports {
			if r.OK() {
				fmt.Fprintf(out, "%s %s\n", okColor.Sprint("ok  "), r.Source)
			} else {
				failed++
				fmt.Fprintf(out, "%s %s\n", failColor.Sprint("FAIL"), r.Source)
			}
			for _, e := range r.Errors {
				fmt.Fprintf(out, "       %s\n", e)
			}
			for _, w := range r.Warnings {
				fmt.Fprintf(out, "       %s %s\n", warnColor.Sprint("warning:"), w)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d quiz files failed validation", failed, len(reports))
		}
		return nil
	},
}
