package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dayoumin/mbti-sub003/internal/app"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play [QUIZ]",
	Short: "Take a quiz in the interactive terminal UI",
	Long: `Opens the quiz picker. Pass a builtin quiz ID or a YAML file path,
either as an argument or with --quiz, to start that quiz right away.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("quiz")
		if len(args) == 1 {
			ref = args[0]
		}
		if ref == "" {
			ref = viper.GetString("quiz")
		}
		return runPlay(cmd, ref)
	},
}

func init() {
	playCmd.Flags().String("quiz", "", "Builtin quiz ID or path to a quiz YAML file")
}

// runPlay launches the TUI. A store that fails to open only disables
// saving; the quiz can still be taken.
func runPlay(cmd *cobra.Command, ref string) error {
	quizzes := quiz.Builtin()

	opts := app.Options{Quizzes: quizzes}
	if ref != "" {
		q, err := loadQuiz(ref)
		if err != nil {
			return err
		}
		opts.Quizzes = withQuiz(quizzes, q)
		opts.Start = q
	}

	st, err := openStore()
	if err != nil {
		slog.Warn("Attempt history disabled", "error", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Results will not be saved:", err)
	} else {
		defer st.Close()
		opts.Attempts = st.AttemptRepo()
	}

	return app.Run(opts)
}

// withQuiz returns list with q in place of any quiz sharing its ID, or
// with q prepended when none does. list is not modified.
func withQuiz(list []*quiz.Quiz, q *quiz.Quiz) []*quiz.Quiz {
	out := make([]*quiz.Quiz, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == q.ID {
			out = append(out, q)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append([]*quiz.Quiz{q}, out...)
	}
	return out
}
