package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dayoumin/mbti-sub003/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizmatch",
	Short: "Personality quiz engine",
	Long: `quizmatch runs dimension-scored personality quizzes in the terminal.

Answers are summed per dimension, each dimension is classified as low,
medium or high, and the first result whose condition matches is shown.
When nothing matches exactly, the closest result wins.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, viper.GetString("quiz"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZMATCH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default .quizmatch.yaml in . or $HOME)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("high-percent", 0, "Override the high threshold percentage (0 = quiz default)")
	rootCmd.PersistentFlags().Int("low-percent", 0, "Override the low threshold percentage (0 = quiz default)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("bind root flags: %v", err))
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig merges the optional config file and QUIZMATCH_* environment
// variables under the bound flags, then applies the log level.
func initConfig(cmd *cobra.Command, _ []string) error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".quizmatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("QUIZMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if viper.GetBool("debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("Loaded config", "file", used)
	}
	return nil
}

// resolveDBPath returns the database path using --db / config (highest
// priority), then QUIZMATCH_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the attempt database at the resolved path.
func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("Opened attempt store", "path", dbPath)
	return st, nil
}
