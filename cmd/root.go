package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/config"
	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "solveuxq",
	Short: "AI-generated UX quizzes in your terminal",
	Long:  "Solveuxq — practice UI/UX design, product thinking, and user research with AI-generated quizzes and study material.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return quiz.ValidateCatalog(quiz.Categories)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOLVEUXQ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/solveuxq/config.yaml)")
	rootCmd.PersistentFlags().String("user", "", "User ID for stats and quotas (overrides SOLVEUXQ_USER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then SOLVEUXQ_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// logLevel reads SOLVEUXQ_LOG_LEVEL, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("SOLVEUXQ_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// llmSelection carries the config file's provider/model choice into the
// provider factory. Env vars still override inside the factory.
func llmSelection(cfg config.Config) llm.Selection {
	return llm.Selection{Provider: cfg.LLM.Provider, Model: cfg.LLM.Model}
}

// generationConfig applies the configured timeout to the quiz generation
// defaults.
func generationConfig(cfg config.Config) quizgen.Config {
	gen := quizgen.DefaultConfig()
	if t := cfg.LLM.Timeout(); t > 0 {
		gen.Timeout = t
	}
	return gen
}

// resolveUserID returns the user identity: --user flag, then SOLVEUXQ_USER,
// then "local". Attempts and quotas are keyed by this value.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("SOLVEUXQ_USER"); u != "" {
		return u
	}
	return "local"
}
