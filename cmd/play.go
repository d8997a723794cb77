package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/logging"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, llmSelection(cfg), st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	logger := logging.New(logLevel())
	userID := resolveUserID(cmd)

	return tui.Run(tui.Options{
		Generator: quizgen.New(provider, generationConfig(cfg)),
		Scoring:   scoring.NewService(cfg.Scoring, st.AttemptRepo(), st.StatsRepo(), logger),
		Limiter:   limits.New(st.StatsRepo(), cfg.Limits),
		Stats:     st.StatsRepo(),
		UserID:    userID,
	})
}
