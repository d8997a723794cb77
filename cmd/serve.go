package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/solveuxq/solveuxq/internal/httpapi"
	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/logging"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/study"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Serves quiz generation, grading, stats, and the study library over HTTP. LLM credentials stay on the server; clients never talk to the model provider directly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

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

		api := httpapi.NewAPI(
			quizgen.New(provider, generationConfig(cfg)),
			limits.New(st.StatsRepo(), cfg.Limits),
			scoring.NewService(cfg.Scoring, st.AttemptRepo(), st.StatsRepo(), logger),
			study.NewService(provider, st.MaterialRepo(), cfg.LLM.Timeout()),
			st.AttemptRepo(),
			st.StatsRepo(),
			logger,
		)

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpapi.NewRouter(api),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", cfg.Server.Addr, "db", dbPath)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
