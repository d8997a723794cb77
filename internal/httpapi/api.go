// Package httpapi exposes quiz generation, grading, stats, and the study
// library over HTTP. Quiz play itself happens in the client; the API only
// hands out quizzes and accepts graded counts.
package httpapi

import (
	"log/slog"

	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/study"
)

type API struct {
	generator quizgen.Generator
	limiter   *limits.Limiter
	scoring   *scoring.Service
	study     *study.Service
	attempts  store.AttemptRepo
	stats     store.StatsRepo
	logger    *slog.Logger
}

func NewAPI(
	generator quizgen.Generator,
	limiter *limits.Limiter,
	scoringSvc *scoring.Service,
	studySvc *study.Service,
	attempts store.AttemptRepo,
	stats store.StatsRepo,
	logger *slog.Logger,
) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		generator: generator,
		limiter:   limiter,
		scoring:   scoringSvc,
		study:     studySvc,
		attempts:  attempts,
		stats:     stats,
		logger:    logger,
	}
}
