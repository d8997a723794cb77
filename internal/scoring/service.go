package scoring

import (
	"context"
	"log/slog"
	"time"

	"github.com/solveuxq/solveuxq/internal/store"
)

// AttemptStore persists finished quiz attempts.
type AttemptStore interface {
	AppendAttempt(ctx context.Context, data store.QuizAttemptData) error
}

// StatsStore maintains per-user aggregates.
type StatsStore interface {
	// AddPoints atomically increments the user's total points and returns
	// the new total.
	AddPoints(ctx context.Context, userID string, points int) (int, error)

	// RecordAttempt folds a finished attempt into the user's aggregates
	// (completion count, average score, streak, daily counter).
	RecordAttempt(ctx context.Context, userID string, scorePct float64) error
}

// Attempt describes a finished, graded quiz for persistence.
type Attempt struct {
	UserID     string
	CategoryID string
	QuizID     string
	Difficulty string
	Result     Result
}

// Service grades attempts and persists them best-effort. Persistence
// failures are logged and never surfaced: the user sees their score
// regardless of storage health.
type Service struct {
	policy   Policy
	attempts AttemptStore
	stats    StatsStore
	logger   *slog.Logger
}

// NewService creates a scoring service.
func NewService(policy Policy, attempts AttemptStore, stats StatsStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{policy: policy, attempts: attempts, stats: stats, logger: logger}
}

// Policy returns the active grading policy.
func (s *Service) Policy() Policy {
	return s.policy
}

// Record persists a graded attempt: the attempt row, the atomic point
// increment, and the aggregate update. Each step is independent; a failed
// step is logged and the rest still run.
func (s *Service) Record(ctx context.Context, a Attempt) {
	if a.UserID == "" {
		return
	}

	if err := s.attempts.AppendAttempt(ctx, store.QuizAttemptData{
		UserID:         a.UserID,
		CategoryID:     a.CategoryID,
		QuizID:         a.QuizID,
		Difficulty:     a.Difficulty,
		CorrectCount:   a.Result.CorrectCount,
		TotalQuestions: a.Result.TotalQuestions,
		ScorePercent:   a.Result.Percentage,
		Points:         a.Result.Points,
		TakenAt:        time.Now(),
	}); err != nil {
		s.logger.Warn("failed to persist quiz attempt",
			"user_id", a.UserID, "quiz_id", a.QuizID, "error", err)
	}

	if a.Result.Points > 0 {
		if _, err := s.stats.AddPoints(ctx, a.UserID, a.Result.Points); err != nil {
			s.logger.Warn("failed to award points",
				"user_id", a.UserID, "points", a.Result.Points, "error", err)
		}
	}

	if err := s.stats.RecordAttempt(ctx, a.UserID, a.Result.Percentage); err != nil {
		s.logger.Warn("failed to update user stats",
			"user_id", a.UserID, "error", err)
	}
}
