// Package limits enforces the daily quiz generation quota per plan. The
// count lives in the user stats row, so the limit holds across devices
// and restarts rather than being client-side cosmetics.
package limits

import (
	"context"
	"fmt"
	"time"

	"github.com/solveuxq/solveuxq/internal/config"
	"github.com/solveuxq/solveuxq/internal/store"
)

// StatsStore is the slice of the stats repository the limiter needs.
type StatsStore interface {
	Get(ctx context.Context, userID string) (*store.UserStats, error)
	DailyCount(ctx context.Context, userID string, today time.Time) (int, error)
	IncrementDaily(ctx context.Context, userID string, today time.Time) (int, error)
}

// ErrLimitReached is returned by Reserve when the user is out of quizzes
// for the day.
type ErrLimitReached struct {
	Limit int
	Plan  string
}

func (e *ErrLimitReached) Error() string {
	return fmt.Sprintf("daily quiz limit reached (%d per day on the %s plan)", e.Limit, e.Plan)
}

// Status describes a user's remaining quota.
type Status struct {
	Used      int
	Limit     int
	Remaining int
	Plan      string
}

// Limiter checks and reserves daily quiz generations.
type Limiter struct {
	stats StatsStore
	cfg   config.LimitsConfig

	// now is swappable in tests.
	now func() time.Time
}

// New creates a Limiter with the given plan limits.
func New(stats StatsStore, cfg config.LimitsConfig) *Limiter {
	return &Limiter{stats: stats, cfg: cfg, now: time.Now}
}

// Status returns the user's current quota without consuming any.
func (l *Limiter) Status(ctx context.Context, userID string) (Status, error) {
	stats, err := l.stats.Get(ctx, userID)
	if err != nil {
		return Status{}, fmt.Errorf("load user stats: %w", err)
	}

	used, err := l.stats.DailyCount(ctx, userID, l.now())
	if err != nil {
		return Status{}, fmt.Errorf("load daily count: %w", err)
	}

	limit := l.limitFor(stats.Plan)
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return Status{Used: used, Limit: limit, Remaining: remaining, Plan: stats.Plan}, nil
}

// Reserve consumes one generation from today's quota. Returns
// *ErrLimitReached when the quota is exhausted.
func (l *Limiter) Reserve(ctx context.Context, userID string) error {
	stats, err := l.stats.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user stats: %w", err)
	}
	limit := l.limitFor(stats.Plan)

	count, err := l.stats.IncrementDaily(ctx, userID, l.now())
	if err != nil {
		return fmt.Errorf("reserve daily quiz: %w", err)
	}
	if count > limit {
		return &ErrLimitReached{Limit: limit, Plan: stats.Plan}
	}
	return nil
}

func (l *Limiter) limitFor(plan string) int {
	if plan == "paid" {
		return l.cfg.PaidDaily
	}
	return l.cfg.FreeDaily
}
