package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/solveuxq/solveuxq/ent"
	"github.com/solveuxq/solveuxq/ent/userstats"
)

// Rank thresholds by total points, checked top down.
var rankTiers = []struct {
	MinPoints int
	Label     string
}{
	{3000, "Master"},
	{1500, "Expert"},
	{500, "Practitioner"},
	{100, "Apprentice"},
	{0, "Novice"},
}

// RankFor returns the display rank for a point total.
func RankFor(points int) string {
	for _, t := range rankTiers {
		if points >= t.MinPoints {
			return t.Label
		}
	}
	return "Novice"
}

// statsRepo implements StatsRepo backed by ent, with raw SQL for the
// atomic point increment.
type statsRepo struct {
	client *ent.Client
	db     *sql.DB
}

// Get returns the user's stats, creating the row lazily.
func (r *statsRepo) Get(ctx context.Context, userID string) (*UserStats, error) {
	row, err := r.ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statsFromRow(row), nil
}

// AddPoints increments total points with a single UPDATE..RETURNING so
// concurrent awards never lose an increment, then refreshes the rank.
func (r *statsRepo) AddPoints(ctx context.Context, userID string, points int) (int, error) {
	if _, err := r.ensure(ctx, userID); err != nil {
		return 0, err
	}

	var total int
	err := r.db.QueryRowContext(ctx,
		`UPDATE user_stats SET total_points = total_points + ? WHERE user_id = ? RETURNING total_points`,
		points, userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("add points: %w", err)
	}

	err = r.client.UserStats.Update().
		Where(userstats.UserID(userID)).
		SetRank(RankFor(total)).
		Exec(ctx)
	if err != nil {
		return total, fmt.Errorf("update rank: %w", err)
	}

	return total, nil
}

// RecordAttempt folds one finished quiz into the aggregates. The streak
// rule: same day leaves it unchanged, a quiz on the day after the last
// one extends it, anything else resets it to 1.
func (r *statsRepo) RecordAttempt(ctx context.Context, userID string, scorePct float64) error {
	row, err := r.ensure(ctx, userID)
	if err != nil {
		return err
	}

	completed := row.QuizzesCompleted + 1
	average := (row.AverageScore*float64(row.QuizzesCompleted) + scorePct) / float64(completed)

	now := time.Now()
	streak := 1
	if !row.LastQuizDate.IsZero() {
		switch {
		case sameDay(row.LastQuizDate, now):
			streak = row.Streak
		case sameDay(row.LastQuizDate.AddDate(0, 0, 1), now):
			streak = row.Streak + 1
		}
	}

	err = r.client.UserStats.Update().
		Where(userstats.UserID(userID)).
		SetQuizzesCompleted(completed).
		SetAverageScore(average).
		SetStreak(streak).
		SetLastQuizDate(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

func (r *statsRepo) IncrementDaily(ctx context.Context, userID string, today time.Time) (int, error) {
	row, err := r.ensure(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 1
	if !row.DailyDate.IsZero() && sameDay(row.DailyDate, today) {
		count = row.DailyQuizzes + 1
	}

	err = r.client.UserStats.Update().
		Where(userstats.UserID(userID)).
		SetDailyQuizzes(count).
		SetDailyDate(today).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("increment daily count: %w", err)
	}
	return count, nil
}

func (r *statsRepo) DailyCount(ctx context.Context, userID string, today time.Time) (int, error) {
	row, err := r.ensure(ctx, userID)
	if err != nil {
		return 0, err
	}
	if row.DailyDate.IsZero() || !sameDay(row.DailyDate, today) {
		return 0, nil
	}
	return row.DailyQuizzes, nil
}

func (r *statsRepo) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.client.UserStats.Query().
		Order(ent.Desc(userstats.FieldTotalPoints)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = LeaderboardEntry{
			Position:    i + 1,
			UserID:      row.UserID,
			TotalPoints: row.TotalPoints,
			Rank:        row.Rank,
		}
	}
	return entries, nil
}

// ensure returns the user's row, creating it on first access.
func (r *statsRepo) ensure(ctx context.Context, userID string) (*ent.UserStats, error) {
	row, err := r.client.UserStats.Query().
		Where(userstats.UserID(userID)).
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user stats: %w", err)
	}

	row, err = r.client.UserStats.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		// Lost a create race; re-read.
		if ent.IsConstraintError(err) {
			return r.client.UserStats.Query().
				Where(userstats.UserID(userID)).
				Only(ctx)
		}
		return nil, fmt.Errorf("create user stats: %w", err)
	}
	return row, nil
}

func statsFromRow(row *ent.UserStats) *UserStats {
	return &UserStats{
		UserID:           row.UserID,
		QuizzesCompleted: row.QuizzesCompleted,
		AverageScore:     row.AverageScore,
		TotalPoints:      row.TotalPoints,
		Rank:             row.Rank,
		Streak:           row.Streak,
		LastQuizDate:     row.LastQuizDate,
		DailyQuizzes:     row.DailyQuizzes,
		DailyDate:        row.DailyDate,
		Plan:             row.Plan,
	}
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
