package scoring

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/solveuxq/solveuxq/internal/store"
)

type fakeAttempts struct {
	appended []store.QuizAttemptData
	err      error
}

func (f *fakeAttempts) AppendAttempt(_ context.Context, data store.QuizAttemptData) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, data)
	return nil
}

type fakeStats struct {
	pointsAdded int
	attempts    int
	addErr      error
	recordErr   error
}

func (f *fakeStats) AddPoints(_ context.Context, _ string, points int) (int, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.pointsAdded += points
	return f.pointsAdded, nil
}

func (f *fakeStats) RecordAttempt(_ context.Context, _ string, _ float64) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.attempts++
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_RecordPersistsEverything(t *testing.T) {
	attempts := &fakeAttempts{}
	stats := &fakeStats{}
	svc := NewService(DefaultPolicy(), attempts, stats, quietLogger())

	svc.Record(context.Background(), Attempt{
		UserID:     "user-1",
		CategoryID: "uiux",
		QuizID:     "quiz-1",
		Difficulty: "normal",
		Result:     ScoreCounts(9, 10, DefaultPolicy()),
	})

	if len(attempts.appended) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(attempts.appended))
	}
	got := attempts.appended[0]
	if got.Points != 140 {
		t.Fatalf("points = %d, want 140", got.Points)
	}
	if got.CorrectCount != 9 || got.TotalQuestions != 10 {
		t.Fatalf("counts = %d/%d, want 9/10", got.CorrectCount, got.TotalQuestions)
	}
	if stats.pointsAdded != 140 {
		t.Fatalf("points added = %d, want 140", stats.pointsAdded)
	}
	if stats.attempts != 1 {
		t.Fatalf("stats attempts = %d, want 1", stats.attempts)
	}
}

func TestService_AttemptFailureDoesNotBlockPoints(t *testing.T) {
	attempts := &fakeAttempts{err: errors.New("disk full")}
	stats := &fakeStats{}
	svc := NewService(DefaultPolicy(), attempts, stats, quietLogger())

	svc.Record(context.Background(), Attempt{
		UserID: "user-1",
		Result: ScoreCounts(5, 10, DefaultPolicy()),
	})

	// Points and aggregates still land despite the failed attempt insert.
	if stats.pointsAdded != 60 {
		t.Fatalf("points added = %d, want 60", stats.pointsAdded)
	}
	if stats.attempts != 1 {
		t.Fatalf("stats attempts = %d, want 1", stats.attempts)
	}
}

func TestService_StatsFailureIsSwallowed(t *testing.T) {
	attempts := &fakeAttempts{}
	stats := &fakeStats{addErr: errors.New("locked"), recordErr: errors.New("locked")}
	svc := NewService(DefaultPolicy(), attempts, stats, quietLogger())

	// Must not panic or surface the error.
	svc.Record(context.Background(), Attempt{
		UserID: "user-1",
		Result: ScoreCounts(10, 10, DefaultPolicy()),
	})

	if len(attempts.appended) != 1 {
		t.Fatalf("expected attempt persisted, got %d", len(attempts.appended))
	}
}

func TestService_ZeroPointsSkipsIncrement(t *testing.T) {
	attempts := &fakeAttempts{}
	stats := &fakeStats{}
	svc := NewService(DefaultPolicy(), attempts, stats, quietLogger())

	svc.Record(context.Background(), Attempt{
		UserID: "user-1",
		Result: ScoreCounts(0, 10, DefaultPolicy()),
	})

	if stats.pointsAdded != 0 {
		t.Fatalf("points added = %d, want 0", stats.pointsAdded)
	}
	if stats.attempts != 1 {
		t.Fatalf("stats attempts = %d, want 1", stats.attempts)
	}
}

func TestService_AnonymousAttemptNotPersisted(t *testing.T) {
	attempts := &fakeAttempts{}
	stats := &fakeStats{}
	svc := NewService(DefaultPolicy(), attempts, stats, quietLogger())

	svc.Record(context.Background(), Attempt{
		Result: ScoreCounts(10, 10, DefaultPolicy()),
	})

	if len(attempts.appended) != 0 || stats.attempts != 0 {
		t.Fatal("anonymous attempt should not be persisted")
	}
}
