package limits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solveuxq/solveuxq/internal/config"
	"github.com/solveuxq/solveuxq/internal/store"
)

type fakeStats struct {
	plan  string
	count int
	day   time.Time
}

func (f *fakeStats) Get(_ context.Context, userID string) (*store.UserStats, error) {
	return &store.UserStats{UserID: userID, Plan: f.plan}, nil
}

func (f *fakeStats) DailyCount(_ context.Context, _ string, today time.Time) (int, error) {
	if !sameDay(f.day, today) {
		return 0, nil
	}
	return f.count, nil
}

func (f *fakeStats) IncrementDaily(_ context.Context, _ string, today time.Time) (int, error) {
	if !sameDay(f.day, today) {
		f.day = today
		f.count = 0
	}
	f.count++
	return f.count, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func testLimits() config.LimitsConfig {
	return config.LimitsConfig{FreeDaily: 3, PaidDaily: 10}
}

func TestLimiter_FreeQuota(t *testing.T) {
	stats := &fakeStats{plan: "free"}
	l := New(stats, testLimits())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := l.Reserve(ctx, "user-1"); err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
	}

	err := l.Reserve(ctx, "user-1")
	if err == nil {
		t.Fatal("expected limit error")
	}
	var limitErr *ErrLimitReached
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrLimitReached, got: %T", err)
	}
	if limitErr.Limit != 3 || limitErr.Plan != "free" {
		t.Fatalf("unexpected limit error: %+v", limitErr)
	}
}

func TestLimiter_PaidQuota(t *testing.T) {
	stats := &fakeStats{plan: "paid"}
	l := New(stats, testLimits())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := l.Reserve(ctx, "user-1"); err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
	}
	if err := l.Reserve(ctx, "user-1"); err == nil {
		t.Fatal("expected limit error on 11th reserve")
	}
}

func TestLimiter_Status(t *testing.T) {
	stats := &fakeStats{plan: "free"}
	l := New(stats, testLimits())
	ctx := context.Background()

	st, err := l.Status(ctx, "user-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Used != 0 || st.Remaining != 3 {
		t.Fatalf("unexpected status: %+v", st)
	}

	_ = l.Reserve(ctx, "user-1")
	_ = l.Reserve(ctx, "user-1")

	st, err = l.Status(ctx, "user-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Used != 2 || st.Remaining != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestLimiter_ResetsNextDay(t *testing.T) {
	stats := &fakeStats{plan: "free"}
	l := New(stats, testLimits())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := l.Reserve(ctx, "user-1"); err != nil {
			t.Fatalf("reserve %d: %v", i, err)
		}
	}
	if err := l.Reserve(ctx, "user-1"); err == nil {
		t.Fatal("expected limit error")
	}

	// Next day the quota is fresh.
	l.now = func() time.Time { return time.Now().AddDate(0, 0, 1) }
	if err := l.Reserve(ctx, "user-1"); err != nil {
		t.Fatalf("reserve after reset: %v", err)
	}

	st, err := l.Status(ctx, "user-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Used != 1 || st.Remaining != 2 {
		t.Fatalf("unexpected status after reset: %+v", st)
	}
}
