package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptHistoryOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().Add(-20 * 24 * time.Hour)
	for i := 0; i < 16; i++ {
		err := repo.AppendAttempt(ctx, QuizAttemptData{
			UserID:         "user-1",
			CategoryID:     "uiux",
			QuizID:         "quiz",
			Difficulty:     "normal",
			CorrectCount:   i % 11,
			TotalQuestions: 10,
			ScorePercent:   float64(i%11) * 10,
			Points:         (i % 11) * 10,
			TakenAt:        base.Add(time.Duration(i) * 24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := repo.History(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != DefaultHistoryLimit {
		t.Fatalf("expected %d attempts, got %d", DefaultHistoryLimit, len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].TakenAt.Before(history[i-1].TakenAt) {
			t.Fatalf("history out of order at %d", i)
		}
	}

	// The oldest two attempts fall outside the limit.
	if history[0].TakenAt.Before(base.Add(24 * time.Hour)) {
		t.Fatal("expected oldest attempts trimmed")
	}

	// Other users see nothing.
	other, err := repo.History(ctx, "user-2", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history, got %d", len(other))
	}
}

func TestCategoryProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts := []QuizAttemptData{
		{UserID: "user-1", CategoryID: "uiux", CorrectCount: 8, TotalQuestions: 10, ScorePercent: 80, Points: 105},
		{UserID: "user-1", CategoryID: "uiux", CorrectCount: 6, TotalQuestions: 10, ScorePercent: 60, Points: 70},
		{UserID: "user-1", CategoryID: "research", CorrectCount: 10, TotalQuestions: 10, ScorePercent: 100, Points: 150},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	progress, err := repo.CategoryProgress(ctx, "user-1")
	if err != nil {
		t.Fatalf("category progress: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(progress))
	}

	// Sorted by category ID: research, uiux.
	if progress[0].CategoryID != "research" || progress[0].BestScore != 100 {
		t.Fatalf("unexpected research progress: %+v", progress[0])
	}
	uiux := progress[1]
	if uiux.Attempts != 2 {
		t.Fatalf("uiux attempts = %d, want 2", uiux.Attempts)
	}
	if uiux.AverageScore != 70 {
		t.Fatalf("uiux average = %f, want 70", uiux.AverageScore)
	}
	if uiux.TotalPoints != 175 {
		t.Fatalf("uiux points = %d, want 175", uiux.TotalPoints)
	}
}

func TestStatsLazyCreateAndAddPoints(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	stats, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.TotalPoints != 0 || stats.Rank != "Novice" {
		t.Fatalf("unexpected fresh stats: %+v", stats)
	}

	total, err := repo.AddPoints(ctx, "user-1", 140)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if total != 140 {
		t.Fatalf("total = %d, want 140", total)
	}

	total, err = repo.AddPoints(ctx, "user-1", 400)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if total != 540 {
		t.Fatalf("total = %d, want 540", total)
	}

	stats, err = repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.Rank != "Practitioner" {
		t.Fatalf("rank = %q, want Practitioner", stats.Rank)
	}
}

func TestStatsRecordAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	if err := repo.RecordAttempt(ctx, "user-1", 80); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.RecordAttempt(ctx, "user-1", 60); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stats.QuizzesCompleted != 2 {
		t.Fatalf("completed = %d, want 2", stats.QuizzesCompleted)
	}
	if stats.AverageScore != 70 {
		t.Fatalf("average = %f, want 70", stats.AverageScore)
	}
	// Both quizzes today: streak stays at 1.
	if stats.Streak != 1 {
		t.Fatalf("streak = %d, want 1", stats.Streak)
	}
}

func TestStatsDailyCounter(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	today := time.Now()

	count, err := repo.DailyCount(ctx, "user-1", today)
	if err != nil {
		t.Fatalf("daily count: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}

	for want := 1; want <= 3; want++ {
		count, err = repo.IncrementDaily(ctx, "user-1", today)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if count != want {
			t.Fatalf("count = %d, want %d", count, want)
		}
	}

	// A new day resets the counter.
	tomorrow := today.AddDate(0, 0, 1)
	count, err = repo.DailyCount(ctx, "user-1", tomorrow)
	if err != nil {
		t.Fatalf("daily count: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 after day change", count)
	}
	count, err = repo.IncrementDaily(ctx, "user-1", tomorrow)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1 after day change", count)
	}
}

func TestLeaderboard(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	for _, u := range []struct {
		id     string
		points int
	}{{"alice", 500}, {"bob", 1500}, {"carol", 100}} {
		if _, err := repo.AddPoints(ctx, u.id, u.points); err != nil {
			t.Fatalf("add points %s: %v", u.id, err)
		}
	}

	entries, err := repo.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != "bob" || entries[0].Position != 1 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Rank != "Expert" {
		t.Fatalf("rank = %q, want Expert", entries[0].Rank)
	}
	if entries[1].UserID != "alice" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openrouter", Model: "m1", Purpose: "quiz_generation", InputTokens: 100, OutputTokens: 500, LatencyMs: 1200, Success: true, RequestBody: "[user]\nprompt", ResponseBody: `{"questions":[]}`},
		{Provider: "openrouter", Model: "m1", Purpose: "study_material", InputTokens: 50, OutputTokens: 900, LatencyMs: 2400, Success: true},
		{Provider: "openrouter", Model: "m2", Purpose: "quiz_generation", Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 events, got %d", len(records))
	}
	// Newest first.
	if records[0].Model != "m2" {
		t.Fatalf("expected newest first, got %q", records[0].Model)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Fatal("sequence not decreasing")
	}

	got, err := repo.GetLLMEvent(ctx, records[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nprompt" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "openrouter", Model: "m1", Purpose: "quiz_generation", InputTokens: 100, OutputTokens: 200, LatencyMs: 1000, Success: true},
		{Provider: "openrouter", Model: "m1", Purpose: "quiz_generation", InputTokens: 100, OutputTokens: 400, LatencyMs: 3000, Success: true},
		{Provider: "openrouter", Model: "m2", Purpose: "study_material", InputTokens: 10, OutputTokens: 20, LatencyMs: 500, Success: true},
	}
	for i, e := range data {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	var quizStats *LLMUsageStats
	for i := range byPurpose {
		if byPurpose[i].Purpose == "quiz_generation" {
			quizStats = &byPurpose[i]
		}
	}
	if quizStats == nil {
		t.Fatal("missing quiz_generation stats")
	}
	if quizStats.Calls != 2 || quizStats.OutputTokens != 600 || quizStats.AvgLatencyMs != 2000 {
		t.Fatalf("unexpected stats: %+v", quizStats)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}

func TestStudyMaterialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MaterialRepo()
	ctx := context.Background()

	articles := []StudyMaterialData{
		{ArticleID: "a1", Category: "Usability Principles", Title: "Heuristics", Content: "# Heuristics\n...", Length: "short", Model: "m1"},
		{ArticleID: "a2", Category: "Usability Principles", Title: "Fitts's Law", Content: "# Fitts\n...", Length: "medium", Model: "m1"},
		{ArticleID: "a3", Category: "UX Research", Title: "Interviews", Content: "# Interviews\n...", Length: "long", Model: "m1"},
	}
	for i, a := range articles {
		if err := repo.Save(ctx, a); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}

	usability, err := repo.ByCategory(ctx, "Usability Principles")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(usability) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(usability))
	}

	got, err := repo.Get(ctx, "a3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Interviews" {
		t.Fatalf("unexpected article: %+v", got)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing article")
	}
}
