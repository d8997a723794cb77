package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solveuxq/solveuxq/internal/config"
	"github.com/solveuxq/solveuxq/internal/limits"
	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
	"github.com/solveuxq/solveuxq/internal/study"
)

type stubGenerator struct {
	quiz *quiz.Quiz
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, input quizgen.GenerateInput) (*quiz.Quiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	q := *s.quiz
	q.Title = input.Category + " Quiz"
	return &q, nil
}

type fakeAttempts struct {
	appended []store.QuizAttemptData
}

func (f *fakeAttempts) AppendAttempt(_ context.Context, data store.QuizAttemptData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAttempts) History(_ context.Context, userID string, limit int) ([]store.QuizAttemptRecord, error) {
	var out []store.QuizAttemptRecord
	for i, a := range f.appended {
		if a.UserID == userID {
			out = append(out, store.QuizAttemptRecord{ID: i + 1, QuizAttemptData: a})
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeAttempts) CategoryProgress(_ context.Context, userID string) ([]store.CategoryProgress, error) {
	byCategory := map[string]*store.CategoryProgress{}
	var order []string
	for _, a := range f.appended {
		if a.UserID != userID {
			continue
		}
		p, ok := byCategory[a.CategoryID]
		if !ok {
			p = &store.CategoryProgress{CategoryID: a.CategoryID}
			byCategory[a.CategoryID] = p
			order = append(order, a.CategoryID)
		}
		p.Attempts++
		p.TotalPoints += a.Points
		if a.ScorePercent > p.BestScore {
			p.BestScore = a.ScorePercent
		}
	}
	out := make([]store.CategoryProgress, 0, len(order))
	for _, id := range order {
		out = append(out, *byCategory[id])
	}
	return out, nil
}

type fakeStats struct {
	points map[string]int
	daily  map[string]int
	day    time.Time
	plan   string
}

func newFakeStats() *fakeStats {
	return &fakeStats{points: map[string]int{}, daily: map[string]int{}, plan: "free"}
}

func (f *fakeStats) Get(_ context.Context, userID string) (*store.UserStats, error) {
	return &store.UserStats{UserID: userID, TotalPoints: f.points[userID], Rank: "Novice", Plan: f.plan}, nil
}

func (f *fakeStats) AddPoints(_ context.Context, userID string, points int) (int, error) {
	f.points[userID] += points
	return f.points[userID], nil
}

func (f *fakeStats) RecordAttempt(_ context.Context, _ string, _ float64) error {
	return nil
}

func (f *fakeStats) IncrementDaily(_ context.Context, userID string, today time.Time) (int, error) {
	if !today.Equal(f.day) {
		f.day = today
	}
	f.daily[userID]++
	return f.daily[userID], nil
}

func (f *fakeStats) DailyCount(_ context.Context, userID string, _ time.Time) (int, error) {
	return f.daily[userID], nil
}

func (f *fakeStats) Leaderboard(_ context.Context, limit int) ([]store.LeaderboardEntry, error) {
	var out []store.LeaderboardEntry
	for userID, points := range f.points {
		out = append(out, store.LeaderboardEntry{Position: len(out) + 1, UserID: userID, TotalPoints: points, Rank: "Novice"})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMaterials struct {
	saved []store.StudyMaterialData
}

func (f *fakeMaterials) Save(_ context.Context, data store.StudyMaterialData) error {
	f.saved = append(f.saved, data)
	return nil
}

func (f *fakeMaterials) Categories(_ context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, m := range f.saved {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out, nil
}

func (f *fakeMaterials) ByCategory(_ context.Context, category string) ([]store.StudyMaterialRecord, error) {
	var out []store.StudyMaterialRecord
	for i, m := range f.saved {
		if m.Category == category {
			out = append(out, store.StudyMaterialRecord{ID: i + 1, StudyMaterialData: m})
		}
	}
	return out, nil
}

func (f *fakeMaterials) Get(_ context.Context, articleID string) (*store.StudyMaterialRecord, error) {
	for i, m := range f.saved {
		if m.ArticleID == articleID {
			return &store.StudyMaterialRecord{ID: i + 1, StudyMaterialData: m}, nil
		}
	}
	return nil, nil
}

type testEnv struct {
	handler   http.Handler
	generator *stubGenerator
	attempts  *fakeAttempts
	stats     *fakeStats
	materials *fakeMaterials
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	generator := &stubGenerator{quiz: &quiz.Quiz{
		ID:            "quiz-1",
		QuestionCount: 2,
		Questions: []quiz.Question{
			{ID: "q1", Text: "Q1", Options: []quiz.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}, CorrectOptionID: "a"},
			{ID: "q2", Text: "Q2", Options: []quiz.Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}}, CorrectOptionID: "b"},
		},
	}}

	attempts := &fakeAttempts{}
	stats := newFakeStats()
	materials := &fakeMaterials{}

	logger := slog.New(slog.DiscardHandler)
	limiter := limits.New(stats, config.LimitsConfig{FreeDaily: 2, PaidDaily: 50})
	scoringSvc := scoring.NewService(scoring.DefaultPolicy(), attempts, stats, logger)
	studySvc := study.NewService(
		llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("# Heuristics\n\nBody text.")}),
		materials,
		0,
	)

	api := NewAPI(generator, limiter, scoringSvc, studySvc, attempts, stats, logger)
	return &testEnv{
		handler:   NewRouter(api),
		generator: generator,
		attempts:  attempts,
		stats:     stats,
		materials: materials,
	}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerateQuiz(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", generateQuizRequest{
		UserID:     "user-1",
		Category:   "Usability Principles",
		Difficulty: "easy",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload generateQuizResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Quiz == nil || payload.Quiz.Title != "Usability Principles Quiz" {
		t.Fatalf("unexpected quiz: %+v", payload.Quiz)
	}
	if len(payload.Quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(payload.Quiz.Questions))
	}
}

func TestHandleGenerateQuiz_RequiresCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", generateQuizRequest{UserID: "user-1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGenerateQuiz_LimitReached(t *testing.T) {
	env := newTestEnv(t)
	request := generateQuizRequest{UserID: "user-1", Category: "UX Research"}

	for i := 0; i < 2; i++ {
		if rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", request); rec.Code != http.StatusOK {
			t.Fatalf("generate %d: status = %d", i, rec.Code)
		}
	}

	rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", request)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}

func TestHandleGenerateQuiz_AnonymousSkipsQuota(t *testing.T) {
	env := newTestEnv(t)
	request := generateQuizRequest{Category: "UX Research"}

	for i := 0; i < 5; i++ {
		if rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", request); rec.Code != http.StatusOK {
			t.Fatalf("generate %d: status = %d", i, rec.Code)
		}
	}
}

func TestHandleGenerateQuiz_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unparseable", &quizgen.ErrUnparseable{Content: "oops"}, http.StatusBadGateway},
		{"invalid shape", &quizgen.ErrInvalidShape{QuestionIndex: 1, Message: "no options"}, http.StatusBadGateway},
		{"timeout", &llm.ErrTimeout{After: 45 * time.Second, Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.generator.err = tt.err

			rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/generate", generateQuizRequest{Category: "UX"})
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandlePoints(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/points", pointsRequest{
		UserID:         "user-1",
		CategoryID:     "ui-ux",
		QuizID:         "quiz-1",
		Difficulty:     "normal",
		CorrectCount:   9,
		TotalQuestions: 10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload pointsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 9 correct at 10 each plus the 90 percent bonus.
	if payload.Points != 140 || payload.BasePoints != 90 || payload.BonusPoints != 50 {
		t.Fatalf("unexpected grading: %+v", payload)
	}

	if len(env.attempts.appended) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(env.attempts.appended))
	}
	if env.stats.points["user-1"] != 140 {
		t.Fatalf("points not awarded: %d", env.stats.points["user-1"])
	}
}

func TestHandlePoints_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		request pointsRequest
	}{
		{"zero total", pointsRequest{UserID: "u", CorrectCount: 0, TotalQuestions: 0}},
		{"negative correct", pointsRequest{UserID: "u", CorrectCount: -1, TotalQuestions: 10}},
		{"correct above total", pointsRequest{UserID: "u", CorrectCount: 11, TotalQuestions: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/points", tt.request)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleUserStats(t *testing.T) {
	env := newTestEnv(t)
	env.stats.points["user-1"] = 120

	rec := doJSON(t, env.handler, http.MethodGet, "/api/v1/users/user-1/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload statsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UserID != "user-1" || payload.TotalPoints != 120 {
		t.Fatalf("unexpected stats: %+v", payload)
	}
}

func TestHandleUserHistoryAndProgress(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/quiz/points", pointsRequest{
			UserID: "user-1", CategoryID: "ui-ux", QuizID: "quiz-1",
			CorrectCount: 5 + i, TotalQuestions: 10,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("points %d: status = %d", i, rec.Code)
		}
	}

	rec := doJSON(t, env.handler, http.MethodGet, "/api/v1/users/user-1/history?limit=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	var history historyResponse
	if err := json.NewDecoder(rec.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(history.Attempts))
	}

	rec = doJSON(t, env.handler, http.MethodGet, "/api/v1/users/user-1/progress", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress status = %d", rec.Code)
	}
	var progress progressResponse
	if err := json.NewDecoder(rec.Body).Decode(&progress); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if len(progress.Categories) != 1 || progress.Categories[0].Attempts != 3 {
		t.Fatalf("unexpected progress: %+v", progress.Categories)
	}
}

func TestHandleLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	env.stats.points["user-1"] = 300

	rec := doJSON(t, env.handler, http.MethodGet, "/api/v1/leaderboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload leaderboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Leaderboard) != 1 || payload.Leaderboard[0].TotalPoints != 300 {
		t.Fatalf("unexpected leaderboard: %+v", payload.Leaderboard)
	}
}

func TestHandleGenerateStudyAndLibrary(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodPost, "/api/v1/study/generate", generateStudyRequest{
		Category: "Accessibility",
		Topic:    "usability heuristics",
		Length:   "short",
		Save:     true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var article articleResponse
	if err := json.NewDecoder(rec.Body).Decode(&article); err != nil {
		t.Fatalf("decode article: %v", err)
	}
	if article.ID == "" || article.Content == "" {
		t.Fatalf("unexpected article: %+v", article)
	}

	rec = doJSON(t, env.handler, http.MethodGet, "/api/v1/study/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("categories status = %d", rec.Code)
	}
	var categories studyCategoriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&categories); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(categories.Categories) != 1 || categories.Categories[0] != "Accessibility" {
		t.Fatalf("unexpected categories: %+v", categories.Categories)
	}

	rec = doJSON(t, env.handler, http.MethodGet, "/api/v1/study/categories/Accessibility", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("library status = %d", rec.Code)
	}
	var library studyLibraryResponse
	if err := json.NewDecoder(rec.Body).Decode(&library); err != nil {
		t.Fatalf("decode library: %v", err)
	}
	if len(library.Articles) != 1 || library.Articles[0].Content != "" {
		t.Fatalf("listing should omit content: %+v", library.Articles)
	}

	rec = doJSON(t, env.handler, http.MethodGet, "/api/v1/study/articles/"+article.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("article status = %d", rec.Code)
	}
	var fetched articleResponse
	if err := json.NewDecoder(rec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched article: %v", err)
	}
	if fetched.Content == "" {
		t.Fatal("expected full content on article fetch")
	}
}

func TestHandleStudyArticleNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodGet, "/api/v1/study/articles/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env.handler, http.MethodGet, "/api/v1/quiz/generate", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("allow header = %q", got)
	}
}
