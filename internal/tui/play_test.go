package tui

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/solveuxq/solveuxq/internal/quiz"
	"github.com/solveuxq/solveuxq/internal/quizgen"
	"github.com/solveuxq/solveuxq/internal/scoring"
	"github.com/solveuxq/solveuxq/internal/store"
)

type stubGenerator struct {
	quiz *quiz.Quiz
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ quizgen.GenerateInput) (*quiz.Quiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quiz, nil
}

type fakeAttempts struct {
	appended []store.QuizAttemptData
}

func (f *fakeAttempts) AppendAttempt(_ context.Context, data store.QuizAttemptData) error {
	f.appended = append(f.appended, data)
	return nil
}

type fakeStats struct {
	points int
}

func (f *fakeStats) AddPoints(_ context.Context, _ string, points int) (int, error) {
	f.points += points
	return f.points, nil
}

func (f *fakeStats) RecordAttempt(_ context.Context, _ string, _ float64) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func twoQuestionQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:            "quiz-1",
		Title:         "UI/UX Design Quiz",
		QuestionCount: 2,
		Questions: []quiz.Question{
			{
				ID:   "q1",
				Text: "First question",
				Options: []quiz.Option{
					{ID: "a", Text: "Right"},
					{ID: "b", Text: "Wrong"},
				},
				CorrectOptionID: "a",
			},
			{
				ID:   "q2",
				Text: "Second question",
				Options: []quiz.Option{
					{ID: "a", Text: "Wrong"},
					{ID: "b", Text: "Right"},
				},
				CorrectOptionID: "b",
			},
		},
	}
}

func testModel(gen *stubGenerator, attempts *fakeAttempts, stats *fakeStats) Model {
	logger := slog.New(slog.DiscardHandler)
	m := NewModel(Options{
		Generator: gen,
		Scoring:   scoring.NewService(scoring.DefaultPolicy(), attempts, stats, logger),
		UserID:    "user-1",
	})
	m.width = 100
	m.height = 30
	return m
}

// update runs one message through the model and returns the new model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// startQuiz drives the model from category selection into the question
// phase using the stubbed generator.
func startQuiz(t *testing.T, m Model) Model {
	t.Helper()

	m, _ = update(t, m, specialKey(tea.KeyEnter)) // category
	if m.phase != phaseDifficulty {
		t.Fatalf("phase = %v, want difficulty", m.phase)
	}

	m, _ = update(t, m, specialKey(tea.KeyEnter)) // difficulty
	if m.phase != phaseIndustry {
		t.Fatalf("phase = %v, want industry", m.phase)
	}

	m, _ = update(t, m, specialKey(tea.KeyEnter)) // skip industry
	if m.phase != phaseGenerating {
		t.Fatalf("phase = %v, want generating", m.phase)
	}

	m, _ = update(t, m, m.generateQuiz()())
	return m
}

func TestPlayFlow_FullQuiz(t *testing.T) {
	gen := &stubGenerator{quiz: twoQuestionQuiz()}
	attempts := &fakeAttempts{}
	stats := &fakeStats{}
	m := testModel(gen, attempts, stats)

	m = startQuiz(t, m)
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %v, want question", m.phase)
	}

	// Q1: cursor starts on "a" (correct). Submit, then advance.
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	if !m.choice.Locked {
		t.Fatal("answer should be locked after submit")
	}
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	if m.run.Index() != 1 {
		t.Fatalf("index = %d, want 1", m.run.Index())
	}

	// Q2: move to "b" (correct), submit, advance to completion.
	m, _ = update(t, m, keyPress('j'))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	var cmd tea.Cmd
	m, cmd = update(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseResults {
		t.Fatalf("phase = %v, want results", m.phase)
	}
	if cmd == nil {
		t.Fatal("expected grading command")
	}

	m, _ = update(t, m, cmd())
	if !m.graded {
		t.Fatal("expected graded result")
	}
	// 2/2 correct: 20 base + 50 bonus.
	if m.result.Points != 70 {
		t.Fatalf("points = %d, want 70", m.result.Points)
	}

	if len(attempts.appended) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(attempts.appended))
	}
	if attempts.appended[0].CorrectCount != 2 || attempts.appended[0].Points != 70 {
		t.Fatalf("unexpected attempt: %+v", attempts.appended[0])
	}
	if stats.points != 70 {
		t.Fatalf("stats points = %d, want 70", stats.points)
	}
}

func TestPlayFlow_GradeFiresOnce(t *testing.T) {
	gen := &stubGenerator{quiz: twoQuestionQuiz()}
	attempts := &fakeAttempts{}
	stats := &fakeStats{}
	m := testModel(gen, attempts, stats)
	m = startQuiz(t, m)

	// Answer both questions to reach results with a pending grade.
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, keyPress('j'))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	var gradeCmd tea.Cmd
	m, gradeCmd = update(t, m, specialKey(tea.KeyEnter))
	if gradeCmd == nil {
		t.Fatal("expected grading command")
	}

	// Review and come back before the first grade result arrives; no
	// second grade may be dispatched.
	m, _ = update(t, m, keyPress('b'))
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %v, want question", m.phase)
	}
	var again tea.Cmd
	m, again = update(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseResults {
		t.Fatalf("phase = %v, want results", m.phase)
	}
	if again != nil {
		t.Fatal("grade dispatched a second time")
	}

	m, _ = update(t, m, gradeCmd())
	if !m.graded {
		t.Fatal("expected graded result")
	}
	if len(attempts.appended) != 1 {
		t.Fatalf("expected 1 persisted attempt, got %d", len(attempts.appended))
	}
	if stats.points != 70 {
		t.Fatalf("stats points = %d, want 70", stats.points)
	}
}

func TestPlayFlow_SelectionMutableUntilSubmit(t *testing.T) {
	gen := &stubGenerator{quiz: twoQuestionQuiz()}
	m := testModel(gen, &fakeAttempts{}, &fakeStats{})
	m = startQuiz(t, m)

	// Move down then back up before submitting.
	m, _ = update(t, m, keyPress('j'))
	m, _ = update(t, m, keyPress('k'))
	m, _ = update(t, m, specialKey(tea.KeyEnter))

	res, ok := m.run.ResultAt(0)
	if !ok || res.SelectedOptionID != "a" {
		t.Fatalf("unexpected recorded answer: %+v", res)
	}
}

func TestPlayFlow_BackIsReadOnly(t *testing.T) {
	gen := &stubGenerator{quiz: twoQuestionQuiz()}
	m := testModel(gen, &fakeAttempts{}, &fakeStats{})
	m = startQuiz(t, m)

	// Answer Q1 and advance to Q2.
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))

	// Go back to Q1: shown locked, keys cannot change the answer.
	m, _ = update(t, m, specialKey(tea.KeyLeft))
	if !m.run.Reviewing() {
		t.Fatal("expected review mode after back")
	}
	if !m.choice.Locked {
		t.Fatal("reviewed question should be locked")
	}

	m, _ = update(t, m, keyPress('j'))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	res, _ := m.run.ResultAt(0)
	if res.SelectedOptionID != "a" {
		t.Fatalf("recorded answer changed during review: %+v", res)
	}

	// Forward returns to the active question.
	m, _ = update(t, m, specialKey(tea.KeyRight))
	if m.run.Reviewing() {
		t.Fatal("expected active question after forward")
	}
	if m.choice.Locked {
		t.Fatal("active question should accept a selection")
	}
}

func TestPlayFlow_GenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model returned garbage")}
	m := testModel(gen, &fakeAttempts{}, &fakeStats{})

	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, m.generateQuiz()())

	if m.phase != phaseError {
		t.Fatalf("phase = %v, want error", m.phase)
	}

	// Any key returns to category selection.
	m, _ = update(t, m, keyPress(' '))
	if m.phase != phaseCategory {
		t.Fatalf("phase = %v, want category", m.phase)
	}
}
