package runner

import (
	"errors"
	"testing"

	"github.com/solveuxq/solveuxq/internal/quiz"
)

func threeQuestionQuiz() *quiz.Quiz {
	mkQ := func(id, correct string) quiz.Question {
		return quiz.Question{
			ID:   id,
			Text: "Question " + id,
			Options: []quiz.Option{
				{ID: "a", Text: "A"},
				{ID: "b", Text: "B"},
				{ID: "c", Text: "C"},
				{ID: "d", Text: "D"},
			},
			CorrectOptionID: correct,
		}
	}
	return &quiz.Quiz{
		ID:        "test-quiz",
		Title:     "Test Quiz",
		Questions: []quiz.Question{mkQ("q1", "a"), mkQ("q2", "b"), mkQ("q3", "c")},
	}
}

func mustSubmit(t *testing.T, r *Runner, optionID string) {
	t.Helper()
	if err := r.Select(optionID); err != nil {
		t.Fatalf("select %q: %v", optionID, err)
	}
	if _, err := r.Submit(); err != nil {
		t.Fatalf("submit %q: %v", optionID, err)
	}
}

func TestNew_EmptyQuiz(t *testing.T) {
	if _, err := New(&quiz.Quiz{}); err == nil {
		t.Fatal("expected error for quiz with no questions")
	}
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil quiz")
	}
}

func TestRunner_FullFlowOrderedResults(t *testing.T) {
	r, err := New(threeQuestionQuiz())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers := []string{"a", "b", "c"}
	for i, ans := range answers {
		if r.State() != StateAwaitingAnswer {
			t.Fatalf("question %d: state = %q, want awaiting_answer", i, r.State())
		}
		if r.Current().ID != r.Quiz().Questions[i].ID {
			t.Fatalf("question %d: current = %q", i, r.Current().ID)
		}

		mustSubmit(t, r, ans)
		if r.State() != StateAnswerSubmitted {
			t.Fatalf("question %d: state = %q, want answer_submitted", i, r.State())
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("advance after %d: %v", i, err)
		}
	}

	if r.State() != StateCompleted {
		t.Fatalf("state = %q, want completed", r.State())
	}

	results := r.Results()
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range answers {
		if results[i].SelectedOptionID != want {
			t.Errorf("result %d: selected = %q, want %q", i, results[i].SelectedOptionID, want)
		}
		if results[i].Question.ID != r.Quiz().Questions[i].ID {
			t.Errorf("result %d: question = %q, out of order", i, results[i].Question.ID)
		}
	}
	if r.CorrectCount() != 3 {
		t.Fatalf("correct count = %d, want 3", r.CorrectCount())
	}
}

func TestRunner_SubmitWithoutSelection(t *testing.T) {
	r, _ := New(threeQuestionQuiz())

	_, err := r.Submit()
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got: %v", err)
	}
	if r.State() != StateAwaitingAnswer {
		t.Fatalf("state changed on rejected submit: %q", r.State())
	}
	if len(r.Results()) != 0 {
		t.Fatal("result recorded despite rejected submit")
	}
}

func TestRunner_SelectionMutableUntilSubmit(t *testing.T) {
	r, _ := New(threeQuestionQuiz())

	if err := r.Select("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Select("d"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Selected() != "d" {
		t.Fatalf("selected = %q, want %q", r.Selected(), "d")
	}

	res, err := r.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SelectedOptionID != "d" {
		t.Fatalf("recorded = %q, want %q", res.SelectedOptionID, "d")
	}

	// Locked in after submit.
	if err := r.Select("a"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got: %v", err)
	}
	if _, err := r.Submit(); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got: %v", err)
	}
}

func TestRunner_SelectUnknownOption(t *testing.T) {
	r, _ := New(threeQuestionQuiz())
	if err := r.Select("z"); err == nil {
		t.Fatal("expected error for unknown option")
	}
}

func TestRunner_AdvanceRequiresSubmit(t *testing.T) {
	r, _ := New(threeQuestionQuiz())
	if err := r.Advance(); !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("expected ErrNotSubmitted, got: %v", err)
	}
}

func TestRunner_BackIsReadOnly(t *testing.T) {
	r, _ := New(threeQuestionQuiz())

	mustSubmit(t, r, "a")
	if err := r.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Review the first question.
	if !r.Back() {
		t.Fatal("expected Back to succeed")
	}
	if r.Current().ID != "q1" {
		t.Fatalf("current = %q, want q1", r.Current().ID)
	}
	if !r.Reviewing() {
		t.Fatal("expected reviewing state")
	}
	if r.Selected() != "a" {
		t.Fatalf("recorded selection = %q, want a", r.Selected())
	}

	// Answered questions are immutable during review.
	if err := r.Select("b"); err == nil {
		t.Fatal("expected error selecting during review")
	}
	res, _ := r.ResultAt(0)
	if res.SelectedOptionID != "a" {
		t.Fatalf("recorded answer changed to %q", res.SelectedOptionID)
	}

	// Return to the active question and keep going.
	if !r.Forward() {
		t.Fatal("expected Forward to succeed")
	}
	if r.Current().ID != "q2" {
		t.Fatalf("current = %q, want q2", r.Current().ID)
	}
	mustSubmit(t, r, "c")
}

func TestRunner_BackAtFirstQuestion(t *testing.T) {
	r, _ := New(threeQuestionQuiz())
	if r.Back() {
		t.Fatal("expected Back to fail at first question")
	}
}

func TestRunner_CompletedRejectsMutation(t *testing.T) {
	r, _ := New(threeQuestionQuiz())
	for _, ans := range []string{"a", "a", "a"} {
		mustSubmit(t, r, ans)
		if err := r.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := r.Select("a"); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got: %v", err)
	}
	if _, err := r.Submit(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got: %v", err)
	}
	if err := r.Advance(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got: %v", err)
	}

	// Review remains available.
	if r.Current().ID != "q1" {
		t.Fatalf("review starts at %q, want q1", r.Current().ID)
	}
	if !r.Forward() {
		t.Fatal("expected Forward during completed review")
	}
	if r.CorrectCount() != 1 {
		t.Fatalf("correct count = %d, want 1", r.CorrectCount())
	}
}
