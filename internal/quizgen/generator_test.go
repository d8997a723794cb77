package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/quiz"
)

const validQuizJSON = `{
  "questions": [
    {
      "id": "q1",
      "text": "Which heuristic covers undo?",
      "options": [
        {"id": "a", "text": "User control and freedom"},
        {"id": "b", "text": "Consistency and standards"},
        {"id": "c", "text": "Visibility of system status"},
        {"id": "d", "text": "Error prevention"}
      ],
      "correctOptionId": "a",
      "explanation": "Undo and redo are the canonical examples."
    }
  ]
}`

func testInput() GenerateInput {
	return GenerateInput{
		Category:   "Usability Principles",
		Difficulty: quiz.DifficultyEasy,
	}
}

func TestLLMGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Fatal("expected a generated quiz ID")
	}
	if q.Title != "Usability Principles Quiz" {
		t.Fatalf("unexpected title: %q", q.Title)
	}
	if len(q.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(q.Questions))
	}
	if q.Questions[0].CorrectOptionID != "a" {
		t.Fatalf("unexpected correct option: %q", q.Questions[0].CorrectOptionID)
	}
}

func TestLLMGenerator_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	g := New(mock, DefaultConfig())

	input := GenerateInput{
		Category:   "Product Strategy",
		Industry:   "e-commerce",
		Difficulty: quiz.DifficultyHard,
	}
	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Product Strategy", "e-commerce", "Advanced", "exactly 15 questions"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	// Raw-text generation: no schema on the request.
	if mock.Calls[0].Schema != nil {
		t.Error("expected no schema on the generation request")
	}
}

func TestLLMGenerator_FencedResponse(t *testing.T) {
	fenced := "Here you go:\n```json\n" + validQuizJSON + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(q.Questions))
	}
}

func TestLLMGenerator_UnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`I cannot generate a quiz right now.`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var unparseable *ErrUnparseable
	if !errors.As(err, &unparseable) {
		t.Fatalf("expected ErrUnparseable, got: %T", err)
	}
}

func TestLLMGenerator_InvalidShapeResponse(t *testing.T) {
	payload := `{"questions":[{"id":"q1","text":"Pick","options":[{"id":"a","text":"A"},{"id":"b","text":"B"}],"correctOptionId":"z"}]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(payload)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var shapeErr *ErrInvalidShape
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ErrInvalidShape, got: %T", err)
	}
	if shapeErr.QuestionIndex != 0 {
		t.Fatalf("question index = %d, want 0", shapeErr.QuestionIndex)
	}
}

func TestLLMGenerator_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrAPI{StatusCode: 502, Message: "bad gateway"}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *llm.ErrAPI
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ErrAPI, got: %T", err)
	}
}
