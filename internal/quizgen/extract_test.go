package quizgen

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSON_DirectParse(t *testing.T) {
	raw, err := ExtractJSON(`{"questions":[]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"questions":[]}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_DirectParseWithWhitespace(t *testing.T) {
	raw, err := ExtractJSON("\n  {\"questions\":[]}  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"questions":[]}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_FencedJSONBlock(t *testing.T) {
	content := "Here is your quiz:\n```json\n{\"questions\":[{\"id\":\"q1\"}]}\n```\nEnjoy!"
	raw, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"questions":[{"id":"q1"}]}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_FencedPlainBlock(t *testing.T) {
	content := "```\n{\"questions\":[]}\n```"
	raw, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"questions":[]}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_BraceSubstring(t *testing.T) {
	content := `Sure! The quiz is {"questions":[{"id":"q1"}]} and that is all.`
	raw, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"questions":[{"id":"q1"}]}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	content := `prefix {"a":{"b":{"c":1}}} suffix`
	raw, err := ExtractJSON(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"a":{"b":{"c":1}}}` {
		t.Fatalf("unexpected extraction: %s", raw)
	}
}

func TestExtractJSON_NotJSON(t *testing.T) {
	_, err := ExtractJSON("I'm sorry, I can't generate a quiz right now.")
	if err == nil {
		t.Fatal("expected error")
	}
	var unparseable *ErrUnparseable
	if !errors.As(err, &unparseable) {
		t.Fatalf("expected ErrUnparseable, got: %T", err)
	}
}

func TestExtractJSON_EmptyInput(t *testing.T) {
	_, err := ExtractJSON("")
	if err == nil {
		t.Fatal("expected error")
	}
	var unparseable *ErrUnparseable
	if !errors.As(err, &unparseable) {
		t.Fatalf("expected ErrUnparseable, got: %T", err)
	}
}

func TestExtractJSON_ScalarIsNotAQuiz(t *testing.T) {
	// A bare string is valid JSON but not a usable payload.
	_, err := ExtractJSON(`"hello"`)
	if err == nil {
		t.Fatal("expected error for scalar JSON")
	}
}

func TestExtractJSON_ErrorPreviewIsBounded(t *testing.T) {
	content := strings.Repeat("x", 10_000)
	_, err := ExtractJSON(content)
	if err == nil {
		t.Fatal("expected error")
	}
	var unparseable *ErrUnparseable
	if !errors.As(err, &unparseable) {
		t.Fatalf("expected ErrUnparseable, got: %T", err)
	}
	if len(unparseable.Content) > previewLimit+len("...") {
		t.Fatalf("preview not bounded: %d chars", len(unparseable.Content))
	}
}
