package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A test question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":            map[string]any{"type": "string"},
				"correctOptionId": map[string]any{"type": "string", "enum": []any{"a", "b", "c", "d"}},
				"points":          map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"text", "correctOptionId"},
		},
	}
}

func TestValidate_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"text":"Which heuristic?","correctOptionId":"b","points":10}`)
	if err := Validate(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"Which heuristic?","correctOptionId":"a"}`)
	if err := Validate(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"Which heuristic?"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"Which heuristic?","correctOptionId":"a","points":"ten"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"text":"Which heuristic?","correctOptionId":"z"}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := Validate(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := Validate(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidate_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "options"},
		},
	}

	valid := json.RawMessage(`{"question":{"text":"Pick one"},"options":["a","b","c"]}`)
	if err := Validate(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"question":{"text":"Pick one"},"options":[1,2]}`)
	if err := Validate(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
