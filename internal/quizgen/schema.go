package quizgen

import "github.com/solveuxq/solveuxq/internal/llm"

// QuizSchema defines the JSON schema a generated quiz payload must satisfy.
// It is applied to the extracted JSON, not passed to the provider: the
// free-tier models used for generation ignore structured output requests.
var QuizSchema = &llm.Schema{
	Name:        "generated-quiz",
	Description: "A multiple-choice quiz with one correct answer per question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Question identifier, e.g. \"q1\"",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the user",
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":   map[string]any{"type": "string"},
									"text": map[string]any{"type": "string"},
								},
								"required": []any{"id", "text"},
							},
							"description": "Selectable answers; IDs unique within the question",
						},
						"correctOptionId": map[string]any{
							"type":        "string",
							"description": "ID of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief explanation shown after answering",
						},
					},
					"required": []any{"id", "text", "options", "correctOptionId"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
