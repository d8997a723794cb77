package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/solveuxq/solveuxq/internal/llm"
	"github.com/solveuxq/solveuxq/internal/quiz"
)

// Generator produces quizzes for a category and difficulty.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*quiz.Quiz, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a quiz for the given input context. The request is
// sent without a schema; the raw response goes through JSON extraction,
// schema validation, and shape validation before a quiz is returned.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz_generation")

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	extracted, err := ExtractJSON(resp.Text())
	if err != nil {
		return nil, err
	}

	if err := llm.Validate(QuizSchema, extracted); err != nil {
		return nil, err
	}

	var out quizOutput
	if err := json.Unmarshal(extracted, &out); err != nil {
		return nil, fmt.Errorf("failed to parse quiz payload: %w", err)
	}

	if err := validateShape(&out, input.Difficulty.QuestionCount()); err != nil {
		return nil, err
	}

	return buildQuiz(input, &out), nil
}

// buildQuiz converts a validated payload into the domain quiz type.
func buildQuiz(input GenerateInput, out *quizOutput) *quiz.Quiz {
	questions := make([]quiz.Question, len(out.Questions))
	for i, q := range out.Questions {
		id := q.ID
		if id == "" {
			id = fmt.Sprintf("q%d", i+1)
		}
		options := make([]quiz.Option, len(q.Options))
		for j, o := range q.Options {
			options[j] = quiz.Option{ID: o.ID, Text: o.Text}
		}
		questions[i] = quiz.Question{
			ID:              id,
			Text:            q.Text,
			Options:         options,
			CorrectOptionID: q.CorrectOptionID,
			Explanation:     q.Explanation,
		}
	}

	return &quiz.Quiz{
		ID:            uuid.NewString(),
		Title:         fmt.Sprintf("%s Quiz", input.Category),
		Difficulty:    input.Difficulty.Level(),
		QuestionCount: len(questions),
		Questions:     questions,
	}
}
