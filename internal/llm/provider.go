package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction. Quiz and study
// material generation both go through it.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response.
	// When the request carries a Schema, the provider asks for structured
	// output and validates the result against it; otherwise Content holds
	// the assistant's raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Empty for single-turn generation where
	// the instruction lives in the user message (the common case here).
	System string

	// Messages is the conversation. Quiz generation sends one user message.
	Messages []Message

	// Schema, when set, instructs the provider to use its native
	// structured-output mechanism and validates the response against it.
	// When nil the response Content is the raw assistant text; callers are
	// expected to recover JSON from it themselves (free-tier OpenRouter
	// models do not reliably honor structured output).
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines a JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI,
	// tool name for Anthropic). Kebab-case, e.g. "quiz".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// provided, raw assistant text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a string.
func (r *Response) Text() string {
	return string(r.Content)
}
