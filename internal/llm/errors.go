package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrTimeout indicates the request exceeded its deadline. Distinct from
// transport and API errors so callers can offer a targeted retry hint.
type ErrTimeout struct {
	After time.Duration
	Err   error
}

func (e *ErrTimeout) Error() string {
	if e.After > 0 {
		return fmt.Sprintf("LLM request timed out after %s", e.After)
	}
	return "LLM request timed out"
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrAPI indicates the upstream API returned a non-2xx response. Message
// carries the upstream error message when the error body was parseable,
// otherwise the raw body text.
type ErrAPI struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ErrAPI) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

func (e *ErrAPI) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates a 2xx response whose payload did not have
// the expected shape (e.g. no choices, no message content).
type ErrMalformedResponse struct {
	Detail string
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("could not extract content from API response: %s", e.Detail)
}

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
