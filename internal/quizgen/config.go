package quizgen

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Kept low
	// so the model sticks to the requested JSON shape.
	Temperature float64

	// Timeout bounds a single generation request end to end.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   3000,
		Temperature: 0.3,
		Timeout:     45 * time.Second,
	}
}
