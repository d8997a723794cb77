package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openrouter", "openai", "anthropic", "gemini", "mock"
	Provider string

	OpenRouter OpenRouterConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 45s.
	Timeout time.Duration
}

// OpenRouterConfig holds OpenRouter-specific configuration. OpenRouter is
// the default provider; quiz generation was built against it.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-pro-exp-03-25:free"
	BaseURL string // Default: "https://openrouter.ai/api/v1"

	// SiteURL and SiteName populate OpenRouter's attribution headers
	// (HTTP-Referer and X-Title).
	SiteURL  string
	SiteName string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openrouter",
		OpenRouter: OpenRouterConfig{
			Model:    "google/gemini-2.5-pro-exp-03-25:free",
			SiteURL:  "https://solveuxq.vercel.app",
			SiteName: "SolveUXQ",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// Selection is the provider and model choice carried in the application
// config file. Environment variables override it; API keys stay env-only.
type Selection struct {
	Provider string
	Model    string
}

// ConfigFromEnv builds a Config by layering the file selection and then
// environment variables over the defaults.
func ConfigFromEnv(sel Selection) Config {
	cfg := DefaultConfig()

	if sel.Provider != "" {
		cfg.Provider = sel.Provider
	}
	if p := os.Getenv("SOLVEUXQ_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if sel.Model != "" {
		// The file's single model key applies to whichever provider won.
		cfg.setModel(cfg.Provider, sel.Model)
	}

	if k := os.Getenv("SOLVEUXQ_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("SOLVEUXQ_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if k := os.Getenv("SOLVEUXQ_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("SOLVEUXQ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("SOLVEUXQ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("SOLVEUXQ_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("SOLVEUXQ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("SOLVEUXQ_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("SOLVEUXQ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// setModel sets the model for the named provider.
func (c *Config) setModel(provider, model string) {
	switch provider {
	case "openrouter":
		c.OpenRouter.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	case "gemini":
		c.Gemini.Model = model
	}
}

// DiscoverConfig probes standard API key env vars in priority order
// (OpenRouter → Gemini → OpenAI → Anthropic) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("SOLVEUXQ_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("SOLVEUXQ_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("SOLVEUXQ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("SOLVEUXQ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
