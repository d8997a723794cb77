package llm

import "testing"

func TestConfigFromEnv_FileSelection(t *testing.T) {
	t.Setenv("SOLVEUXQ_LLM_PROVIDER", "")
	t.Setenv("SOLVEUXQ_OPENAI_MODEL", "")

	cfg := ConfigFromEnv(Selection{Provider: "openai", Model: "gpt-test"})
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-test" {
		t.Fatalf("model = %q, want gpt-test", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("SOLVEUXQ_LLM_PROVIDER", "anthropic")
	t.Setenv("SOLVEUXQ_ANTHROPIC_MODEL", "claude-test")

	cfg := ConfigFromEnv(Selection{Provider: "openai", Model: "gpt-test"})
	if cfg.Provider != "anthropic" {
		t.Fatalf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-test" {
		t.Fatalf("model = %q, want claude-test", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnv_FileModelFollowsProvider(t *testing.T) {
	// The file's single model key applies to the provider that wins,
	// even when the provider comes from the environment.
	t.Setenv("SOLVEUXQ_LLM_PROVIDER", "gemini")
	t.Setenv("SOLVEUXQ_GEMINI_MODEL", "")

	cfg := ConfigFromEnv(Selection{Model: "gemini-test"})
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-test" {
		t.Fatalf("model = %q, want gemini-test", cfg.Gemini.Model)
	}
}

func TestConfigFromEnv_EmptySelectionKeepsDefaults(t *testing.T) {
	t.Setenv("SOLVEUXQ_LLM_PROVIDER", "")
	t.Setenv("SOLVEUXQ_OPENROUTER_MODEL", "")

	cfg := ConfigFromEnv(Selection{})
	def := DefaultConfig()
	if cfg.Provider != def.Provider {
		t.Fatalf("provider = %q, want default %q", cfg.Provider, def.Provider)
	}
	if cfg.OpenRouter.Model != def.OpenRouter.Model {
		t.Fatalf("model = %q, want default %q", cfg.OpenRouter.Model, def.OpenRouter.Model)
	}
}
