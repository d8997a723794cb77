package llm

import (
	"net/http"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.5-pro-exp-03-25:free",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.5-pro-exp-03-25:free" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.5-pro-exp-03-25:free")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp:free",
		})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "anthropic/claude-3-haiku",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-3-haiku")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp:free",
			BaseURL: "https://custom.openrouter.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}

type captureTransport struct {
	req *http.Request
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.req = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestAttributionTransport_SetsHeaders(t *testing.T) {
	capture := &captureTransport{}
	transport := &attributionTransport{
		siteURL:  "https://solveuxq.vercel.app",
		siteName: "SolveUXQ",
		base:     capture,
	}

	req, err := http.NewRequest(http.MethodPost, "https://openrouter.ai/api/v1/chat/completions", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := transport.RoundTrip(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := capture.req.Header.Get("HTTP-Referer"); got != "https://solveuxq.vercel.app" {
		t.Errorf("HTTP-Referer = %q, want site URL", got)
	}
	if got := capture.req.Header.Get("X-Title"); got != "SolveUXQ" {
		t.Errorf("X-Title = %q, want %q", got, "SolveUXQ")
	}
	// Original request must not be mutated.
	if req.Header.Get("HTTP-Referer") != "" {
		t.Error("original request was mutated")
	}
}
