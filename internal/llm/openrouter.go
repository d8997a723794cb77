package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is
// reused; model IDs pass through unmapped ("google/gemini-2.5-pro-exp-03-25:free").
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	oaiCfg := OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	var transport http.RoundTripper
	if cfg.SiteURL != "" || cfg.SiteName != "" {
		transport = &attributionTransport{
			siteURL:  cfg.SiteURL,
			siteName: cfg.SiteName,
			base:     http.DefaultTransport,
		}
	}

	inner, err := newOpenAIProvider(oaiCfg, cfg.Model, transport)
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds OpenRouter's optional attribution headers
// (HTTP-Referer, X-Title) to every request.
type attributionTransport struct {
	siteURL  string
	siteName string
	base     http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.siteURL != "" {
		clone.Header.Set("HTTP-Referer", t.siteURL)
	}
	if t.siteName != "" {
		clone.Header.Set("X-Title", t.siteName)
	}
	return t.base.RoundTrip(clone)
}
