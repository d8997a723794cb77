package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Limits.FreeDaily)
	assert.Equal(t, 50, cfg.Limits.PaidDaily)
	assert.Equal(t, 10, cfg.Scoring.PointsPerCorrect)
	require.Len(t, cfg.Scoring.Bonuses, 3)
	assert.Equal(t, 90, cfg.Scoring.Bonuses[0].Threshold)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
limits:
  free_daily: 5
  paid_daily: 20
scoring:
  points_per_correct: 20
  bonuses:
    - threshold: 100
      points: 100
llm:
  provider: openai
  model: gpt-test
  timeout_seconds: 20
study:
  default_length: long
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Limits.FreeDaily)
	assert.Equal(t, 20, cfg.Scoring.PointsPerCorrect)
	require.Len(t, cfg.Scoring.Bonuses, 1)
	assert.Equal(t, 100, cfg.Scoring.Bonuses[0].Points)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-test", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, "long", cfg.Study.DefaultLength)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("SOLVEUXQ_ADDR", ":7070")
	t.Setenv("SOLVEUXQ_FREE_DAILY_LIMIT", "3")
	t.Setenv("SOLVEUXQ_LLM_MODEL", "env-model")
	t.Setenv("SOLVEUXQ_LLM_TIMEOUT", "30")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Limits.FreeDaily)
	assert.Equal(t, "env-model", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", ":\n  - ]["},
		{"zero limit", "limits:\n  free_daily: 0\n  paid_daily: 50\n"},
		{"zero timeout", "llm:\n  timeout_seconds: 0\n"},
		{"bad length", "study:\n  default_length: epic\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}
