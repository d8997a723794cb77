// Package config loads the application configuration from an optional
// YAML file with environment overrides. Policy constants (scoring, daily
// limits, generation timeout) live here so every surface behaves
// identically.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/solveuxq/solveuxq/internal/scoring"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	DB      DBConfig       `yaml:"db"`
	Scoring scoring.Policy `yaml:"scoring"`
	Limits  LimitsConfig   `yaml:"limits"`
	LLM     LLMConfig      `yaml:"llm"`
	Study   StudyConfig    `yaml:"study"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DBConfig holds database settings.
type DBConfig struct {
	// Path is the SQLite file path. Empty means the default data dir.
	Path string `yaml:"path"`
}

// LimitsConfig holds the per-plan daily quiz generation limits.
type LimitsConfig struct {
	FreeDaily int `yaml:"free_daily"`
	PaidDaily int `yaml:"paid_daily"`
}

// LLMConfig holds the subset of LLM settings that belong in the config
// file. API keys are env-only and never written to disk.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// TimeoutSeconds bounds a single generation request end to end,
	// for quiz and study generation alike.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the generation timeout as a duration.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StudyConfig holds study material generation settings.
type StudyConfig struct {
	// DefaultLength is the length preset used when none is given:
	// short, medium, or long.
	DefaultLength string `yaml:"default_length"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080"},
		Scoring: scoring.DefaultPolicy(),
		Limits:  LimitsConfig{FreeDaily: 10, PaidDaily: 50},
		LLM:     LLMConfig{TimeoutSeconds: 45},
		Study:   StudyConfig{DefaultLength: "medium"},
	}
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error; defaults apply. Environment
// variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// defaultPath is $XDG_CONFIG_HOME/solveuxq/config.yaml, falling back to
// ~/.config.
func defaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "solveuxq", "config.yaml")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SOLVEUXQ_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SOLVEUXQ_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("SOLVEUXQ_FREE_DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.FreeDaily = n
		}
	}
	if v := os.Getenv("SOLVEUXQ_PAID_DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.PaidDaily = n
		}
	}
	if v := os.Getenv("SOLVEUXQ_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("SOLVEUXQ_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("SOLVEUXQ_LLM_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LLM.TimeoutSeconds = n
		}
	}
}

func (c Config) validate() error {
	if c.Scoring.PointsPerCorrect < 0 {
		return fmt.Errorf("scoring.points_per_correct must not be negative")
	}
	if c.Limits.FreeDaily <= 0 || c.Limits.PaidDaily <= 0 {
		return fmt.Errorf("daily limits must be positive")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive")
	}
	switch c.Study.DefaultLength {
	case "short", "medium", "long":
	default:
		return fmt.Errorf("study.default_length must be short, medium, or long (got %q)", c.Study.DefaultLength)
	}
	return nil
}
