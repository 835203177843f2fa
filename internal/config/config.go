// Package config holds AfriDesk configuration: YAML file with environment
// overrides, defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderAPIKey is the sample value shipped in .env templates. It is
// treated exactly like an absent credential so a copied template never
// triggers a doomed network call.
const PlaceholderAPIKey = "your_gemini_api_key_here"

// Config holds all AfriDesk configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Server  ServerConfig  `yaml:"server"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// GeminiConfig configures the generative-AI backend.
type GeminiConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	ChatModel string `yaml:"chat_model"`
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
}

// SessionConfig configures the in-memory session store.
type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "AfriDesk",
		Version: "1.0.0",

		Server: ServerConfig{
			Addr:            "0.0.0.0:8080",
			ShutdownTimeout: "10s",
		},

		Gemini: GeminiConfig{
			Model:     "gemini-1.5-pro-latest",
			ChatModel: "gemini-1.5-pro-latest",
			BaseURL:   "https://generativelanguage.googleapis.com/v1beta",
			Timeout:   "30s",
		},

		Session: SessionConfig{
			TTL: "24h",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if url := os.Getenv("GEMINI_BASE_URL"); url != "" {
		c.Gemini.BaseURL = url
	}
	if addr := os.Getenv("AFRIDESK_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// HasCredential reports whether a usable Gemini key is configured. The
// placeholder sentinel counts as absent.
func (c *Config) HasCredential() bool {
	key := strings.TrimSpace(c.Gemini.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

// GetGeminiTimeout returns the Gemini call timeout as a duration.
func (c *Config) GetGeminiTimeout() time.Duration {
	return c.Gemini.GetTimeout()
}

// GetTimeout returns the configured call timeout, defaulting to 30s.
func (g GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(g.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetSessionTTL returns the session lifetime as a duration.
func (c *Config) GetSessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Session.TTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown window.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
