// Package config loads process-wide settings once at startup. The Config
// value is immutable after Load and is passed to constructors rather than
// read from globals, so tests can inject their own.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds every environment-derived setting the service uses.
// Precedence: environment variables over built-in defaults. Variable names
// are the upper-cased field keys, e.g. OLLAMA_URL, MAX_RETRIES.
type Config struct {
	OllamaURL    string `koanf:"ollama_url"`
	OllamaAPIKey string `koanf:"ollama_api_key"`
	Model        string `koanf:"model"`

	// MaxRetries is the total number of model attempts before fallback;
	// RetryDelay is the fixed pause between attempts, in seconds.
	MaxRetries uint `koanf:"max_retries"`
	RetryDelay int  `koanf:"retry_delay"`

	Port           string `koanf:"port"`
	Env            string `koanf:"env"`
	AllowedOrigins string `koanf:"allowed_origins"`

	// ChatRate / ChatBurst parameterize the per-IP limiter on AI endpoints.
	ChatRate  float64 `koanf:"chat_rate"`
	ChatBurst int     `koanf:"chat_burst"`
}

func defaults() Config {
	return Config{
		OllamaURL:  "http://localhost:11434",
		Model:      "llama3.2:latest",
		MaxRetries: 2,
		RetryDelay: 1,
		Port:       "8888",
		ChatRate:   1,
		ChatBurst:  3,
	}
}

// Load builds the configuration from defaults overlaid with environment
// variables and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// OLLAMA_URL -> ollama_url, MAX_RETRIES -> max_retries, etc.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.OllamaURL == "" {
		return fmt.Errorf("ollama_url must not be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxRetries == 0 {
		return fmt.Errorf("max_retries must be at least 1")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative")
	}
	return nil
}

// RetryDelayDuration returns the inter-attempt pause as a duration.
func (c *Config) RetryDelayDuration() time.Duration {
	return time.Duration(c.RetryDelay) * time.Second
}

// Origins splits the comma-separated ALLOWED_ORIGINS value. Empty entries
// are dropped.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// UsingAPIKey reports whether requests carry a bearer token.
func (c *Config) UsingAPIKey() bool {
	return c.OllamaAPIKey != ""
}
