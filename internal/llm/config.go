package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds the provider selection and per-provider settings.
type Config struct {
	// Provider selects the backing LLM service.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including its retries.
	// On expiry the call surfaces as ErrTimeout. Default: 30s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific settings.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific settings.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig tunes the backoff schedule for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults used when the environment sets
// nothing beyond an API key.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays BIOPLUS_* environment variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "BIOPLUS_LLM_PROVIDER")

	setFromEnv(&cfg.Anthropic.APIKey, "BIOPLUS_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "BIOPLUS_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "BIOPLUS_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "BIOPLUS_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "BIOPLUS_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "BIOPLUS_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "BIOPLUS_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "BIOPLUS_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "BIOPLUS_OPENROUTER_MODEL")

	if v := os.Getenv("BIOPLUS_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the standard API key variables in priority order
// (Gemini, then OpenAI, Anthropic, OpenRouter) and returns a Config for
// the first provider whose key is present.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envKey string
		apply  func(cfg *Config, key string)
	}{
		{"GEMINI_API_KEY", func(cfg *Config, k string) { cfg.Provider = "gemini"; cfg.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", func(cfg *Config, k string) { cfg.Provider = "openai"; cfg.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", func(cfg *Config, k string) { cfg.Provider = "anthropic"; cfg.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", func(cfg *Config, k string) { cfg.Provider = "openrouter"; cfg.OpenRouter.APIKey = k }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envKey); k != "" {
			cfg := DefaultConfig()
			p.apply(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("BIOPLUS_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("BIOPLUS_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("BIOPLUS_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("BIOPLUS_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// Keyless.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
