package llm

import (
	"context"
	"fmt"

	"github.com/Wachary/BioPlus-AI-1.1/internal/store"
)

// NewProvider builds the configured provider wrapped in the standard
// decorator chain: caller -> timeout -> retry -> logging -> adapter.
// The timeout spans the whole chain, so retries share one deadline.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)
	bounded := WithTimeout(retried, cfg.Timeout)

	return bounded, nil
}

// NewProviderFromEnv builds a provider from BIOPLUS_* environment
// variables, falling back to probing the standard API key variables when
// no explicit provider is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// canonicalModel maps a friendly model name to a provider model ID.
// Unknown names pass through untouched so exact IDs keep working.
func canonicalModel(name string, friendly map[string]string) string {
	if id, ok := friendly[name]; ok {
		return id
	}
	return name
}
