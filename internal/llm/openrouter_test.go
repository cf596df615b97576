package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("vendor-prefixed models pass through", func(t *testing.T) {
		models := []string{
			"google/gemini-2.0-flash-exp",
			"anthropic/claude-3-haiku",
			"meta-llama/llama-3-8b",
		}
		for _, model := range models {
			p, err := NewOpenRouterProvider(OpenRouterConfig{
				APIKey: "sk-or-test",
				Model:  model,
			})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", model, err)
			}
			if p.ModelID() != model {
				t.Errorf("model = %q, want %q", p.ModelID(), model)
			}
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: "https://proxy.internal.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
