package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_DrainsQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"questions":[{"question":"Where is the pain located?"}]}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"options":["Sharp","Dull"]}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "first"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"questions":[{"question":"Where is the pain located?"}]}` {
		t.Fatalf("unexpected first content: %s", first.Content)
	}
	if first.Usage.InputTokens != 10 {
		t.Fatalf("input tokens = %d, want 10", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want %q", first.StopReason, "end")
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "second"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"options":["Sharp","Dull"]}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RecordsCallsAndPurposes(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	ctx := WithPurpose(context.Background(), PurposeQuestionGen)
	_, _ = mock.Generate(ctx, Request{
		System:   "You are a medical assessment assistant.",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	_, _ = mock.Generate(context.Background(), Request{})

	if mock.CallCount() != 2 {
		t.Fatalf("call count = %d, want 2", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a medical assessment assistant." {
		t.Fatalf("unexpected recorded system prompt: %q", mock.Calls[0].System)
	}
	if mock.Purposes[0] != PurposeQuestionGen {
		t.Fatalf("purpose = %q, want %q", mock.Purposes[0], PurposeQuestionGen)
	}
	if mock.Purposes[1] != "unknown" {
		t.Fatalf("untagged purpose = %q, want %q", mock.Purposes[1], "unknown")
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("model = %q, want %q", got, "mock")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged purpose = %q, want %q", p, "unknown")
	}
	ctx = WithPurpose(ctx, PurposeProfiles)
	if p := PurposeFrom(ctx); p != PurposeProfiles {
		t.Fatalf("purpose = %q, want %q", p, PurposeProfiles)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "oracle"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Timeout(t *testing.T) {
	t.Setenv("BIOPLUS_LLM_TIMEOUT", "45s")
	if got := ConfigFromEnv().Timeout.Seconds(); got != 45 {
		t.Fatalf("timeout = %vs, want 45s", got)
	}

	t.Setenv("BIOPLUS_LLM_TIMEOUT", "not-a-duration")
	if got := ConfigFromEnv().Timeout; got != DefaultConfig().Timeout {
		t.Fatalf("unparseable timeout should keep the default, got %v", got)
	}
}
