package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the assessment engine talks to for
// language model completions.
type Provider interface {
	// Generate sends one request and returns the completion. When the
	// request carries a Schema, Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is configured for.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints for the call.
	System string

	// Messages is the conversation so far. Question generation replays
	// the whole assessment transcript here; profile and recommendation
	// calls are single-turn.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the result. When nil, Content is
	// the raw completion text.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0.0, 1.0]. Zero value means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape a structured completion must take.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case, e.g.
	// "question-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the completion returned by a Provider.
type Response struct {
	// Content is the completion. Validated JSON when the request set a
	// Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for the call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage holds per-call token counts.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
