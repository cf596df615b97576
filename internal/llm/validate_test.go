package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// answerSchema is a cut-down reference-profile response: one answered
// question with a bounded urgency.
func answerSchema() *Schema {
	return &Schema{
		Name:        "scored-answer",
		Description: "One answered assessment question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string"},
				"answer":     map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"urgency":    map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete object", `{"question":"How severe is the pain?","answer":"Moderate","confidence":70,"urgency":"low"}`, false},
		{"optional fields absent", `{"question":"When did it start?","answer":"Last week"}`, false},
		{"missing required answer", `{"question":"When did it start?"}`, true},
		{"wrong confidence type", `{"question":"Q","answer":"A","confidence":"high"}`, true},
		{"urgency outside enum", `{"question":"Q","answer":"A","urgency":"critical"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(answerSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text, not JSON`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NestedBatch(t *testing.T) {
	schema := &Schema{
		Name:        "nested-batch",
		Description: "Question batch nesting",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
						},
						"required": []any{"question", "options"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"Where is the pain?","options":["Head","Chest"]}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"Where is the pain?","options":[1,2]}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for non-string options")
	}
}

func TestFinalizeContent(t *testing.T) {
	schema := answerSchema()
	good := json.RawMessage(`{"question":"Q","answer":"A"}`)

	t.Run("no schema passes anything", func(t *testing.T) {
		content, err := finalizeContent(Request{}, json.RawMessage(`free text`), "end")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(content) != `free text` {
			t.Fatalf("unexpected content: %s", content)
		}
	})

	t.Run("truncation beats validation", func(t *testing.T) {
		// Even well-formed JSON is rejected when the completion hit
		// the token limit; the rest of it is missing.
		_, err := finalizeContent(Request{Schema: schema}, good, "max_tokens")
		var maxTok *ErrMaxTokensExceeded
		if !errors.As(err, &maxTok) {
			t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
		}
	})

	t.Run("valid structured output", func(t *testing.T) {
		content, err := finalizeContent(Request{Schema: schema}, good, "end")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(content) != string(good) {
			t.Fatalf("unexpected content: %s", content)
		}
	})

	t.Run("schema miss", func(t *testing.T) {
		_, err := finalizeContent(Request{Schema: schema}, json.RawMessage(`{"question":"Q"}`), "end")
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
		}
	})
}
