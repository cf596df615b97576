package llm

import (
	"testing"
)

func TestGeminiModelNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // exact ID
	}
	for _, tt := range tests {
		if got := canonicalModel(tt.name, geminiModels); got != tt.want {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	// Trimmed-down question batch: the shape every structured call in
	// the engine follows (nested objects, string enums, arrays).
	def := map[string]any{
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
			"urgency": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
			"readyForDiagnosis": map[string]any{"type": "boolean"},
		},
		"required": []any{"questions"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(schema.Properties))
	}

	questions := schema.Properties["questions"]
	if questions.Type != "ARRAY" {
		t.Fatalf("questions type = %s, want ARRAY", questions.Type)
	}
	item := questions.Items
	if item.Properties["question"].Type != "STRING" {
		t.Fatalf("question type = %s, want STRING", item.Properties["question"].Type)
	}
	if item.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("options items type = %s, want STRING", item.Properties["options"].Items.Type)
	}
	if len(item.Required) != 2 {
		t.Fatalf("got %d required item fields, want 2", len(item.Required))
	}

	if got := schema.Properties["urgency"].Enum; len(got) != 3 {
		t.Fatalf("got %d enum values, want 3", len(got))
	}
	if schema.Properties["readyForDiagnosis"].Type != "BOOLEAN" {
		t.Fatalf("readyForDiagnosis type = %s, want BOOLEAN", schema.Properties["readyForDiagnosis"].Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "questions" {
		t.Fatalf("required = %v, want [questions]", schema.Required)
	}
}
