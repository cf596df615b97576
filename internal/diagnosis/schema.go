package diagnosis

import "github.com/Wachary/BioPlus-AI-1.1/internal/llm"

// ProfileSchema defines the JSON schema for reference-profile responses.
var ProfileSchema = &llm.Schema{
	Name:        "reference-profiles",
	Description: "Candidate conditions with simulated patient answers to the same questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnoses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"condition": map[string]any{
							"type":        "string",
							"description": "Name of the candidate condition",
						},
						"responses": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"question": map[string]any{"type": "string"},
									"answer":   map[string]any{"type": "string"},
								},
								"required":             []any{"question", "answer"},
								"additionalProperties": false,
							},
							"description": "One answer per question asked, in the same order, chosen from that question's options",
						},
					},
					"required":             []any{"condition", "responses"},
					"additionalProperties": false,
				},
				"description": "Exactly three candidate conditions",
			},
		},
		"required":             []any{"diagnoses"},
		"additionalProperties": false,
	},
}

// RecommendationSchema defines the JSON schema for per-condition
// recommendation responses.
var RecommendationSchema = &llm.Schema{
	Name:        "recommendations",
	Description: "Actionable recommendations for a matched condition, graded by urgency",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The recommendation shown to the user",
						},
						"urgency": map[string]any{
							"type":        "string",
							"enum":        []any{"low", "medium", "high"},
							"description": "How urgently the user should act on it",
						},
					},
					"required":             []any{"text", "urgency"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"recommendations"},
		"additionalProperties": false,
	},
}
