package questiongen

import "github.com/Wachary/BioPlus-AI-1.1/internal/llm"

// QuestionBatchSchema defines the JSON schema for question batch responses.
var QuestionBatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "The next assessment question(s) with answer options and progress tracking",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The follow-up question shown to the user",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Five substantive answer options. Do not include an 'Other' option.",
						},
					},
					"required":             []any{"text", "options"},
					"additionalProperties": false,
				},
				"description": "The next question(s) to ask, usually one",
			},
			"assessedAreas": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location":          map[string]any{"type": "boolean"},
					"characterSeverity": map[string]any{"type": "boolean"},
					"timing":            map[string]any{"type": "boolean"},
					"triggers":          map[string]any{"type": "boolean"},
					"riskFactors":       map[string]any{"type": "boolean"},
				},
				"required":             []any{"location", "characterSeverity", "timing", "triggers", "riskFactors"},
				"additionalProperties": false,
				"description":          "Which assessment areas the transcript covers so far",
			},
			"totalPredictedQuestions": map[string]any{
				"type":        "integer",
				"description": "Estimated total number of questions for this assessment",
			},
			"currentQuestionNumber": map[string]any{
				"type":        "integer",
				"description": "One-based position of the question being asked",
			},
			"readyForDiagnosis": map[string]any{
				"type":        "boolean",
				"description": "Whether enough information has been gathered for diagnosis",
			},
		},
		"required":             []any{"questions", "assessedAreas", "totalPredictedQuestions", "currentQuestionNumber", "readyForDiagnosis"},
		"additionalProperties": false,
	},
}

// OptionFillSchema defines the JSON schema for the option-fill follow-up.
var OptionFillSchema = &llm.Schema{
	Name:        "option-fill",
	Description: "Additional answer options for an assessment question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly the requested number of additional options",
			},
		},
		"required":             []any{"options"},
		"additionalProperties": false,
	},
}
