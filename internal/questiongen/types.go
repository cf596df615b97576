package questiongen

import (
	"context"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

// Input holds all context needed to produce the next question batch.
type Input struct {
	// Category is the onboarding category the user picked
	// (e.g. "I am feeling...").
	Category string

	// Symptom is the symptom selected within the category.
	Symptom string

	// Responses is the full ordered transcript so far. Coverage, readiness,
	// and progress are all recomputed from it on every call.
	Responses []assessment.Response

	// Phase selects the behavioral guidance sent to the model.
	Phase assessment.Phase
}

// Result is a validated, normalized question batch.
type Result struct {
	// Questions each carry exactly five substantive options plus the fixed
	// open-ended option, regardless of what the model returned.
	Questions []assessment.Question `json:"questions"`

	// AssessedAreas is populated during the initial phase only, for
	// progress display.
	AssessedAreas *assessment.Areas `json:"assessedAreas,omitempty"`

	TotalPredictedQuestions int  `json:"totalPredictedQuestions"`
	CurrentQuestionNumber   int  `json:"currentQuestionNumber"`
	ReadyForDiagnosis       bool `json:"readyForDiagnosis"`
}

// Generator produces assessment questions using an LLM provider.
type Generator interface {
	// Next produces the next question batch for the given input. The
	// returned batch is normalized; on any upstream failure the error is a
	// *ErrGeneration and no partial result is returned.
	Next(ctx context.Context, input Input) (*Result, error)
}
