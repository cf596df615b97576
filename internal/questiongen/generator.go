package questiongen

import (
	"context"
	"encoding/json"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

// openEndedOption mirrors the fixed label appended to every option list.
const openEndedOption = assessment.OpenEndedOption

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before normalization.
type batchOutput struct {
	Questions []struct {
		Text    string   `json:"text"`
		Options []string `json:"options"`
	} `json:"questions"`
	TotalPredictedQuestions int  `json:"totalPredictedQuestions"`
	CurrentQuestionNumber   int  `json:"currentQuestionNumber"`
	ReadyForDiagnosis       bool `json:"readyForDiagnosis"`
}

// Next produces the next question batch for the given input.
//
// Coverage, readiness, and progress are recomputed from the transcript and
// override whatever the model reported; the model's own values are
// advisory only. On any upstream failure no partial result is returned.
func (g *LLMGenerator) Next(ctx context.Context, input Input) (*Result, error) {
	if err := assessment.ValidateResponses(input.Responses); err != nil {
		return nil, err
	}

	areas := assessment.ComputeAreas(input.Responses)
	ready := input.Phase == assessment.PhaseDetailed &&
		assessment.IsReadyForDiagnosis(input.Responses, areas, g.config.Readiness)

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System:      buildSystemPrompt(input, areas, ready),
		Messages:    buildMessages(input, areas),
		Schema:      QuestionBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrGeneration{Reason: "provider call", Err: err}
	}
	if len(resp.Content) == 0 {
		return nil, &ErrGeneration{Reason: "empty completion content"}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrGeneration{Reason: "malformed completion output", Err: err}
	}
	if len(raw.Questions) == 0 {
		return nil, &ErrGeneration{Reason: "response missing questions"}
	}

	questions := make([]assessment.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if q.Text == "" {
			return nil, &ErrGeneration{Reason: "question with empty text"}
		}
		questions = append(questions, assessment.Question{
			Text:    q.Text,
			Options: g.normalizeOptions(ctx, q.Text, q.Options),
		})
	}

	result := &Result{
		Questions:         questions,
		ReadyForDiagnosis: ready,
	}
	if input.Phase == assessment.PhaseDetailed {
		result.TotalPredictedQuestions = g.config.DetailedPredictedTotal
		result.CurrentQuestionNumber = min(len(input.Responses), g.config.DetailedPredictedTotal)
	} else {
		result.TotalPredictedQuestions = g.config.InitialPredictedTotal
		result.CurrentQuestionNumber = areas.CoveredCount()
		result.AssessedAreas = &areas
	}

	return result, nil
}
