package diagnosis

import (
	"context"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

// Service implements Differ on top of an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// NewService creates a diagnosis service with the given provider and config.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// ComputeDiagnosis runs the full pipeline: vectorize the transcript,
// generate reference profiles, score each candidate, rank, and attach
// recommendations to the ranked matches.
func (s *Service) ComputeDiagnosis(ctx context.Context, responses []assessment.Response) ([]Match, error) {
	if err := assessment.ValidateResponses(responses); err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, &assessment.ErrInvalidInput{Field: "responses", Index: -1, Reason: "must not be empty"}
	}

	userVector := s.vector(responses)

	profiles, err := s.GenerateProfiles(ctx, responses)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(profiles))
	for _, p := range profiles {
		sim := Similarity(userVector, s.vector(p.Responses))
		matches = append(matches, Match{
			Condition:  p.Condition,
			Similarity: sim,
			Confidence: s.config.Confidence.Confidence(sim, responses),
		})
	}

	ranked := Rank(matches, s.config.TopDiagnoses)
	if err := s.attachRecommendations(ctx, ranked, responses); err != nil {
		return nil, err
	}

	return ranked, nil
}
