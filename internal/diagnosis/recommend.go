package diagnosis

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

// recommendationOutput is the raw LLM response.
type recommendationOutput struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// GenerateRecommendations produces the recommendation list for one
// matched condition.
func (s *Service) GenerateRecommendations(ctx context.Context, condition string, responses []assessment.Response) ([]Recommendation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRecommend)

	req := llm.Request{
		System: recommendationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRecommendationMessage(condition, responses)},
		},
		Schema:      RecommendationSchema,
		MaxTokens:   s.config.RecommendationMaxTokens,
		Temperature: s.config.RecommendationTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrProfile{Reason: "recommendation call", Err: err}
	}

	var raw recommendationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrProfile{Reason: "malformed recommendation output", Err: err}
	}

	return raw.Recommendations, nil
}

// attachRecommendations fills in recommendations for every ranked match.
// The calls are independent of each other and run concurrently, fail-fast:
// one failure cancels the rest and aborts the diagnosis.
func (s *Service) attachRecommendations(ctx context.Context, matches []Match, responses []assessment.Response) error {
	g, gctx := errgroup.WithContext(ctx)

	for i := range matches {
		g.Go(func() error {
			recs, err := s.GenerateRecommendations(gctx, matches[i].Condition, responses)
			if err != nil {
				return err
			}
			matches[i].Recommendations = recs
			return nil
		})
	}

	return g.Wait()
}
