package diagnosis

import (
	"context"
	"encoding/json"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

// profileOutput is the raw LLM response before validation.
type profileOutput struct {
	Diagnoses []struct {
		Condition string `json:"condition"`
		Responses []struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"responses"`
	} `json:"diagnoses"`
}

// GenerateProfiles asks the model for the candidate conditions and their
// simulated transcripts, then validates shape strictly: exactly
// ProfileCount conditions, each non-empty, each with one answer per asked
// question. The simulated responses reuse the user's QuestionData, never
// model-invented options, so both transcripts vectorize in the same space.
func (s *Service) GenerateProfiles(ctx context.Context, responses []assessment.Response) ([]ReferenceProfile, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeProfiles)

	req := llm.Request{
		System: profileSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildProfileMessage(responses)},
		},
		Schema:      ProfileSchema,
		MaxTokens:   s.config.ProfileMaxTokens,
		Temperature: s.config.ProfileTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrProfile{Reason: "provider call", Err: err}
	}

	var raw profileOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ErrProfile{Reason: "malformed completion output", Err: err}
	}
	if len(raw.Diagnoses) != s.config.ProfileCount {
		return nil, &ErrProfile{
			Reason: "wrong condition count",
		}
	}

	profiles := make([]ReferenceProfile, 0, len(raw.Diagnoses))
	for _, d := range raw.Diagnoses {
		if d.Condition == "" {
			return nil, &ErrProfile{Reason: "empty condition name"}
		}
		if len(d.Responses) != len(responses) {
			return nil, &ErrProfile{Reason: "response count mismatch"}
		}

		simulated := make([]assessment.Response, len(d.Responses))
		for i, r := range d.Responses {
			simulated[i] = assessment.Response{
				Question:     responses[i].Question,
				Answer:       r.Answer,
				QuestionData: responses[i].QuestionData,
			}
		}
		profiles = append(profiles, ReferenceProfile{
			Condition: d.Condition,
			Responses: simulated,
		})
	}

	return profiles, nil
}
