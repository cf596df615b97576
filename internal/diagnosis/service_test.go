package diagnosis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
	"github.com/Wachary/BioPlus-AI-1.1/internal/llm"
)

func userTranscript() []assessment.Response {
	options := []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"}
	return []assessment.Response{
		{
			Question:     "How severe is the pain?",
			Answer:       "Moderate",
			QuestionData: assessment.Question{Text: "How severe is the pain?", Options: options},
		},
		{
			Question:     "How severe is it at night?",
			Answer:       "Severe",
			QuestionData: assessment.Question{Text: "How severe is it at night?", Options: options},
		},
		{
			Question:     "How severe is it in the morning?",
			Answer:       "Mild",
			QuestionData: assessment.Question{Text: "How severe is it in the morning?", Options: options},
		},
	}
}

func profileJSON(answerSets ...[3]string) json.RawMessage {
	conditions := []string{"Condition A", "Condition B", "Condition C"}
	type respOut struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	type diagOut struct {
		Condition string    `json:"condition"`
		Responses []respOut `json:"responses"`
	}

	questions := []string{
		"How severe is the pain?",
		"How severe is it at night?",
		"How severe is it in the morning?",
	}
	out := struct {
		Diagnoses []diagOut `json:"diagnoses"`
	}{}
	for i, answers := range answerSets {
		d := diagOut{Condition: conditions[i]}
		for j, a := range answers {
			d.Responses = append(d.Responses, respOut{Question: questions[j], Answer: a})
		}
		out.Diagnoses = append(out.Diagnoses, d)
	}
	raw, _ := json.Marshal(out)
	return raw
}

func recJSON() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"recommendations": [
			{"text": "See a healthcare professional to confirm the assessment.", "urgency": "medium"}
		]
	}`)}
}

func TestComputeDiagnosis(t *testing.T) {
	// Condition A mirrors the user exactly; B and C diverge.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: profileJSON(
			[3]string{"Moderate", "Severe", "Mild"},
			[3]string{"Unbearable", "Unbearable", "Severe"},
			[3]string{"Mild", "Mild", "Moderate"},
		)},
		recJSON(), recJSON(), recJSON(),
	)
	svc := NewService(mock, DefaultConfig())

	matches, err := svc.ComputeDiagnosis(context.Background(), userTranscript())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	top := matches[0]
	if top.Condition != "Condition A" {
		t.Errorf("top condition = %q, want the identical profile", top.Condition)
	}
	if math.Abs(top.Similarity-1.0) > 1e-9 {
		t.Errorf("top similarity = %v, want 1.0", top.Similarity)
	}
	if top.Confidence != 100 {
		t.Errorf("top confidence = %d, want 100", top.Confidence)
	}

	for i, m := range matches {
		if i > 0 && m.Confidence > matches[i-1].Confidence {
			t.Errorf("matches not sorted: %d after %d", m.Confidence, matches[i-1].Confidence)
		}
		if len(m.Recommendations) == 0 {
			t.Errorf("match %q missing recommendations", m.Condition)
		}
	}

	// One profile call plus one recommendation call per match.
	if mock.CallCount() != 4 {
		t.Errorf("expected 4 provider calls, got %d", mock.CallCount())
	}
}

func TestComputeDiagnosis_ProfileErrors(t *testing.T) {
	twoConditions := profileJSON(
		[3]string{"Moderate", "Severe", "Mild"},
		[3]string{"Mild", "Mild", "Mild"},
	)

	shortResponses := json.RawMessage(`{"diagnoses": [
		{"condition": "A", "responses": [{"question": "q", "answer": "Mild"}]},
		{"condition": "B", "responses": [{"question": "q", "answer": "Mild"}]},
		{"condition": "C", "responses": [{"question": "q", "answer": "Mild"}]}
	]}`)

	emptyCondition := json.RawMessage(fmt.Sprintf(`{"diagnoses": [
		{"condition": "", "responses": %s},
		{"condition": "B", "responses": %s},
		{"condition": "C", "responses": %s}
	]}`,
		`[{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"}]`,
		`[{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"}]`,
		`[{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"},{"question":"q","answer":"Mild"}]`))

	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider failure", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"provider deadline expired", llm.MockResponse{Err: &llm.ErrTimeout{Limit: time.Second, Err: context.DeadlineExceeded}}},
		{"malformed JSON", llm.MockResponse{Content: json.RawMessage(`not json`)}},
		{"wrong condition count", llm.MockResponse{Content: twoConditions}},
		{"length mismatch", llm.MockResponse{Content: shortResponses}},
		{"empty condition", llm.MockResponse{Content: emptyCondition}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			svc := NewService(mock, DefaultConfig())

			matches, err := svc.ComputeDiagnosis(context.Background(), userTranscript())
			if matches != nil {
				t.Error("no partial ranking on failure")
			}
			var perr *ErrProfile
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ErrProfile, got %T: %v", err, err)
			}
		})
	}
}

func TestComputeDiagnosis_RecommendationFailureAborts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: profileJSON(
			[3]string{"Moderate", "Severe", "Mild"},
			[3]string{"Unbearable", "Unbearable", "Severe"},
			[3]string{"Mild", "Mild", "Moderate"},
		)},
		recJSON(),
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		recJSON(),
	)
	svc := NewService(mock, DefaultConfig())

	matches, err := svc.ComputeDiagnosis(context.Background(), userTranscript())
	if matches != nil {
		t.Error("no partial ranking when a recommendation call fails")
	}
	var perr *ErrProfile
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ErrProfile, got %T: %v", err, err)
	}
}

func TestComputeDiagnosis_InvalidInput(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.ComputeDiagnosis(context.Background(), nil)
	var inv *assessment.ErrInvalidInput
	if !errors.As(err, &inv) {
		t.Fatalf("expected *assessment.ErrInvalidInput, got %T: %v", err, err)
	}
	if mock.CallCount() != 0 {
		t.Error("invalid input must not reach the provider")
	}
}
