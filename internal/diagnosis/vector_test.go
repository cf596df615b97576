package diagnosis

import (
	"math"
	"testing"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

func testService() *Service {
	return NewService(nil, DefaultConfig())
}

func optionResponse(answer string, options ...string) assessment.Response {
	return assessment.Response{
		Question: "How severe is the pain?",
		Answer:   answer,
		QuestionData: assessment.Question{
			Text:    "How severe is the pain?",
			Options: options,
		},
	}
}

func TestVectorize_ListedAnswers(t *testing.T) {
	s := testService()
	options := []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"}

	// Index position maps to an evenly spaced score in (0,1].
	tests := []struct {
		answer string
		want   float64
	}{
		{"Mild", 1.0 / 6.0},
		{"Moderate", 2.0 / 6.0},
		{"Unbearable", 5.0 / 6.0},
	}
	for _, tt := range tests {
		if got := s.Vectorize(optionResponse(tt.answer, options...)); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Vectorize(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestVectorize_Monotonic(t *testing.T) {
	s := testService()
	options := []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable"}

	prev := 0.0
	for _, answer := range options {
		v := s.Vectorize(optionResponse(answer, options...))
		if v <= prev {
			t.Fatalf("Vectorize(%q) = %v, not greater than %v", answer, v, prev)
		}
		prev = v
	}
}

func TestVectorize_Neutral(t *testing.T) {
	s := testService()
	options := []string{"Mild", "Moderate", "Severe", "Other"}

	if got := s.Vectorize(optionResponse("Other", options...)); got != 0.5 {
		t.Errorf("open-ended answer = %v, want 0.5", got)
	}
	if got := s.Vectorize(optionResponse("A burning sensation", options...)); got != 0.5 {
		t.Errorf("unlisted answer = %v, want 0.5", got)
	}
}
