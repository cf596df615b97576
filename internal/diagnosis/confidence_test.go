package diagnosis

import (
	"testing"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

func TestBaselinePolicy(t *testing.T) {
	p := BaselinePolicy{Baseline: 50, Scale: 50}

	tests := []struct {
		similarity float64
		want       int
	}{
		{1.0, 100},
		{0.5, 75},
		{0.0, 50},
		{-1.0, 0},   // clamped
		{1.5, 100},  // clamped
		{0.333, 67}, // rounded
	}
	for _, tt := range tests {
		if got := p.Confidence(tt.similarity, nil); got != tt.want {
			t.Errorf("Confidence(%v) = %d, want %d", tt.similarity, got, tt.want)
		}
	}
}

func TestBaselinePolicy_AlwaysClamped(t *testing.T) {
	p := BaselinePolicy{Baseline: 50, Scale: 50}
	for sim := -1.0; sim <= 1.0; sim += 0.05 {
		got := p.Confidence(sim, nil)
		if got < 0 || got > 100 {
			t.Fatalf("Confidence(%v) = %d out of [0,100]", sim, got)
		}
	}
}

func weightedPolicy() WeightedPolicy {
	return WeightedPolicy{
		Baseline:     BaselinePolicy{Baseline: 50, Scale: 50},
		Readiness:    assessment.DefaultConfig(),
		HedgedWeight: 0.6,
	}
}

func cleanTranscript(n int) []assessment.Response {
	options := []string{"Mild", "Moderate", "Significant", "Severe", "Unbearable", "Other"}
	out := make([]assessment.Response, n)
	for i := range out {
		out[i] = optionResponse("Moderate", options...)
	}
	return out
}

func TestWeightedPolicy_CleanFullTranscript(t *testing.T) {
	p := weightedPolicy()
	// All three fractions are 1, so the weighted score equals baseline.
	got := p.Confidence(1.0, cleanTranscript(8))
	if got != 100 {
		t.Errorf("Confidence = %d, want 100", got)
	}
}

func TestWeightedPolicy_PenalizesHedging(t *testing.T) {
	p := weightedPolicy()
	clean := cleanTranscript(8)

	hedged := cleanTranscript(8)
	for i := range hedged {
		hedged[i].Answer = "Not sure"
	}

	if ch, cc := p.Confidence(0.8, hedged), p.Confidence(0.8, clean); ch >= cc {
		t.Errorf("hedged transcript %d should score below clean %d", ch, cc)
	}
}

func TestWeightedPolicy_PenalizesIncomplete(t *testing.T) {
	p := weightedPolicy()
	if short, full := p.Confidence(0.8, cleanTranscript(2)), p.Confidence(0.8, cleanTranscript(8)); short >= full {
		t.Errorf("short transcript %d should score below full %d", short, full)
	}
}

func TestWeightedPolicy_PenalizesContradictions(t *testing.T) {
	p := weightedPolicy()
	clean := cleanTranscript(8)

	contradicted := cleanTranscript(8)
	contradicted[0].Answer = "It just started"
	contradicted[1].Answer = "I have had it for years"

	if cc, cl := p.Confidence(0.8, contradicted), p.Confidence(0.8, clean); cc >= cl {
		t.Errorf("contradicted transcript %d should score below clean %d", cc, cl)
	}
}

func TestWeightedPolicy_EmptyTranscript(t *testing.T) {
	p := weightedPolicy()
	got := p.Confidence(0.5, nil)
	if got < 0 || got > 100 {
		t.Errorf("Confidence = %d out of [0,100]", got)
	}
}
