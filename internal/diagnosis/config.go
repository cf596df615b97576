package diagnosis

import "github.com/Wachary/BioPlus-AI-1.1/internal/assessment"

// Config controls the diagnosis pipeline.
type Config struct {
	// ProfileCount is the exact number of reference profiles the generator
	// must return. Anything else is a profile error.
	ProfileCount int

	// TopDiagnoses caps the ranked result.
	TopDiagnoses int

	// NeutralValue is the vector value assigned to open-ended or unlisted
	// answers. It must be applied identically to the user vector and every
	// reference vector.
	NeutralValue float64

	// Confidence maps a similarity score and transcript to a [0,100] score.
	Confidence ConfidencePolicy

	// Readiness thresholds, reused by the weighted confidence policy for
	// its completeness fraction.
	Readiness assessment.Config

	// ProfileMaxTokens is the token budget for profile generation.
	ProfileMaxTokens int

	// ProfileTemperature is kept low so simulated patients stay typical.
	ProfileTemperature float64

	// RecommendationMaxTokens is the per-condition budget for
	// recommendation generation.
	RecommendationMaxTokens int

	RecommendationTemperature float64
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		ProfileCount:              3,
		TopDiagnoses:              3,
		NeutralValue:              0.5,
		Confidence:                BaselinePolicy{Baseline: 50, Scale: 50},
		Readiness:                 assessment.DefaultConfig(),
		ProfileMaxTokens:          2048,
		ProfileTemperature:        0.2,
		RecommendationMaxTokens:   512,
		RecommendationTemperature: 0.5,
	}
}
