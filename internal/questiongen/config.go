package questiongen

import "github.com/Wachary/BioPlus-AI-1.1/internal/assessment"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// OptionCount is the number of substantive options every question must
	// carry, before the open-ended option is appended.
	OptionCount int

	// PadOption is the deterministic filler used when the option-fill
	// follow-up still leaves a question short.
	PadOption string

	// InitialPredictedTotal is the predicted question total reported during
	// the initial phase; progress is the count of covered areas.
	InitialPredictedTotal int

	// DetailedPredictedTotal is the predicted question total reported during
	// the detailed phase; progress is the response count capped at it.
	DetailedPredictedTotal int

	// MaxTokens is the token budget for the question batch response.
	MaxTokens int

	// FollowUpMaxTokens is the token budget for the option-fill call.
	FollowUpMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Readiness holds the thresholds for the readiness rule.
	Readiness assessment.Config
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		OptionCount:            5,
		PadOption:              "Not sure",
		InitialPredictedTotal:  5,
		DetailedPredictedTotal: 10,
		MaxTokens:              1024,
		FollowUpMaxTokens:      256,
		Temperature:            0.7,
		Readiness:              assessment.DefaultConfig(),
	}
}
