package diagnosis

import (
	"context"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

// ReferenceProfile is a simulated patient transcript for one candidate
// condition. Its responses answer the same questions, with the same option
// lists, as the user's transcript, which keeps both vector spaces
// comparable.
type ReferenceProfile struct {
	Condition string                `json:"condition"`
	Responses []assessment.Response `json:"responses"`
}

// Urgency grades a recommendation.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Recommendation is one actionable suggestion for a matched condition.
type Recommendation struct {
	Text    string  `json:"text"`
	Urgency Urgency `json:"urgency"`
}

// Match is one ranked candidate condition.
type Match struct {
	Condition       string           `json:"condition"`
	Similarity      float64          `json:"similarity"`
	Confidence      int              `json:"confidence"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Differ computes ranked diagnosis matches from a finished transcript.
type Differ interface {
	// ComputeDiagnosis returns at most the configured number of matches,
	// sorted descending by confidence. A profile-generation failure aborts
	// the whole computation; no partial ranking is returned.
	ComputeDiagnosis(ctx context.Context, responses []assessment.Response) ([]Match, error)
}
