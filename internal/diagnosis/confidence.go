package diagnosis

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/Wachary/BioPlus-AI-1.1/internal/assessment"
)

// ConfidencePolicy maps a [0,1] similarity score and the transcript that
// produced it to an integer confidence in [0,100].
type ConfidencePolicy interface {
	Confidence(similarity float64, responses []assessment.Response) int
}

// BaselinePolicy is the default policy: a fixed baseline plus a
// similarity-scaled term.
type BaselinePolicy struct {
	Baseline float64
	Scale    float64
}

func (p BaselinePolicy) Confidence(similarity float64, _ []assessment.Response) int {
	return clampRound(p.Baseline + p.Scale*similarity)
}

// WeightedPolicy refines the baseline score with three transcript-quality
// fractions: answer specificity (hedged and open-ended answers penalized),
// contradiction-free consistency, and completeness against the readiness
// thresholds. The fractions are averaged and applied as a multiplier.
type WeightedPolicy struct {
	Baseline  BaselinePolicy
	Readiness assessment.Config

	// HedgedWeight is the specificity weight of a hedged or open-ended
	// answer. Listed, unhedged answers weigh 1.
	HedgedWeight float64
}

// hedgePhrases marks answers that carry little diagnostic signal.
var hedgePhrases = []string{"not sure", "unsure", "don't know", "maybe", "possibly"}

func (p WeightedPolicy) Confidence(similarity float64, responses []assessment.Response) int {
	base := p.Baseline.Baseline + p.Baseline.Scale*similarity
	if len(responses) == 0 {
		return clampRound(base)
	}

	factor, err := stats.Mean([]float64{
		p.specificity(responses),
		p.consistency(responses),
		p.completeness(responses),
	})
	if err != nil {
		return clampRound(base)
	}
	return clampRound(base * factor)
}

func (p WeightedPolicy) specificity(responses []assessment.Response) float64 {
	weights := make([]float64, len(responses))
	for i, r := range responses {
		weights[i] = 1
		if r.OpenEnded() || isHedged(r.Answer) {
			weights[i] = p.HedgedWeight
		}
	}
	mean, err := stats.Mean(weights)
	if err != nil {
		return 1
	}
	return mean
}

// consistency is the fraction of responses not involved in any detected
// contradiction.
func (p WeightedPolicy) consistency(responses []assessment.Response) float64 {
	contradictions := assessment.FindContradictions(responses)
	if len(contradictions) == 0 {
		return 1
	}

	involved := map[string]bool{}
	for _, c := range contradictions {
		involved[c.Response1.Question] = true
		involved[c.Response2.Question] = true
	}
	return 1 - float64(len(involved))/float64(len(responses))
}

func (p WeightedPolicy) completeness(responses []assessment.Response) float64 {
	if p.Readiness.MinResponses <= 0 {
		return 1
	}
	return math.Min(1, float64(len(responses))/float64(p.Readiness.MinResponses))
}

func isHedged(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range hedgePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func clampRound(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), 100)))
}
