package diagnosis

import "github.com/Wachary/BioPlus-AI-1.1/internal/assessment"

// Vectorize maps one response to a scalar in (0,1]. Listed answers score
// (index+1)/len(options), so options presented later score higher. That
// option-order-as-severity mapping has no clinical derivation; it is kept
// as the named policy of this function rather than assumed elsewhere.
// Open-ended and unlisted answers get the neutral value.
func (s *Service) Vectorize(r assessment.Response) float64 {
	if r.Answer == assessment.OpenEndedOption {
		return s.config.NeutralValue
	}
	for i, opt := range r.QuestionData.Options {
		if opt == r.Answer {
			return float64(i+1) / float64(len(r.QuestionData.Options))
		}
	}
	return s.config.NeutralValue
}

// vector maps a transcript to its response vector, one slot per response
// in transcript order.
func (s *Service) vector(responses []assessment.Response) []float64 {
	out := make([]float64, len(responses))
	for i, r := range responses {
		out[i] = s.Vectorize(r)
	}
	return out
}
