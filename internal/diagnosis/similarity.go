package diagnosis

import "gonum.org/v1/gonum/floats"

// Similarity computes cosine similarity between two response vectors,
// renormalized from [-1,1] to [0,1]. Length mismatch or a zero-magnitude
// vector yields 0, a defined neutral score rather than an error, so one
// degenerate reference vector cannot abort the whole ranking. Mismatched
// lengths are rejected earlier at profile validation; the 0 here is a
// last resort, never a silent truncation.
func Similarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	magA := floats.Norm(a, 2)
	magB := floats.Norm(b, 2)
	if magA == 0 || magB == 0 {
		return 0
	}

	cos := floats.Dot(a, b) / (magA * magB)
	return (cos + 1) / 2
}
