package diagnosis

import (
	"math"
	"testing"
)

func TestSimilarity_Identical(t *testing.T) {
	v := []float64{0.2, 0.4, 0.6}
	if got := Similarity(v, v); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Similarity(v, v) = %v, want 1.0", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := []float64{0.2, 0.4, 0.6}
	b := []float64{0.5, 0.1, 0.9}
	if Similarity(a, b) != Similarity(b, a) {
		t.Error("similarity must be symmetric")
	}
}

func TestSimilarity_Range(t *testing.T) {
	// Opposed vectors still land in [0,1] after renormalization.
	a := []float64{1, 0}
	b := []float64{-1, 0}
	if got := Similarity(a, b); math.Abs(got-0) > 1e-12 {
		t.Errorf("opposed vectors = %v, want 0", got)
	}

	c := []float64{1, 0}
	d := []float64{0, 1}
	if got := Similarity(c, d); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("orthogonal vectors = %v, want 0.5", got)
	}
}

func TestSimilarity_Defaults(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"length mismatch", []float64{0.2, 0.4}, []float64{0.2}},
		{"zero magnitude left", []float64{0, 0}, []float64{0.2, 0.4}},
		{"zero magnitude right", []float64{0.2, 0.4}, []float64{0, 0}},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != 0 {
				t.Errorf("Similarity = %v, want 0", got)
			}
		})
	}
}
