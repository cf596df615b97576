package diagnosis

import (
	"reflect"
	"testing"
)

func TestRank_SortsByConfidence(t *testing.T) {
	matches := []Match{
		{Condition: "A", Confidence: 70, Similarity: 0.4},
		{Condition: "B", Confidence: 90, Similarity: 0.8},
		{Condition: "C", Confidence: 80, Similarity: 0.6},
	}

	ranked := Rank(matches, 3)
	got := []string{ranked[0].Condition, ranked[1].Condition, ranked[2].Condition}
	want := []string{"B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRank_Truncates(t *testing.T) {
	matches := []Match{
		{Condition: "A", Confidence: 70},
		{Condition: "B", Confidence: 90},
		{Condition: "C", Confidence: 80},
		{Condition: "D", Confidence: 60},
	}
	if got := len(Rank(matches, 3)); got != 3 {
		t.Errorf("len = %d, want 3", got)
	}
}

func TestRank_SimilarityTiebreak(t *testing.T) {
	matches := []Match{
		{Condition: "A", Confidence: 80, Similarity: 0.3},
		{Condition: "B", Confidence: 80, Similarity: 0.9},
	}
	if ranked := Rank(matches, 3); ranked[0].Condition != "B" {
		t.Errorf("expected similarity tiebreak, got %q first", ranked[0].Condition)
	}
}

func TestRank_StableOnFullTies(t *testing.T) {
	matches := []Match{
		{Condition: "A", Confidence: 80, Similarity: 0.5},
		{Condition: "B", Confidence: 80, Similarity: 0.5},
	}
	if ranked := Rank(matches, 3); ranked[0].Condition != "A" {
		t.Errorf("full ties must keep input order, got %q first", ranked[0].Condition)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	matches := []Match{
		{Condition: "A", Confidence: 70},
		{Condition: "B", Confidence: 90},
	}
	Rank(matches, 3)
	if matches[0].Condition != "A" {
		t.Error("input slice was reordered")
	}
}
