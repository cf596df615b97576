package assessment

import "strings"

// ContradictionCategory labels the kind of opposing claims two answers make.
type ContradictionCategory string

const (
	ContradictionTiming      ContradictionCategory = "timing"
	ContradictionSeverity    ContradictionCategory = "severity"
	ContradictionFrequency   ContradictionCategory = "frequency"
	ContradictionImprovement ContradictionCategory = "improvement"
)

// Contradiction pairs two responses whose answers match opposite polarities
// of the same category. Purely advisory: it only vetoes readiness, it never
// fails an operation.
type Contradiction struct {
	Category  ContradictionCategory `json:"category"`
	Response1 Response              `json:"response1"`
	Response2 Response              `json:"response2"`
}

// polarity is one side of a contradiction category.
type polarity struct {
	name     string
	patterns []string
}

// contradictionTable lists the category pattern pairs in a fixed order.
// An answer matching both polarities of a category resolves to the first
// polarity declared here; ambiguous phrasing is not excluded. Slices, not
// maps, so iteration order is deterministic.
var contradictionTable = []struct {
	category   ContradictionCategory
	polarities [2]polarity
}{
	{
		category: ContradictionTiming,
		polarities: [2]polarity{
			{name: "recent", patterns: []string{"just started", "began recently", "new", "started today", "since yesterday"}},
			{name: "chronic", patterns: []string{"years", "months", "chronic", "long time", "always had"}},
		},
	},
	{
		category: ContradictionSeverity,
		polarities: [2]polarity{
			{name: "mild", patterns: []string{"mild", "slight", "minor", "barely", "little"}},
			{name: "severe", patterns: []string{"severe", "extreme", "worst", "intense", "unbearable"}},
		},
	},
	{
		category: ContradictionFrequency,
		polarities: [2]polarity{
			{name: "rare", patterns: []string{"rarely", "occasionally", "sometimes", "few times"}},
			{name: "constant", patterns: []string{"constant", "always", "continuous", "persistent", "all the time"}},
		},
	},
	{
		category: ContradictionImprovement,
		polarities: [2]polarity{
			{name: "better", patterns: []string{"improves", "gets better", "relieves", "helps", "reduces"}},
			{name: "worse", patterns: []string{"worsens", "gets worse", "aggravates", "increases", "intensifies"}},
		},
	},
}

// FindContradictions scans every unordered response pair for answers that
// match opposite polarities within the same category. O(n² × categories);
// n is bounded by the handful of questions in one assessment.
func FindContradictions(responses []Response) []Contradiction {
	var found []Contradiction

	for i := 0; i < len(responses); i++ {
		for j := i + 1; j < len(responses); j++ {
			a1 := strings.ToLower(responses[i].Answer)
			a2 := strings.ToLower(responses[j].Answer)

			for _, entry := range contradictionTable {
				p1, ok1 := matchPolarity(a1, entry.polarities)
				p2, ok2 := matchPolarity(a2, entry.polarities)
				if ok1 && ok2 && p1 != p2 {
					found = append(found, Contradiction{
						Category:  entry.category,
						Response1: responses[i],
						Response2: responses[j],
					})
				}
			}
		}
	}

	return found
}

// matchPolarity returns the index of the first polarity whose pattern list
// matches the lowercased answer.
func matchPolarity(lower string, polarities [2]polarity) (int, bool) {
	for idx, p := range polarities {
		if matchesAny(lower, p.patterns) {
			return idx, true
		}
	}
	return 0, false
}
