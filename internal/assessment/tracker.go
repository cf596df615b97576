package assessment

import "strings"

// ComputeAreas derives the per-area coverage flags from the full response
// sequence. Pure function: always a complete recompute, never incremental
// state, so displayed progress cannot drift from actual readiness.
func ComputeAreas(responses []Response) Areas {
	var areas Areas
	for _, r := range responses {
		for _, tag := range Classify(r.Question) {
			areas.set(tag)
		}
	}
	return areas
}

// CountByArea counts, per area, how many responses touch it according to
// the detail keyword table. One response may count toward several areas.
func CountByArea(responses []Response) map[Area]int {
	counts := make(map[Area]int, len(AllAreas))
	for _, r := range responses {
		if r.Question == "" {
			continue
		}
		lower := strings.ToLower(r.Question)
		for _, area := range AllAreas {
			if matchesAny(lower, detailKeywords[area]) {
				counts[area]++
			}
		}
	}
	return counts
}

// IsReadyForDiagnosis implements the readiness gate that ends questioning:
// enough total responses, every area covered, enough depth per area, and
// no unresolved contradictions between answers.
func IsReadyForDiagnosis(responses []Response, areas Areas, cfg Config) bool {
	if len(responses) < cfg.MinResponses {
		return false
	}
	if !areas.Complete() {
		return false
	}

	counts := CountByArea(responses)
	for _, area := range AllAreas {
		if counts[area] < cfg.MinPerArea {
			return false
		}
	}

	return len(FindContradictions(responses)) == 0
}

// summaryKeywords routes a question to the single area its answer
// summarizes. Distinct from the coverage tables: a question files under
// exactly one area here, the first whose keywords match.
var summaryKeywords = []struct {
	area  Area
	words []string
}{
	{AreaLocation, []string{"where", "location"}},
	{AreaCharacterSeverity, []string{"severity", "pain"}},
	{AreaTiming, []string{"when", "time"}},
	{AreaTriggers, []string{"trigger", "worse"}},
	{AreaRiskFactors, []string{"history", "risk"}},
}

// Summarize builds a per-area digest of the latest relevant answer, used
// as prompt context in the detailed phase. Later responses overwrite
// earlier ones within an area.
func Summarize(responses []Response) map[Area]string {
	summary := make(map[Area]string)
	for _, r := range responses {
		lower := strings.ToLower(r.Question)
		for _, entry := range summaryKeywords {
			if matchesAny(lower, entry.words) {
				summary[entry.area] = r.Answer
				break
			}
		}
	}
	return summary
}
