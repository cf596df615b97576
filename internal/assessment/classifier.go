package assessment

import "strings"

// Two keyword tables drive area tracking. The coverage table decides
// whether an area has been touched at all (phase transition); the detail
// table is a superset used to count how thoroughly an area has been
// explored (readiness). Matching is case-insensitive substring search
// against the question text.

var coverageKeywords = map[Area][]string{
	AreaLocation:          {"where", "location", "area", "spot", "place", "side"},
	AreaCharacterSeverity: {"severity", "pain level", "intensity", "type of", "nature of", "character", "how severe", "describe the"},
	AreaTiming:            {"when", "how long", "duration", "often", "frequency", "start", "began"},
	AreaTriggers:          {"trigger", "worse", "better", "improve", "aggravate", "affect", "impact"},
	AreaRiskFactors:       {"history", "condition", "medical", "risk", "family", "previous", "existing"},
}

var detailKeywords = map[Area][]string{
	AreaLocation:          {"where", "location", "area", "spot", "place", "side", "specific", "exactly"},
	AreaCharacterSeverity: {"severity", "pain level", "intensity", "type of", "nature of", "character", "how severe", "describe the", "quality", "feels like"},
	AreaTiming:            {"when", "how long", "duration", "often", "frequency", "start", "began", "pattern", "time of day", "seasonal"},
	AreaTriggers:          {"trigger", "worse", "better", "improve", "aggravate", "affect", "impact", "factors", "activities", "foods", "environmental"},
	AreaRiskFactors:       {"history", "condition", "medical", "risk", "family", "previous", "existing", "medication", "allergies", "lifestyle"},
}

// Classify maps a question's text to the assessment areas it touches.
// Multiple areas may match one question; empty text yields no tags.
func Classify(questionText string) []Area {
	if questionText == "" {
		return nil
	}
	lower := strings.ToLower(questionText)

	var tags []Area
	for _, area := range AllAreas {
		if matchesAny(lower, coverageKeywords[area]) {
			tags = append(tags, area)
		}
	}
	return tags
}

// matchesAny reports whether lower contains any of the given substrings.
// Callers lowercase the haystack once; the keyword tables are already
// lowercase.
func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
