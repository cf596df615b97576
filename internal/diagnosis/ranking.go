package diagnosis

import "sort"

// Rank sorts matches descending by confidence, with similarity as the
// secondary key, and returns at most top entries. The sort is stable, so
// full ties keep their input order.
func Rank(matches []Match, top int) []Match {
	ranked := make([]Match, len(matches))
	copy(ranked, matches)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].Similarity > ranked[j].Similarity
	})

	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}
