package matching

import "sort"

// Rank orders match results for display: score descending, then tier rank
// descending, then candidate identifier ascending so equal matches keep a
// reproducible order across calls and pages. The input slice is not mutated
// and no entries are dropped.
func Rank(results []MatchResult) []MatchResult {
	ranked := make([]MatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Tier != ranked[j].Tier {
			return ranked[i].Tier > ranked[j].Tier
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})
	return ranked
}
