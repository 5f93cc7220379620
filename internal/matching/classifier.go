package matching

import (
	"strings"
)

// Classification labels shown next to search results.
const (
	LabelExactAddress  = "Exact Address Match"
	LabelExactLocation = "Exact Location Match"
	LabelAddress       = "Address Match"
	LabelCity          = "City Match"
	LabelState         = "State Match"
	LabelArea          = "Area Match"
)

// AttributionMode selects which field name the word-level fallback uses in
// its "<Field> Similar" label when tokens match different fields.
type AttributionMode int

const (
	// AttributeFirstToken names the field of the earliest token match,
	// preferring address over city over state within a token.
	AttributeFirstToken AttributionMode = iota
	// AttributeMostMatches names the field that matched the most tokens.
	AttributeMostMatches
)

// Classifier assigns a match tier to a free-text query against a candidate's
// location fields. The zero value uses first-token attribution.
type Classifier struct {
	Attribution AttributionMode
}

// NewClassifier returns a classifier with the default fallback attribution.
func NewClassifier() *Classifier {
	return &Classifier{Attribution: AttributeFirstToken}
}

// Classify applies a fixed precedence of rules, first match wins. It never
// fails: an empty or missing query yields TierNone with score 0, and a
// non-empty query always produces at least a weak area-level signal.
func (cl *Classifier) Classify(query string, loc Location) MatchResult {
	q := Normalize(query)
	if q == "" {
		return MatchResult{Tier: TierNone, Score: 0}
	}

	address := Normalize(loc.Address)
	city := Normalize(loc.City)
	state := Normalize(loc.State)

	switch {
	case address != "" && q == address:
		return MatchResult{Tier: TierExact, Score: 100, Label: LabelExactAddress}
	case (city != "" && q == city) || (state != "" && q == state):
		return MatchResult{Tier: TierExact, Score: 95, Label: LabelExactLocation}
	case address != "" && strings.Contains(address, q):
		return MatchResult{Tier: TierHigh, Score: 85, Label: LabelAddress}
	case address != "" && strings.HasPrefix(address, q):
		// Subsumed by the containment rule above, kept so a prefix hit can
		// never be scored 85 by falling through the rule order.
		return MatchResult{Tier: TierHigh, Score: 80, Label: LabelAddress}
	case city != "" && (strings.Contains(city, q) || strings.HasPrefix(city, q)):
		return MatchResult{Tier: TierHigh, Score: 75, Label: LabelCity}
	case state != "" && (strings.Contains(state, q) || strings.HasPrefix(state, q)):
		return MatchResult{Tier: TierPartial, Score: 60, Label: LabelState}
	}

	if res, ok := cl.classifyWords(q, address, city, state); ok {
		return res
	}

	// Residual positive signal: once a non-empty query was supplied the
	// classifier never asserts zero confidence, so the caller can show a
	// weak area hint instead of nothing.
	return MatchResult{Tier: TierSimilar, Score: 10, Label: LabelArea}
}

// classifyWords is the word-level fallback: each significant query token is
// checked against address, then city, then state, and the number of matched
// tokens drives score and tier.
func (cl *Classifier) classifyWords(q, address, city, state string) (MatchResult, bool) {
	tokens := Tokenize(q)
	if len(tokens) == 0 {
		return MatchResult{}, false
	}

	fields := []struct {
		name string
		text string
	}{
		{"Address", address},
		{"City", city},
		{"State", state},
	}

	wordMatches := 0
	bestField := ""
	perField := make(map[string]int, len(fields))
	for _, tok := range tokens {
		for _, f := range fields {
			if f.text == "" || !strings.Contains(f.text, tok) {
				continue
			}
			wordMatches++
			perField[f.name]++
			if bestField == "" {
				bestField = f.name
			}
			break
		}
	}
	if wordMatches == 0 {
		return MatchResult{}, false
	}

	if cl.Attribution == AttributeMostMatches {
		best, count := "", 0
		for _, f := range fields {
			// Field order breaks ties, address first.
			if perField[f.name] > count {
				best, count = f.name, perField[f.name]
			}
		}
		bestField = best
	}

	score := 30 + float64(wordMatches)*10
	if score > 70 {
		score = 70
	}
	tier := TierSimilar
	// At least half the tokens matched, rounding up.
	if wordMatches*2 >= len(tokens) {
		tier = TierPartial
	}
	return MatchResult{Tier: tier, Score: score, Label: bestField + " Similar"}, true
}

// defaultClassifier backs the package-level Classify for callers that do not
// need custom attribution.
var defaultClassifier = NewClassifier()

// Classify classifies with the default first-token attribution.
func Classify(query string, loc Location) MatchResult {
	return defaultClassifier.Classify(query, loc)
}
