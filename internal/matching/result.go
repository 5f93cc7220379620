package matching

import (
	"encoding/json"
	"time"
)

// Tier is an ordinal match-quality bucket. Higher values outrank lower ones
// when scores tie.
type Tier int

const (
	TierNone Tier = iota
	TierSimilar
	TierPartial
	TierHigh
	TierExact
)

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierHigh:
		return "high"
	case TierPartial:
		return "partial"
	case TierSimilar:
		return "similar"
	default:
		return "none"
	}
}

// MarshalJSON renders the tier as its string name so API clients see
// "exact" rather than an internal ordinal.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the string form produced by MarshalJSON.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "exact":
		*t = TierExact
	case "high":
		*t = TierHigh
	case "partial":
		*t = TierPartial
	case "similar":
		*t = TierSimilar
	default:
		*t = TierNone
	}
	return nil
}

// Location holds the textual location fields of a candidate. All fields are
// optional; absent fields normalize to empty strings and simply fail to match.
type Location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Candidate is a property record being scored against a query or profile.
// It is immutable for the duration of a scoring pass and owned by the caller.
type Candidate struct {
	ID string `json:"id"`
	Location
	Price         float64   `json:"price"`
	PropertyType  string    `json:"property_type"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     []string  `json:"amenities"`
	Furnished     bool      `json:"furnished"`
	AvailableFrom time.Time `json:"available_from"`
}

// MatchResult is the outcome of classifying or scoring one candidate.
// Produced fresh per call and never persisted by this package.
type MatchResult struct {
	CandidateID string   `json:"candidate_id"`
	Score       float64  `json:"score"`
	Tier        Tier     `json:"tier"`
	Label       string   `json:"label"`
	TopReasons  []string `json:"top_reasons,omitempty"`
}
