package matching

import (
	"fmt"
	"math"
	"sort"
)

// Weights defines the coefficient of each preference criterion. All values
// must be non-negative and at least one must be positive.
type Weights struct {
	Location  float64 `json:"location"`
	Price     float64 `json:"price"`
	Type      float64 `json:"type"`
	Bedrooms  float64 `json:"bedrooms"`
	Amenities float64 `json:"amenities"`
}

// DefaultWeights returns the documented baseline weight table.
func DefaultWeights() Weights {
	return Weights{
		Location:  0.30,
		Price:     0.25,
		Type:      0.15,
		Bedrooms:  0.10,
		Amenities: 0.20,
	}
}

func (w Weights) total() float64 {
	return w.Location + w.Price + w.Type + w.Bedrooms + w.Amenities
}

func (w Weights) validate() error {
	for _, v := range []float64{w.Location, w.Price, w.Type, w.Bedrooms, w.Amenities} {
		if v < 0 {
			return &ConfigurationError{Reason: "negative criterion weight"}
		}
	}
	if w.total() == 0 {
		return &ConfigurationError{Reason: "all criterion weights are zero"}
	}
	return nil
}

// ConfigurationError reports a malformed weight table. The engine refuses to
// silently substitute defaults once a profile chose to override weights.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scoring configuration: %s", e.Reason)
}

// BudgetRange is an inclusive price range. A zero-valued range means no
// budget constraint; Max of zero with a positive Min means unbounded above.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Profile is a structured preference profile for the recommendation wizard.
// A nil Weights means "use defaults"; an explicit weight table is validated
// as supplied, keeping the two cases distinguishable.
type Profile struct {
	Budget             BudgetRange `json:"budget"`
	DesiredTypes       []string    `json:"desired_types"`
	MinBedrooms        int         `json:"min_bedrooms"`
	MaxBedrooms        int         `json:"max_bedrooms"`
	DesiredAmenities   []string    `json:"desired_amenities"`
	PreferredLocations []string    `json:"preferred_locations"`
	Weights            *Weights    `json:"weights,omitempty"`
}

func (p Profile) weights() (Weights, error) {
	if p.Weights == nil {
		return DefaultWeights(), nil
	}
	if err := p.Weights.validate(); err != nil {
		return Weights{}, err
	}
	return *p.Weights, nil
}

// Scorer computes percentage matches between preference profiles and
// candidate properties. It holds no mutable state, so one scorer can serve
// concurrent profiles with different weight tables.
type Scorer struct {
	classifier *Classifier
}

// NewScorer returns a scorer backed by the default location classifier.
func NewScorer() *Scorer {
	return &Scorer{classifier: NewClassifier()}
}

type contribution struct {
	criterion string
	reason    string
	value     float64
}

// Score computes the weighted percentage match of one candidate against a
// profile, with up to three explanation phrases ordered by contribution.
// It fails only on a malformed weight table.
func (s *Scorer) Score(profile Profile, c Candidate) (MatchResult, error) {
	w, err := profile.weights()
	if err != nil {
		return MatchResult{}, err
	}

	amenityHits := s.amenityHits(profile, c)
	contributions := []contribution{
		{"location", "Matches your preferred location", w.Location * s.locationSubScore(profile, c)},
		{"price", "Within your budget", w.Price * s.priceSubScore(profile.Budget, c.Price)},
		{"type", "Matches your preferred property type", w.Type * s.typeSubScore(profile.DesiredTypes, c.PropertyType)},
		{"bedrooms", "Right number of bedrooms", w.Bedrooms * s.bedroomSubScore(profile, c.Bedrooms)},
		{"amenities", fmt.Sprintf("Has %d of your desired amenities", amenityHits),
			w.Amenities * s.amenitySubScore(len(profile.DesiredAmenities), amenityHits)},
	}

	var sum float64
	for _, con := range contributions {
		sum += con.value
	}
	// Renormalize so customized weight tables stay comparable.
	score := math.Round(100*sum/w.total()*10) / 10

	return MatchResult{
		CandidateID: c.ID,
		Score:       score,
		Tier:        recommendationTier(score),
		Label:       fmt.Sprintf("%.0f%% Match", score),
		TopReasons:  topReasons(contributions, 3),
	}, nil
}

// locationSubScore is 1 for an exact city/state hit on any preferred
// location, otherwise the best classifier score across preferred locations
// scaled to [0,1]. No preferred locations means no location signal.
func (s *Scorer) locationSubScore(profile Profile, c Candidate) float64 {
	if len(profile.PreferredLocations) == 0 {
		return 0
	}
	city := Normalize(c.City)
	state := Normalize(c.State)
	best := 0.0
	for _, pref := range profile.PreferredLocations {
		p := Normalize(pref)
		if p == "" {
			continue
		}
		if (city != "" && p == city) || (state != "" && p == state) {
			return 1
		}
		if v := s.classifier.Classify(pref, c.Location).Score / 100; v > best {
			best = v
		}
	}
	return best
}

// priceSubScore is 1 inside the budget and decays linearly to 0 at 50%
// beyond the nearer bound.
func (s *Scorer) priceSubScore(budget BudgetRange, price float64) float64 {
	if budget.Min == 0 && budget.Max == 0 {
		return 1
	}
	if price >= budget.Min && (budget.Max == 0 || price <= budget.Max) {
		return 1
	}
	if budget.Max > 0 && price > budget.Max {
		return clamp01(1 - (price-budget.Max)/(0.5*budget.Max))
	}
	return clamp01(1 - (budget.Min-price)/(0.5*budget.Min))
}

func (s *Scorer) typeSubScore(desired []string, propertyType string) float64 {
	if len(desired) == 0 {
		return 1
	}
	pt := Normalize(propertyType)
	for _, d := range desired {
		if Normalize(d) == pt {
			return 1
		}
	}
	return 0
}

// bedroomSubScore is 1 inside [min, max] and loses 0.2 per bedroom outside.
// A zero max means unbounded above.
func (s *Scorer) bedroomSubScore(profile Profile, bedrooms int) float64 {
	min, max := profile.MinBedrooms, profile.MaxBedrooms
	switch {
	case bedrooms < min:
		return clamp01(1 - 0.2*float64(min-bedrooms))
	case max > 0 && bedrooms > max:
		return clamp01(1 - 0.2*float64(bedrooms-max))
	default:
		return 1
	}
}

func (s *Scorer) amenityHits(profile Profile, c Candidate) int {
	have := make(map[string]struct{}, len(c.Amenities))
	for _, a := range c.Amenities {
		if n := Normalize(a); n != "" {
			have[n] = struct{}{}
		}
	}
	hits := 0
	for _, d := range profile.DesiredAmenities {
		if _, ok := have[Normalize(d)]; ok {
			hits++
		}
	}
	return hits
}

func (s *Scorer) amenitySubScore(desired, hits int) float64 {
	if desired < 1 {
		desired = 1
	}
	return float64(hits) / float64(desired)
}

// topReasons keeps the highest-contributing criteria, dropping any with a
// zero contribution even when heavily weighted. Ties keep the fixed
// criterion order so output stays deterministic.
func topReasons(contributions []contribution, max int) []string {
	kept := make([]contribution, 0, len(contributions))
	for _, con := range contributions {
		if con.value > 0 {
			kept = append(kept, con)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].value > kept[j].value })
	if len(kept) > max {
		kept = kept[:max]
	}
	reasons := make([]string, len(kept))
	for i, con := range kept {
		reasons[i] = con.reason
	}
	return reasons
}

// recommendationTier buckets a percentage match into the display tiers used
// by search results, so both engines render with the same badge set.
func recommendationTier(score float64) Tier {
	switch {
	case score >= 90:
		return TierExact
	case score >= 70:
		return TierHigh
	case score >= 45:
		return TierPartial
	case score > 0:
		return TierSimilar
	default:
		return TierNone
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
