package matching

import "strings"

// Bonus values for the additive location score. Unlike the classifier, which
// picks a single rule, every condition that holds contributes, so several
// weak signals can out-rank one medium signal.
const (
	bonusExactAddress    = 100
	bonusExactCity       = 90
	bonusExactState      = 80
	bonusAddressContains = 70
	bonusAddressPrefix   = 60
	bonusCityPrefix      = 50
	bonusStatePrefix     = 40
	bonusCityContains    = 30
	bonusStateContains   = 20
	bonusCountryContains = 10

	tokenBonusAddress = 15
	tokenBonusCity    = 10
	tokenBonusState   = 5
)

// LocationScore computes the additive ranking score of a free-text query
// against one candidate. It is intentionally decoupled from Classify: the
// classifier produces the display tier and label, this score orders results,
// and the two are allowed to disagree.
func LocationScore(query string, c Candidate) float64 {
	q := Normalize(query)
	if q == "" {
		return 0
	}

	address := Normalize(c.Address)
	city := Normalize(c.City)
	state := Normalize(c.State)
	country := Normalize(c.Country)

	var score float64
	if address != "" {
		if q == address {
			score += bonusExactAddress
		}
		if strings.Contains(address, q) {
			score += bonusAddressContains
		}
		if strings.HasPrefix(address, q) {
			score += bonusAddressPrefix
		}
	}
	if city != "" {
		if q == city {
			score += bonusExactCity
		}
		if strings.HasPrefix(city, q) {
			score += bonusCityPrefix
		}
		if strings.Contains(city, q) {
			score += bonusCityContains
		}
	}
	if state != "" {
		if q == state {
			score += bonusExactState
		}
		if strings.HasPrefix(state, q) {
			score += bonusStatePrefix
		}
		if strings.Contains(state, q) {
			score += bonusStateContains
		}
	}
	if country != "" && strings.Contains(country, q) {
		score += bonusCountryContains
	}

	for _, tok := range Tokenize(q) {
		if address != "" && strings.Contains(address, tok) {
			score += tokenBonusAddress
		}
		if city != "" && strings.Contains(city, tok) {
			score += tokenBonusCity
		}
		if state != "" && strings.Contains(state, tok) {
			score += tokenBonusState
		}
	}
	return score
}
