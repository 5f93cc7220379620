package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/matching"
)

// StringList stores a list of strings as a single comma-separated column so
// the same model works for both the raw sql read path and the gorm write path.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
	case string:
		*s = splitList(v)
	case []byte:
		*s = splitList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	return nil
}

func splitList(raw string) StringList {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Property is a rental listing as stored and served by the marketplace.
type Property struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Country       string     `json:"country"`
	PropertyType  string     `json:"property_type"`
	Price         float64    `json:"price"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	Amenities     StringList `json:"amenities" gorm:"type:text"`
	Furnished     bool       `json:"furnished"`
	AvailableFrom time.Time  `json:"available_from"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Candidate converts the listing into the immutable record the matching
// engine scores.
func (p Property) Candidate() matching.Candidate {
	return matching.Candidate{
		ID: p.ID,
		Location: matching.Location{
			Address: p.Address,
			City:    p.City,
			State:   p.State,
			Country: p.Country,
		},
		Price:         p.Price,
		PropertyType:  p.PropertyType,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Amenities:     p.Amenities,
		Furnished:     p.Furnished,
		AvailableFrom: p.AvailableFrom,
	}
}

// Candidates converts a batch of listings.
func Candidates(properties []Property) []matching.Candidate {
	out := make([]matching.Candidate, len(properties))
	for i, p := range properties {
		out[i] = p.Candidate()
	}
	return out
}

// AreaStats summarizes the listings of one city.
type AreaStats struct {
	City          string  `json:"city"`
	PropertyCount int     `json:"property_count"`
	AveragePrice  float64 `json:"average_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

// Coordinate is a listing position used for area summaries.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
