package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/matching"
)

// LoadWeightsFromFile loads a criterion weight table from a JSON file,
// starting from the documented defaults so a partial file only overrides the
// keys it names.
func LoadWeightsFromFile(path string) (matching.Weights, error) {
	w := matching.DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
