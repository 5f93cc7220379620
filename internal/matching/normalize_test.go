package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases", "Lagos", "lagos"},
		{"Trims", "  Ikeja  ", "ikeja"},
		{"Collapses internal whitespace", "24   Marina \t Road", "24 marina road"},
		{"Empty input", "", ""},
		{"Whitespace only", "   \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Drops short tokens", "24 Marina Road", []string{"marina", "road"}},
		{"Preserves order and duplicates", "road road ave", []string{"road", "road", "ave"}},
		{"Empty input", "", []string{}},
		{"Only short tokens", "a bc de", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}
