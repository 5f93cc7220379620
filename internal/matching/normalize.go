package matching

import "strings"

// Normalize lowercases, trims, and collapses internal whitespace.
// Empty or missing input normalizes to the empty string.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize splits a search phrase into significant words. Tokens of length
// two or less are discarded; order and duplicates are preserved, since
// duplicate words legitimately raise word-match counts downstream.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
