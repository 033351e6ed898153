package textutil

import "strings"

// Normalize lower-cases and trims surrounding whitespace. Idempotent; every
// comparison in the pipeline happens on normalized text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokens splits a message into normalized whitespace-delimited tokens of at
// least minLen characters, capped at max entries. Used to harvest keyword
// candidates for auto-learning.
func Tokens(message string, minLen, max int) []string {
	var tokens []string
	for _, w := range strings.Fields(Normalize(message)) {
		if len(w) <= minLen {
			continue
		}
		tokens = append(tokens, w)
		if len(tokens) == max {
			break
		}
	}
	return tokens
}
