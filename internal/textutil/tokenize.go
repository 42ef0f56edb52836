package textutil

import (
	"regexp"
	"strings"
)

// wordPattern matches lowercase alphanumeric word runs for tokenization.
var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits text into lowercase alphanumeric tokens, preserving first
// occurrence order and dropping duplicates. Used as the deterministic keyword
// fallback when no suggestions are available.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		tokens = append(tokens, word)
	}
	return tokens
}
