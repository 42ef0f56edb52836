package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// parentheticalPattern matches parenthesized substrings, shortest first, so
// "Title (1999) (Director's Cut)" loses both groups.
var parentheticalPattern = regexp.MustCompile(`\(.*?\)`)

// NormalizeTitle canonicalizes a title into a comparison key: lowercase,
// parentheticals removed, anything that is not a letter, digit, or space
// removed, diacritics folded, surrounding whitespace trimmed. It is total
// and idempotent; empty or whitespace-only input yields "".
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	lowered := strings.ToLower(title)
	lowered = parentheticalPattern.ReplaceAllString(lowered, "")

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(foldDiacritics(b.String()))
}

// foldDiacritics removes combining marks after NFD decomposition so accented
// characters compare equal to their unaccented forms.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
