package suggestions

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	keywordArtifactPattern = regexp.MustCompile(`["'\[\]:{}]`)
	keywordShapePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	titleTrailerPattern    = regexp.MustCompile(`\s*[-:(].*$`)
)

// refusalPrefixes mark lines where the model started chatting instead of
// naming a movie.
var refusalPrefixes = []string{"It seems", "Here", "From", "Sure", "I'd", "Based"}

// SanitizeKeywords filters a keyword list down to strings usable as search
// queries. Each keyword has a leading "N. " numbering prefix and residual
// JSON punctuation removed; it is kept only when at least 3 characters long
// and shaped like a word (letter first, then letters, digits, or hyphens).
// Order-preserving.
func SanitizeKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			continue
		}
		keyword = strings.TrimSpace(numberingPattern.ReplaceAllString(keyword, ""))
		keyword = strings.TrimSpace(keywordArtifactPattern.ReplaceAllString(keyword, ""))
		if keyword == "" || utf8.RuneCountInString(keyword) < 3 {
			continue
		}
		if !keywordShapePattern.MatchString(keyword) {
			continue
		}
		cleaned = append(cleaned, keyword)
	}
	return cleaned
}

// CleanTitles filters model-suggested movie titles. Trailing subtitle or
// year fragments introduced by a dash, colon, or parenthesis are cut,
// surrounding quotes stripped, and conversational refusals dropped.
func CleanTitles(titles []string) []string {
	cleaned := make([]string, 0, len(titles))
	for _, title := range titles {
		title = titleTrailerPattern.ReplaceAllString(title, "")
		title = strings.Trim(title, `"'`)
		if title == "" || utf8.RuneCountInString(title) <= 2 {
			continue
		}
		if hasRefusalPrefix(title) {
			continue
		}
		cleaned = append(cleaned, title)
	}
	return cleaned
}

func hasRefusalPrefix(title string) bool {
	for _, prefix := range refusalPrefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}
