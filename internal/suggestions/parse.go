package suggestions

import (
	"encoding/json"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// embeddedArrayCap bounds how many pieces the bracket-extraction strategy
// may return; malformed payloads can contain arbitrarily many fragments.
const embeddedArrayCap = 10

var (
	embeddedArrayPattern = regexp.MustCompile(`\[([^\]]+)\]`)
	arrayArtifactPattern = regexp.MustCompile(`["'\[\]]`)
	numberingPattern     = regexp.MustCompile(`^\d+\.\s*`)
)

// ParseList extracts an ordered list of strings from raw model output.
// Strategies are attempted in order, each only when the previous produced
// nothing: a strict JSON parse of the whole payload, extraction of
// bracket-delimited fragments, and a line/comma fallback with a cleanup
// pass. Unparseable input yields nil, never an error.
func ParseList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if items := parseStructured(trimmed); len(items) > 0 {
		return items
	}
	if items := parseEmbeddedArrays(trimmed); len(items) > 0 {
		return items
	}
	return cleanupCandidates(splitLoose(trimmed))
}

// parseStructured handles payloads that are entirely valid JSON. A top-level
// array contributes its scalar elements; a top-level object contributes the
// elements of every value that is itself an array, in document order. Nested
// containers are skipped.
func parseStructured(raw string) []string {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	var items []string
	switch delim {
	case '[':
		for decoder.More() {
			tok, err := decoder.Token()
			if err != nil {
				return nil
			}
			if inner, ok := tok.(json.Delim); ok {
				if err := skipRest(decoder, inner); err != nil {
					return nil
				}
				continue
			}
			appendScalar(&items, tok)
		}
		if _, err := decoder.Token(); err != nil {
			return nil
		}
	case '{':
		for decoder.More() {
			if _, err := decoder.Token(); err != nil {
				return nil
			}
			tok, err := decoder.Token()
			if err != nil {
				return nil
			}
			inner, ok := tok.(json.Delim)
			if !ok {
				continue
			}
			if inner != '[' {
				if err := skipRest(decoder, inner); err != nil {
					return nil
				}
				continue
			}
			for decoder.More() {
				element, err := decoder.Token()
				if err != nil {
					return nil
				}
				if nested, ok := element.(json.Delim); ok {
					if err := skipRest(decoder, nested); err != nil {
						return nil
					}
					continue
				}
				appendScalar(&items, element)
			}
			if _, err := decoder.Token(); err != nil {
				return nil
			}
		}
		if _, err := decoder.Token(); err != nil {
			return nil
		}
	default:
		return nil
	}

	// The whole payload must be one JSON document; trailing prose means the
	// fallback strategies should see the original text instead.
	if _, err := decoder.Token(); err != io.EOF {
		return nil
	}
	return items
}

// skipRest consumes the remainder of a container whose opening delimiter has
// already been read.
func skipRest(decoder *json.Decoder, open json.Delim) error {
	if open != '[' && open != '{' {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}

func appendScalar(items *[]string, tok json.Token) {
	var value string
	switch v := tok.(type) {
	case string:
		value = v
	case json.Number:
		value = v.String()
	case bool:
		value = strconv.FormatBool(v)
	default:
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	*items = append(*items, value)
}

// parseEmbeddedArrays scans for bracket-delimited comma-separated fragments
// inside otherwise unstructured text.
func parseEmbeddedArrays(raw string) []string {
	matches := embeddedArrayPattern.FindAllStringSubmatch(raw, -1)
	var keywords []string
	for _, match := range matches {
		for _, piece := range strings.Split(match[1], ",") {
			cleaned := strings.TrimSpace(arrayArtifactPattern.ReplaceAllString(piece, ""))
			if utf8.RuneCountInString(cleaned) > 2 {
				keywords = append(keywords, cleaned)
			}
		}
	}
	if len(keywords) > embeddedArrayCap {
		keywords = keywords[:embeddedArrayCap]
	}
	return keywords
}

// splitLoose strips one layer of enclosing brackets and splits what remains
// on newlines, then commas, then treats the whole text as one candidate.
func splitLoose(raw string) []string {
	text := strings.TrimSpace(raw)
	if len(text) > 0 && (text[0] == '[' || text[0] == '{') {
		text = text[1:]
	}
	if len(text) > 0 && (text[len(text)-1] == ']' || text[len(text)-1] == '}') {
		text = text[:len(text)-1]
	}
	text = strings.TrimSpace(text)

	var candidates []string
	switch {
	case strings.Contains(text, "\n"):
		for _, line := range strings.Split(text, "\n") {
			line = strings.Trim(line, "-• \t\"")
			if line != "" {
				candidates = append(candidates, line)
			}
		}
	case strings.Contains(text, ","):
		for _, part := range strings.Split(text, ",") {
			part = strings.Trim(part, `" `)
			if part != "" {
				candidates = append(candidates, part)
			}
		}
	default:
		if text != "" {
			candidates = append(candidates, text)
		}
	}
	return candidates
}

// cleanupCandidates strips "N. " numbering prefixes, trims whitespace, and
// deduplicates while preserving order.
func cleanupCandidates(candidates []string) []string {
	var cleaned []string
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(numberingPattern.ReplaceAllString(candidate, ""))
		if candidate == "" {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		cleaned = append(cleaned, candidate)
	}
	return cleaned
}
