// Package suggestions turns model-generated text into usable keyword and
// title lists.
//
// Local models rarely return the clean JSON they are asked for, so the
// parser degrades through strategies: a strict JSON parse, extraction of
// bracket-delimited fragments, and finally line/comma splitting with a
// cleanup pass. Parsing never fails; hopeless input yields an empty list and
// callers fall back to deterministic alternatives.
//
// SanitizeKeywords and CleanTitles filter the parsed lists down to strings
// that are safe to use as search queries, dropping residual JSON punctuation
// artifacts and conversational filler.
package suggestions
