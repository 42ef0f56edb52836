// Package matching implements the exact-then-fuzzy selection of library
// items for a merged candidate pool.
//
// The exact pass resolves candidates against a normalized-title index of the
// library, preserving candidate order and attributing provenance by position
// within the AI-origin prefix. The fuzzy pass backfills remaining slots by
// scoring unmatched items against the theme keywords: substring hits are
// weighted, the best normalized-title similarity is weighted, and only items
// clearing a hard cutoff are appended, best first. The matcher is total over
// empty inputs and never performs I/O.
package matching
