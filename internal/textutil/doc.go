// Package textutil provides text processing utilities for title
// normalization, similarity scoring, and keyword tokenization.
//
// The primary use cases are:
//   - Canonicalizing titles into comparison keys (lowercased,
//     parentheticals and punctuation removed, diacritics folded)
//   - Computing a length-weighted common-subsequence similarity ratio
//     between two normalized titles
//   - Extracting fallback keyword tokens from a collection name
//
// Normalized titles are comparison keys only and are never displayed.
package textutil
