// Package ollama provides a client for a local Ollama text-generation server.
//
// This package is used by:
//   - Suggestion engine: generate theme keywords and movie title ideas
//   - Preflight: verify the server is reachable and the model is pulled
//
// # Streaming
//
// Ollama's /api/generate endpoint streams newline-delimited JSON fragments,
// each carrying a "response" field with the next slice of generated text.
// Generate concatenates those slices into the full response. Lines that are
// not valid JSON are appended verbatim so callers always receive whatever
// text the server produced; downstream parsing copes with malformed output.
//
// # Fallback
//
// If the server is unavailable or returns an error, callers fall back to
// deterministic behavior (theme-name tokenization or keyword-only curation).
package ollama
