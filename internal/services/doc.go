// Package services defines shared utilities consumed by the curation
// pipeline and the external service integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, theme names, and stage
//     names for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across collaborators.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the run.
package services
