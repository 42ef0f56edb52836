// Package curation orchestrates theme curation runs. A run resolves the
// theme's keywords, aggregates metadata candidates, matches them against the
// media library, publishes the resulting collection, and records the outcome
// in run history. All collaborators are injected so each run carries its own
// dependencies instead of reaching for process-global state.
package curation
