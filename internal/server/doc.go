// Package server exposes curator state over a small JSON HTTP API: service
// status, themes, run history, and launching curation runs.
package server
