// Package library talks to the Plex-compatible media server that holds the
// local movie catalog.
//
// It resolves the configured movie section once, enumerates its items with
// their searchable text attributes, and publishes curated collections:
// replacing any same-named collection, pinning the new one first with a "!"
// sort title, and promoting it to the home screens. Publication degrades
// gracefully: once the collection exists, cosmetic follow-up failures are
// logged instead of returned.
package library
