// Package notifications delivers curation run outcomes via pluggable
// notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. All curation code depends only on the simple Service interface,
// so alternative transports can be added without touching callers.
package notifications
