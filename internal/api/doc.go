// Package api defines the transport DTOs shared by the HTTP server and CLI
// JSON output, plus converters from internal types.
//
// DTO fields use camelCase JSON tags and RFC3339 millisecond timestamps so
// payloads stay stable even when internal models evolve.
package api
