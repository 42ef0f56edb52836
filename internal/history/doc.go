// Package history persists curation run outcomes in a SQLite database so
// past runs can be listed and inspected.
package history
