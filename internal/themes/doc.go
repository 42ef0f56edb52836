// Package themes loads and persists the TOML theme files that drive
// collection curation.
package themes
