package preflight

import (
	"context"
	"strings"

	"curator/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// The suggestion backend is only checked when a server URL is configured.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Data directory", cfg.Paths.DataDir))
	results = append(results, CheckDirectoryAccess("Themes directory", cfg.Paths.ThemesDir))
	results = append(results, CheckMetadata(ctx, cfg))
	results = append(results, CheckLibrary(ctx, cfg))

	if strings.TrimSpace(cfg.Suggestions.URL) != "" {
		results = append(results, CheckSuggestions(ctx, cfg))
	}

	return results
}
