package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	themeKey contextKey = "theme"
	stageKey contextKey = "stage"
)

// WithRunID annotates context with the curation run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the curation run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTheme annotates context with the theme name being curated.
func WithTheme(ctx context.Context, theme string) context.Context {
	if theme == "" {
		return ctx
	}
	return context.WithValue(ctx, themeKey, theme)
}

// ThemeFromContext returns the theme name if present.
func ThemeFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(themeKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
