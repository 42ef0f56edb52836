package api

import (
	"curator/internal/history"
	"curator/internal/preflight"
	"curator/internal/themes"
)

// FromRun converts a history record to its API representation.
func FromRun(run *history.Run) Run {
	if run == nil {
		return Run{}
	}

	dto := Run{
		ID:             run.ID,
		Theme:          run.Theme,
		Collection:     run.Collection,
		Status:         string(run.Status),
		Matched:        run.Matched,
		AIMatched:      run.AIMatched,
		KeywordMatched: run.KeywordMatched,
		Keywords:       run.Keywords,
		ErrorMessage:   run.ErrorMessage,
	}
	if !run.StartedAt.IsZero() {
		dto.StartedAt = run.StartedAt.UTC().Format(dateTimeFormat)
	}
	if !run.FinishedAt.IsZero() {
		dto.FinishedAt = run.FinishedAt.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromRuns converts a slice of history records into API DTOs.
func FromRuns(runs []*history.Run) []Run {
	if len(runs) == 0 {
		return nil
	}
	out := make([]Run, 0, len(runs))
	for _, run := range runs {
		out = append(out, FromRun(run))
	}
	return out
}

// FromTheme converts a theme to its API representation.
func FromTheme(theme themes.Theme) Theme {
	return Theme{
		Slug:      theme.Slug,
		Name:      theme.CollectionName(),
		Prompt:    theme.Prompt,
		Keywords:  theme.Keywords,
		Cron:      theme.Cron,
		MinRating: theme.Filters.MinRating,
	}
}

// FromThemes converts a slice of themes into API DTOs.
func FromThemes(themeList []themes.Theme) []Theme {
	if len(themeList) == 0 {
		return nil
	}
	out := make([]Theme, 0, len(themeList))
	for _, theme := range themeList {
		out = append(out, FromTheme(theme))
	}
	return out
}

// FromCheck converts a preflight result to its API representation.
func FromCheck(result preflight.Result) Check {
	return Check{
		Name:   result.Name,
		Passed: result.Passed,
		Detail: result.Detail,
	}
}

// FromChecks converts a slice of preflight results into API DTOs.
func FromChecks(results []preflight.Result) []Check {
	if len(results) == 0 {
		return nil
	}
	out := make([]Check, 0, len(results))
	for _, result := range results {
		out = append(out, FromCheck(result))
	}
	return out
}

// FromSummary converts run statistics into the API payload.
func FromSummary(summary history.Summary) RunSummary {
	return RunSummary{
		Total:     summary.Total,
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
	}
}
