package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Run describes a recorded curation run in a transport-friendly format.
type Run struct {
	ID             string   `json:"id"`
	Theme          string   `json:"theme"`
	Collection     string   `json:"collection"`
	Status         string   `json:"status"`
	Matched        int      `json:"matched"`
	AIMatched      int      `json:"aiMatched"`
	KeywordMatched int      `json:"keywordMatched"`
	Keywords       []string `json:"keywords,omitempty"`
	ErrorMessage   string   `json:"errorMessage,omitempty"`
	StartedAt      string   `json:"startedAt,omitempty"`
	FinishedAt     string   `json:"finishedAt,omitempty"`
}

// Theme describes a curation theme for API consumers.
type Theme struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Prompt    string   `json:"prompt,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Cron      string   `json:"cron,omitempty"`
	MinRating float64  `json:"minRating,omitempty"`
}

// Check mirrors a preflight check outcome.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// RunSummary aggregates run counts.
type RunSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Status aggregates service state for the status endpoint.
type Status struct {
	Version    string     `json:"version"`
	ThemeCount int        `json:"themeCount"`
	Checks     []Check    `json:"checks"`
	Runs       RunSummary `json:"runs"`
	LastRun    *Run       `json:"lastRun,omitempty"`
}

// RunsResponse wraps a collection of runs for API responses.
type RunsResponse struct {
	Runs []Run `json:"runs"`
}

// ThemesResponse wraps a collection of themes.
type ThemesResponse struct {
	Themes []Theme `json:"themes"`
}

// ThemeResponse wraps a single theme.
type ThemeResponse struct {
	Theme Theme `json:"theme"`
}

// RunAccepted acknowledges an asynchronously launched curation run.
type RunAccepted struct {
	Theme string `json:"theme"`
	State string `json:"state"`
}

// ErrorResponse carries a transport-level error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
