package history

import "time"

// RunStatus describes how a curation run ended.
type RunStatus string

const (
	// StatusSucceeded marks a run that published a collection.
	StatusSucceeded RunStatus = "succeeded"
	// StatusFailed marks a run that ended without publishing.
	StatusFailed RunStatus = "failed"
)

// Valid reports whether the status is one the store accepts.
func (s RunStatus) Valid() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Run records the outcome of a single curation run.
type Run struct {
	ID             string
	Theme          string
	Collection     string
	Status         RunStatus
	Matched        int
	AIMatched      int
	KeywordMatched int
	Keywords       []string
	ErrorMessage   string
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Duration returns how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary aggregates run counts for diagnostic output.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}
