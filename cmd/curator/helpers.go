package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"curator/internal/curation"
	"curator/internal/history"
	"curator/internal/services"
)

// runReport is the JSON shape shared by run, monthly, and run-all output.
type runReport struct {
	RunID           string   `json:"runId,omitempty"`
	Theme           string   `json:"theme"`
	Collection      string   `json:"collection"`
	Status          string   `json:"status"`
	Matched         int      `json:"matched"`
	AIMatched       int      `json:"aiMatched"`
	KeywordMatched  int      `json:"keywordMatched"`
	Keywords        []string `json:"keywords,omitempty"`
	Items           []string `json:"items,omitempty"`
	DurationSeconds float64  `json:"durationSeconds"`
}

func buildRunReport(outcome *curation.Outcome) runReport {
	report := runReport{
		RunID:           outcome.RunID,
		Theme:           outcome.Theme,
		Collection:      outcome.Collection,
		Status:          string(outcome.Status),
		Matched:         outcome.Matched,
		AIMatched:       outcome.AIMatched,
		KeywordMatched:  outcome.KeywordMatched,
		Keywords:        outcome.Keywords,
		DurationSeconds: outcome.Duration().Seconds(),
	}
	for _, item := range outcome.Items {
		report.Items = append(report.Items, item.Title)
	}
	return report
}

// renderOutcome prints the matched collection for run and monthly commands.
func renderOutcome(cmd *cobra.Command, outcome *curation.Outcome, published bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Collection %q matched %d items (%d from AI titles, %d from keywords)\n",
		outcome.Collection, outcome.Matched, outcome.AIMatched, outcome.KeywordMatched)
	if len(outcome.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords: %s\n", strings.Join(outcome.Keywords, ", "))
	}

	rows := make([][]string, 0, len(outcome.Items))
	for i, item := range outcome.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Title,
			strings.Join(item.Genres, ", "),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Genres"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	))

	if published {
		fmt.Fprintf(out, "Published in %s\n", formatRunDuration(outcome.Duration()))
	} else {
		fmt.Fprintln(out, "Dry run; nothing was published")
	}
}

func buildHistoryRows(runs []*history.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		detail := strconv.Itoa(run.Matched)
		rows = append(rows, []string{
			shortRunID(run.ID),
			run.Theme,
			string(run.Status),
			detail,
			formatRunTime(run.StartedAt),
			formatRunDuration(run.Duration()),
		})
	}
	return rows
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatRunTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func formatRunDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

// describeRunError folds close theme-name matches into unknown-theme errors
// so typos surface the available slugs.
func describeRunError(themesDir, requested string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, services.ErrNotFound) {
		if suggestions := suggestThemes(themesDir, requested); len(suggestions) > 0 {
			return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
		}
	}
	return err
}
