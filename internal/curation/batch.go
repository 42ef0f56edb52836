package curation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"curator/internal/logging"
	"curator/internal/services"
	"curator/internal/themes"
)

// Report pairs a theme with its run result for batch operations.
type Report struct {
	Theme   string
	Outcome *Outcome
	Err     error
}

// RunAll executes every scheduled theme (those carrying a cron expression)
// sequentially and reports per-theme results. A failing theme does not stop
// the rest; context cancellation does.
func (c *Curator) RunAll(ctx context.Context) ([]Report, error) {
	list, err := themes.LoadDir(c.cfg.Paths.ThemesDir)
	if err != nil {
		return nil, err
	}
	var reports []Report
	for _, theme := range list {
		if strings.TrimSpace(theme.Cron) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		outcome, runErr := c.Run(ctx, theme.Slug)
		reports = append(reports, Report{Theme: theme.Slug, Outcome: outcome, Err: runErr})
	}
	c.logger.Info("scheduled sweep finished",
		logging.Int("themes", len(reports)),
		logging.Int("succeeded", countSucceeded(reports)))
	return reports, nil
}

// RunMonth runs the theme named after the given month, or after the current
// month when empty. When no theme file exists for that month, the error names
// the month themes that are present.
func (c *Curator) RunMonth(ctx context.Context, month string) (*Outcome, error) {
	month = strings.ToLower(strings.TrimSpace(month))
	if month == "" {
		month = themes.MonthName(time.Now())
	}
	if !themes.IsMonth(month) {
		return nil, services.Wrap(services.ErrValidation, "curation", "monthly run", fmt.Sprintf("%q is not a month name", month), nil)
	}
	outcome, err := c.Run(ctx, month)
	if err != nil && errors.Is(err, services.ErrNotFound) {
		available := "none"
		if months := c.monthThemes(); len(months) > 0 {
			available = strings.Join(months, ", ")
		}
		return nil, services.Wrap(services.ErrNotFound, "curation", "monthly run", fmt.Sprintf("no theme file for %s (month themes present: %s)", month, available), nil)
	}
	return outcome, err
}

// monthThemes lists the month-named theme files present in the themes
// directory, in calendar order.
func (c *Curator) monthThemes() []string {
	names, err := themes.Names(c.cfg.Paths.ThemesDir)
	if err != nil {
		return nil
	}
	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[name] = struct{}{}
	}
	var months []string
	for _, month := range themes.Months {
		if _, ok := present[month]; ok {
			months = append(months, month)
		}
	}
	return months
}

func countSucceeded(reports []Report) int {
	count := 0
	for _, report := range reports {
		if report.Err == nil {
			count++
		}
	}
	return count
}
