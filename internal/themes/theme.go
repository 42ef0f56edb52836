package themes

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme describes one curated collection: how to name it, how to find
// candidates for it, and optionally when to run it.
type Theme struct {
	// Slug is the theme's identifier, taken from the file stem. It never
	// round-trips through the file body.
	Slug string `toml:"-"`

	// Name overrides the collection display name. Empty means "derive from
	// the slug".
	Name string `toml:"name,omitempty"`

	// Prompt enables the AI title-suggestion path when non-empty.
	Prompt string `toml:"prompt,omitempty"`

	// Keywords bypass AI keyword generation when provided.
	Keywords []string `toml:"keywords,omitempty"`

	// Cron schedules recurring runs of this theme when non-empty.
	Cron string `toml:"cron,omitempty"`

	Filters Filters `toml:"filters,omitempty"`
}

// Filters narrow which search results qualify as candidates.
type Filters struct {
	MinRating float64 `toml:"min_rating,omitempty"`
}

var titleCaser = cases.Title(language.English)

// CollectionName returns the display name for the published collection,
// deriving a title-cased form of the slug when no explicit name is set.
func (t Theme) CollectionName() string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return titleCaser.String(t.Slug)
}

// HasPrompt reports whether the AI title-suggestion path is enabled.
func (t Theme) HasPrompt() bool {
	return strings.TrimSpace(t.Prompt) != ""
}

// Validate checks the theme for values that would break a run or a schedule
// sync.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.Slug) == "" {
		return fmt.Errorf("theme slug must not be empty")
	}
	if strings.ContainsAny(t.Slug, `/\`) {
		return fmt.Errorf("theme slug %q must not contain path separators", t.Slug)
	}
	if t.Filters.MinRating < 0 {
		return fmt.Errorf("theme %s: min_rating must not be negative", t.Slug)
	}
	if cronExpr := strings.TrimSpace(t.Cron); cronExpr != "" {
		if _, err := cron.ParseStandard(cronExpr); err != nil {
			return fmt.Errorf("theme %s: invalid cron expression %q: %w", t.Slug, cronExpr, err)
		}
	}
	return nil
}
