package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateMetadata(); err != nil {
		return err
	}
	if err := c.validateSuggestions(); err != nil {
		return err
	}
	if err := c.validateCuration(); err != nil {
		return err
	}
	if err := c.validateSchedule(); err != nil {
		return err
	}
	if err := c.validateTimeouts(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.URL == "" {
		return errors.New("library.url is required. Set PLEX_URL env var or edit the config file (create with 'curator config init')")
	}
	if !strings.HasPrefix(c.Library.URL, "http://") && !strings.HasPrefix(c.Library.URL, "https://") {
		return fmt.Errorf("library.url must start with http:// or https://, got %q", c.Library.URL)
	}
	if c.Library.Token == "" {
		return errors.New("library.token is required. Set PLEX_TOKEN env var or edit the config file")
	}
	if c.Library.Section == "" {
		return errors.New("library.section must be set")
	}
	return nil
}

func (c *Config) validateMetadata() error {
	if c.Metadata.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/curator/config.toml"
		}
		return fmt.Errorf("metadata.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'curator config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateSuggestions() error {
	if c.Suggestions.URL != "" {
		if !strings.HasPrefix(c.Suggestions.URL, "http://") && !strings.HasPrefix(c.Suggestions.URL, "https://") {
			return fmt.Errorf("suggestions.url must start with http:// or https://, got %q", c.Suggestions.URL)
		}
	}
	return ensurePositiveMap(map[string]int{
		"suggestions.timeout":    c.Suggestions.Timeout,
		"suggestions.max_titles": c.Suggestions.MaxTitles,
	})
}

func (c *Config) validateCuration() error {
	return ensurePositiveMap(map[string]int{
		"curation.max_candidates":       c.Curation.MaxCandidates,
		"curation.max_collection_items": c.Curation.MaxCollectionItems,
		"curation.title_lookup_workers": c.Curation.TitleLookupWorkers,
		"curation.score_cutoff":         c.Curation.ScoreCutoff,
		"curation.hit_weight":           c.Curation.HitWeight,
		"curation.fuzz_weight":          c.Curation.FuzzWeight,
	})
}

func (c *Config) validateSchedule() error {
	if c.Schedule.MonthlyAuto && c.Schedule.CronFile == "" {
		return errors.New("schedule.cron_file must be set when schedule.monthly_auto is true")
	}
	return nil
}

func (c *Config) validateTimeouts() error {
	return ensurePositiveMap(map[string]int{
		"library.timeout":               c.Library.Timeout,
		"metadata.timeout":              c.Metadata.Timeout,
		"notifications.request_timeout": c.Notifications.RequestTimeout,
	})
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
