package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	c.normalizeMetadata()
	c.normalizeSuggestions()
	c.normalizeCuration()
	c.normalizeSchedule()
	c.normalizeNotifications()
	c.normalizeAPI()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ThemesDir) == "" {
		c.Paths.ThemesDir = defaultThemesDir
	}
	if c.Paths.ThemesDir, err = expandPath(c.Paths.ThemesDir); err != nil {
		return fmt.Errorf("paths.themes_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	if value, ok := os.LookupEnv("PLEX_URL"); ok && strings.TrimSpace(value) != "" {
		c.Library.URL = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("PLEX_TOKEN"); ok && strings.TrimSpace(value) != "" {
		c.Library.Token = strings.TrimSpace(value)
	}
	c.Library.URL = strings.TrimRight(strings.TrimSpace(c.Library.URL), "/")
	c.Library.Token = strings.TrimSpace(c.Library.Token)
	c.Library.Section = strings.TrimSpace(c.Library.Section)
	if c.Library.Section == "" {
		c.Library.Section = defaultLibrarySection
	}
	if c.Library.Timeout <= 0 {
		c.Library.Timeout = defaultLibraryTimeout
	}
}

func (c *Config) normalizeMetadata() {
	if value, ok := os.LookupEnv("TMDB_API_KEY"); ok && strings.TrimSpace(value) != "" {
		c.Metadata.APIKey = strings.TrimSpace(value)
	}
	c.Metadata.APIKey = strings.TrimSpace(c.Metadata.APIKey)
	c.Metadata.BaseURL = strings.TrimRight(strings.TrimSpace(c.Metadata.BaseURL), "/")
	if c.Metadata.BaseURL == "" {
		c.Metadata.BaseURL = defaultMetadataBaseURL
	}
	c.Metadata.Language = strings.TrimSpace(c.Metadata.Language)
	if c.Metadata.Language == "" {
		c.Metadata.Language = defaultMetadataLanguage
	}
	if c.Metadata.Timeout <= 0 {
		c.Metadata.Timeout = defaultMetadataTimeout
	}
}

func (c *Config) normalizeSuggestions() {
	if value, ok := os.LookupEnv("OLLAMA_URL"); ok && strings.TrimSpace(value) != "" {
		c.Suggestions.URL = strings.TrimSpace(value)
	}
	c.Suggestions.URL = strings.TrimRight(strings.TrimSpace(c.Suggestions.URL), "/")
	c.Suggestions.Model = strings.TrimSpace(c.Suggestions.Model)
	if c.Suggestions.Model == "" {
		c.Suggestions.Model = defaultSuggestionsModel
	}
	if c.Suggestions.Timeout <= 0 {
		c.Suggestions.Timeout = defaultSuggestionsTimeout
	}
	if c.Suggestions.MaxTitles <= 0 {
		c.Suggestions.MaxTitles = defaultSuggestionsMaxTitles
	}
}

func (c *Config) normalizeCuration() {
	if c.Curation.MaxCandidates <= 0 {
		c.Curation.MaxCandidates = defaultMaxCandidates
	}
	if c.Curation.MaxCollectionItems <= 0 {
		c.Curation.MaxCollectionItems = defaultMaxCollectionItems
	}
	if c.Curation.TitleLookupWorkers <= 0 {
		c.Curation.TitleLookupWorkers = defaultTitleLookupWorkers
	}
	if c.Curation.ScoreCutoff <= 0 {
		c.Curation.ScoreCutoff = defaultScoreCutoff
	}
	if c.Curation.HitWeight <= 0 {
		c.Curation.HitWeight = defaultHitWeight
	}
	if c.Curation.FuzzWeight <= 0 {
		c.Curation.FuzzWeight = defaultFuzzWeight
	}
}

func (c *Config) normalizeSchedule() {
	c.Schedule.MonthlyCron = strings.TrimSpace(c.Schedule.MonthlyCron)
	if c.Schedule.MonthlyCron == "" {
		c.Schedule.MonthlyCron = defaultMonthlyCron
	}
	c.Schedule.CronFile = strings.TrimSpace(c.Schedule.CronFile)
	if c.Schedule.CronFile == "" {
		c.Schedule.CronFile = defaultCronFile
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
}

func (c *Config) normalizeAPI() {
	c.API.Bind = strings.TrimSpace(c.API.Bind)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = defaultLogFormat
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
