package testsupport

import (
	"path/filepath"
	"testing"

	"curator/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.ThemesDir = filepath.Join(base, "themes")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Metadata.APIKey = "test"
	cfgVal.Schedule.CronFile = filepath.Join(base, "cron.d", "curator")
	cfgVal.API.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMetadataKey sets the TMDB API key on the test config.
func WithMetadataKey(key string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metadata.APIKey = key
	}
}

// WithLibrary points the test config at a Plex endpoint.
func WithLibrary(url, token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.URL = url
		b.cfg.Library.Token = token
	}
}

// WithNtfyTopic enables push notifications on the test config.
func WithNtfyTopic(topic string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.NtfyTopic = topic
	}
}

// WithMonthlySchedule enables the automatic monthly entry on the test config.
func WithMonthlySchedule(cron string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Schedule.MonthlyAuto = true
		if cron != "" {
			b.cfg.Schedule.MonthlyCron = cron
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
