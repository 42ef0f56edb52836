package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"curator/internal/config"
)

func TestLoadDefaultConfigUsesEnvCredentialsAndExpandsPaths(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	t.Setenv("PLEX_URL", "http://plex.local:32400")
	t.Setenv("PLEX_TOKEN", "plex-token")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "curator")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	wantThemes := filepath.Join(tempHome, ".config", "curator", "themes")
	if cfg.Paths.ThemesDir != wantThemes {
		t.Fatalf("unexpected themes dir: got %q want %q", cfg.Paths.ThemesDir, wantThemes)
	}
	if cfg.Metadata.APIKey != "test-key" {
		t.Fatalf("expected metadata key from env, got %q", cfg.Metadata.APIKey)
	}
	if cfg.Library.URL != "http://plex.local:32400" {
		t.Fatalf("expected library url from env, got %q", cfg.Library.URL)
	}
	if cfg.Library.Section != "Movies" {
		t.Fatalf("unexpected library section: %q", cfg.Library.Section)
	}
	if cfg.Metadata.BaseURL != config.Default().Metadata.BaseURL {
		t.Fatalf("unexpected metadata base url: %q", cfg.Metadata.BaseURL)
	}
	if cfg.Suggestions.Model != "mistral:instruct" {
		t.Fatalf("unexpected suggestions model: %q", cfg.Suggestions.Model)
	}
	if cfg.Curation.MaxCandidates != 1000 {
		t.Fatalf("unexpected max candidates: %d", cfg.Curation.MaxCandidates)
	}
	if cfg.Curation.MaxCollectionItems != 15 {
		t.Fatalf("unexpected max collection items: %d", cfg.Curation.MaxCollectionItems)
	}
	if cfg.Curation.TitleLookupWorkers != 10 {
		t.Fatalf("unexpected worker count: %d", cfg.Curation.TitleLookupWorkers)
	}
	if cfg.Curation.ScoreCutoff != 70 || cfg.Curation.HitWeight != 20 || cfg.Curation.FuzzWeight != 100 {
		t.Fatalf("unexpected scoring policy: %+v", cfg.Curation)
	}
	if cfg.HistoryPath() != filepath.Join(wantData, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.HistoryPath())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.ThemesDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "curator.toml")

	type payload struct {
		Library struct {
			URL   string `toml:"url"`
			Token string `toml:"token"`
		} `toml:"library"`
		Metadata struct {
			APIKey  string `toml:"api_key"`
			BaseURL string `toml:"base_url"`
		} `toml:"metadata"`
		Curation struct {
			ScoreCutoff int `toml:"score_cutoff"`
			HitWeight   int `toml:"hit_weight"`
		} `toml:"curation"`
	}
	custom := payload{}
	custom.Library.URL = "http://media.example.com:32400/"
	custom.Library.Token = "abc123"
	custom.Metadata.APIKey = "tmdb-key"
	custom.Metadata.BaseURL = "https://example.com/tmdb"
	custom.Curation.ScoreCutoff = 55
	custom.Curation.HitWeight = 30
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Library.URL != "http://media.example.com:32400" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Library.URL)
	}
	if cfg.Metadata.BaseURL != "https://example.com/tmdb" {
		t.Fatalf("expected metadata base url override, got %q", cfg.Metadata.BaseURL)
	}
	if cfg.Curation.ScoreCutoff != 55 {
		t.Fatalf("expected score cutoff 55, got %d", cfg.Curation.ScoreCutoff)
	}
	if cfg.Curation.HitWeight != 30 {
		t.Fatalf("expected hit weight 30, got %d", cfg.Curation.HitWeight)
	}
	if cfg.Curation.FuzzWeight != 100 {
		t.Fatalf("expected fuzz weight default, got %d", cfg.Curation.FuzzWeight)
	}
}

func TestEnvVarOverridesConfigFileForCredentials(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "curator.toml")

	type payload struct {
		Library struct {
			URL   string `toml:"url"`
			Token string `toml:"token"`
		} `toml:"library"`
		Metadata struct {
			APIKey string `toml:"api_key"`
		} `toml:"metadata"`
		Suggestions struct {
			URL string `toml:"url"`
		} `toml:"suggestions"`
	}
	custom := payload{}
	custom.Library.URL = "http://file.example.com:32400"
	custom.Library.Token = "file-plex"
	custom.Metadata.APIKey = "file-tmdb"
	custom.Suggestions.URL = "http://file.example.com:11434"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("TMDB_API_KEY", "env-tmdb")
	t.Setenv("PLEX_URL", "http://env.example.com:32400")
	t.Setenv("PLEX_TOKEN", "env-plex")
	t.Setenv("OLLAMA_URL", "http://env.example.com:11434")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Metadata.APIKey != "env-tmdb" {
		t.Errorf("expected metadata key from env, got %q", cfg.Metadata.APIKey)
	}
	if cfg.Library.URL != "http://env.example.com:32400" {
		t.Errorf("expected library url from env, got %q", cfg.Library.URL)
	}
	if cfg.Library.Token != "env-plex" {
		t.Errorf("expected library token from env, got %q", cfg.Library.Token)
	}
	if cfg.Suggestions.URL != "http://env.example.com:11434" {
		t.Errorf("expected suggestions url from env, got %q", cfg.Suggestions.URL)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "your_tmdb_api_key_here") {
		t.Fatalf("sample config missing placeholder TMDB key: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.DataDir, "curator") {
		t.Fatalf("expected data dir to contain curator, got %q", cfg.Paths.DataDir)
	}
	if cfg.Curation.ScoreCutoff != 70 {
		t.Fatalf("expected sample score cutoff 70, got %d", cfg.Curation.ScoreCutoff)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	valid := func() config.Config {
		cfg := config.Default()
		cfg.Library.URL = "http://plex.local:32400"
		cfg.Library.Token = "token"
		cfg.Metadata.APIKey = "key"
		return cfg
	}

	cfg := valid()
	cfg.Library.URL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing library url")
	}

	cfg = valid()
	cfg.Library.URL = "plex.local:32400"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for library url without scheme")
	}

	cfg = valid()
	cfg.Library.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing library token")
	}

	cfg = valid()
	cfg.Metadata.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing metadata api key")
	}

	cfg = valid()
	cfg.Curation.TitleLookupWorkers = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero worker count")
	}

	cfg = valid()
	cfg.Notifications.RequestTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero notification timeout")
	}

	cfg = valid()
	cfg.Schedule.MonthlyAuto = true
	cfg.Schedule.CronFile = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when monthly_auto lacks cron_file")
	}
}
