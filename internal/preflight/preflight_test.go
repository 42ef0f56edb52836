package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curator/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckMetadata_MissingKey(t *testing.T) {
	cfg := config.Default()
	cfg.Metadata.APIKey = ""
	result := CheckMetadata(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure for missing API key")
	}
	if result.Detail != "API key missing" {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckMetadata_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "good-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":{}}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Metadata.APIKey = "good-key"
	cfg.Metadata.BaseURL = srv.URL

	result := CheckMetadata(context.Background(), &cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckMetadata_BadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Metadata.APIKey = "bad-key"
	cfg.Metadata.BaseURL = srv.URL

	result := CheckMetadata(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure for rejected key")
	}
}

func TestCheckLibrary_MissingURL(t *testing.T) {
	cfg := config.Default()
	cfg.Library.URL = ""
	result := CheckLibrary(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure for missing URL")
	}
}

func TestCheckLibrary_MissingToken(t *testing.T) {
	cfg := config.Default()
	cfg.Library.URL = "http://localhost:32400"
	cfg.Library.Token = ""
	result := CheckLibrary(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure for missing token")
	}
}

func TestCheckLibrary_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/identity" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MediaContainer":{"machineIdentifier":"abc123"}}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Library.URL = srv.URL
	cfg.Library.Token = "token"

	result := CheckLibrary(context.Background(), &cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckSuggestions_ModelPulled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[{"name":"mistral:instruct"},{"name":"llama3"}]}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Suggestions.URL = srv.URL
	cfg.Suggestions.Model = "mistral:instruct"

	result := CheckSuggestions(context.Background(), &cfg)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2 models") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckSuggestions_ModelMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3"}]}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Suggestions.URL = srv.URL
	cfg.Suggestions.Model = "mistral:instruct"

	result := CheckSuggestions(context.Background(), &cfg)
	if result.Passed {
		t.Fatal("expected failure when model not pulled")
	}
	if !strings.Contains(result.Detail, "not pulled") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_SkipsSuggestionsWhenDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.ThemesDir = t.TempDir()
	cfg.Metadata.APIKey = ""
	cfg.Library.URL = ""
	cfg.Suggestions.URL = ""

	results := RunAll(context.Background(), &cfg)
	// Data dir, themes dir, TMDB, Plex -- no Ollama entry.
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Name == "Ollama" {
			t.Fatal("expected Ollama check to be skipped")
		}
	}
	if !results[0].Passed || !results[1].Passed {
		t.Fatalf("expected directory checks to pass: %+v", results[:2])
	}
	if results[2].Passed || results[3].Passed {
		t.Fatalf("expected service checks to fail without credentials: %+v", results[2:])
	}
}
