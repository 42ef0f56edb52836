package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"curator/internal/candidates/tmdb"
	"curator/internal/config"
	"curator/internal/library"
	"curator/internal/logging"
	"curator/internal/services"
	"curator/internal/services/ollama"
)

const checkTimeout = 10 * time.Second

// CheckMetadata verifies that the TMDB API is reachable and the key is valid.
func CheckMetadata(ctx context.Context, cfg *config.Config) Result {
	const name = "TMDB"

	if strings.TrimSpace(cfg.Metadata.APIKey) == "" {
		return Result{Name: name, Detail: "API key missing"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	client, err := tmdb.NewClient(tmdb.Config{
		APIKey:         cfg.Metadata.APIKey,
		BaseURL:        cfg.Metadata.BaseURL,
		Language:       cfg.Metadata.Language,
		TimeoutSeconds: cfg.Metadata.Timeout,
	})
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if err := client.Ping(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeNetworkError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "API reachable"}
}

// CheckLibrary verifies Plex connectivity and authentication.
func CheckLibrary(ctx context.Context, cfg *config.Config) Result {
	const name = "Plex"

	if strings.TrimSpace(cfg.Library.URL) == "" {
		return Result{Name: name, Detail: "missing url"}
	}
	if strings.TrimSpace(cfg.Library.Token) == "" {
		return Result{Name: name, Detail: "missing token"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	client, err := library.NewClient(library.Config{
		URL:            cfg.Library.URL,
		Token:          cfg.Library.Token,
		Section:        cfg.Library.Section,
		TimeoutSeconds: cfg.Library.Timeout,
	}, logging.NewNop())
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if err := client.Ping(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeNetworkError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}

// CheckSuggestions verifies the Ollama server is reachable and the configured
// model has been pulled.
func CheckSuggestions(ctx context.Context, cfg *config.Config) Result {
	const name = "Ollama"

	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	client := ollama.NewClient(ollama.Config{
		BaseURL:        cfg.Suggestions.URL,
		Model:          cfg.Suggestions.Model,
		TimeoutSeconds: cfg.Suggestions.Timeout,
	})
	models, err := client.Models(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeNetworkError(err)}
	}

	model := strings.TrimSpace(cfg.Suggestions.Model)
	if model != "" {
		found := false
		for _, candidate := range models {
			if strings.EqualFold(candidate, model) {
				found = true
				break
			}
		}
		if !found {
			return Result{Name: name, Detail: fmt.Sprintf("model %s not pulled (%d models available)", model, len(models))}
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d models available", len(models))}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// summarizeNetworkError produces a human-readable summary for check failures.
func summarizeNetworkError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out (service unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (service unreachable)"
	}
	if errors.Is(err, services.ErrTimeout) {
		return "check timed out (service unreachable)"
	}
	return err.Error()
}
