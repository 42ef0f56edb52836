package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"curator/internal/config"
)

// WriteTheme writes a raw TOML theme file into the config's themes directory
// and returns its path.
func WriteTheme(t testing.TB, cfg *config.Config, slug, body string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.ThemesDir, 0o755); err != nil {
		t.Fatalf("mkdir themes dir: %v", err)
	}
	path := filepath.Join(cfg.Paths.ThemesDir, slug+".toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write theme %s: %v", slug, err)
	}
	return path
}
