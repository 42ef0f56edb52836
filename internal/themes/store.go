package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"curator/internal/services"
)

const fileExtension = ".toml"

// Load reads and validates a single theme file. The theme's slug is taken
// from the file stem.
func Load(path string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Theme{}, services.Wrap(services.ErrNotFound, "themes", "load theme", fmt.Sprintf("theme file %s not found", path), nil)
		}
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	var theme Theme
	if err := toml.Unmarshal(raw, &theme); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	theme.Slug = stem(path)
	if err := theme.Validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// LoadByName loads the theme stored as <name>.toml under dir.
func LoadByName(dir, name string) (Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Theme{}, services.Wrap(services.ErrValidation, "themes", "load theme", "theme name must not be empty", nil)
	}
	return Load(filepath.Join(dir, name+fileExtension))
}

// LoadDir loads every theme file under dir, sorted by slug. A missing
// directory yields an empty slice so fresh installs list cleanly.
func LoadDir(dir string) ([]Theme, error) {
	names, err := Names(dir)
	if err != nil {
		return nil, err
	}
	themes := make([]Theme, 0, len(names))
	for _, name := range names {
		theme, err := LoadByName(dir, name)
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	return themes, nil
}

// Names lists the theme slugs available under dir, sorted.
func Names(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read themes directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExtension {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExtension))
	}
	sort.Strings(names)
	return names, nil
}

// Save validates the theme and writes it as <slug>.toml under dir, creating
// the directory when needed. It returns the written path.
func Save(dir string, theme Theme) (string, error) {
	if err := theme.Validate(); err != nil {
		return "", err
	}
	raw, err := toml.Marshal(theme)
	if err != nil {
		return "", fmt.Errorf("encode theme %s: %w", theme.Slug, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create themes directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, theme.Slug+fileExtension)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write theme %s: %w", path, err)
	}
	return path, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
