package schedule

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/robfig/cron/v3"

	"curator/internal/config"
	"curator/internal/themes"
)

const fallbackMonthlyCron = "0 3 1 * *"

// Render produces the cron file content for the given config and themes.
// Themes without a cron expression are ignored. Invalid expressions never
// reach the file; they are skipped and reported in the returned warnings.
// The binary argument is the curator executable the entries invoke.
func Render(cfg *config.Config, binary string, themeList []themes.Theme) (string, []string) {
	var b strings.Builder
	var warnings []string

	if strings.TrimSpace(binary) == "" {
		binary = "curator"
	}

	b.WriteString("# Curator - Auto-generated schedule\n")
	b.WriteString("# DO NOT EDIT MANUALLY - Changes will be overwritten\n\n")

	if cfg.Schedule.MonthlyAuto {
		cronExpr := strings.TrimSpace(cfg.Schedule.MonthlyCron)
		if cronExpr == "" {
			cronExpr = fallbackMonthlyCron
		}
		if _, err := cron.ParseStandard(cronExpr); err != nil {
			warnings = append(warnings, fmt.Sprintf("monthly entry skipped: invalid cron %q: %v", cronExpr, err))
		} else {
			b.WriteString("# Auto-run current month\n")
			fmt.Fprintf(&b, "%s %s monthly >> %s 2>&1\n\n", cronExpr, binary, logPath(cfg, "monthly"))
		}
	}

	scheduled := make([]themes.Theme, 0, len(themeList))
	for _, theme := range themeList {
		if strings.TrimSpace(theme.Cron) != "" {
			scheduled = append(scheduled, theme)
		}
	}
	sort.Slice(scheduled, func(i, j int) bool { return scheduled[i].Slug < scheduled[j].Slug })

	if len(scheduled) > 0 {
		b.WriteString("# Scheduled Curations\n")
		for _, theme := range scheduled {
			cronExpr := strings.TrimSpace(theme.Cron)
			if _, err := cron.ParseStandard(cronExpr); err != nil {
				warnings = append(warnings, fmt.Sprintf("theme %s skipped: invalid cron %q: %v", theme.Slug, cronExpr, err))
				continue
			}
			fmt.Fprintf(&b, "# Run %s\n", theme.Slug)
			fmt.Fprintf(&b, "%s %s run %s >> %s 2>&1\n", cronExpr, binary, theme.Slug, logPath(cfg, theme.Slug))
		}
	}

	return b.String(), warnings
}

// Sync renders the schedule for the configured themes and writes it to the
// configured cron file. It returns the written content alongside any
// warnings for skipped entries.
func Sync(cfg *config.Config, themeList []themes.Theme) (string, []string, error) {
	path := strings.TrimSpace(cfg.Schedule.CronFile)
	if path == "" {
		return "", nil, errors.New("schedule cron_file is not configured")
	}

	content, warnings := Render(cfg, executablePath(), themeList)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", warnings, fmt.Errorf("create cron file directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", warnings, fmt.Errorf("write cron file %s: %w", path, err)
	}
	return content, warnings, nil
}

func logPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.Paths.LogDir, "curator-"+name+".log")
}

func executablePath() string {
	if path, err := os.Executable(); err == nil && strings.TrimSpace(path) != "" {
		return path
	}
	return "curator"
}
