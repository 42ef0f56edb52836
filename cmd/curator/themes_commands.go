package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/api"
	"curator/internal/themes"
)

func newThemesCommand(ctx *commandContext) *cobra.Command {
	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and scaffold curation themes",
	}

	themesCmd.AddCommand(newThemesListCommand(ctx))
	themesCmd.AddCommand(newThemesShowCommand(ctx))
	themesCmd.AddCommand(newThemesInitCommand(ctx))

	return themesCmd
}

func newThemesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			list, err := themes.LoadDir(cfg.Paths.ThemesDir)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, api.ThemesResponse{Themes: api.FromThemes(list)})
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintf(out, "No themes found in %s\n", cfg.Paths.ThemesDir)
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, theme := range list {
				cron := theme.Cron
				if strings.TrimSpace(cron) == "" {
					cron = "-"
				}
				keywords := strings.Join(theme.Keywords, ", ")
				if keywords == "" {
					keywords = "(from name)"
				}
				rows = append(rows, []string{theme.Slug, theme.CollectionName(), cron, keywords})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Slug", "Collection", "Cron", "Keywords"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newThemesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one theme in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			theme, err := themes.LoadByName(cfg.Paths.ThemesDir, args[0])
			if err != nil {
				return describeRunError(cfg.Paths.ThemesDir, args[0], err)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, api.ThemeResponse{Theme: api.FromTheme(theme)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderDetailLine("Slug", theme.Slug))
			fmt.Fprintln(out, renderDetailLine("Collection", theme.CollectionName()))
			keywords := strings.Join(theme.Keywords, ", ")
			if keywords == "" {
				keywords = "(generated from name)"
			}
			fmt.Fprintln(out, renderDetailLine("Keywords", keywords))
			if theme.HasPrompt() {
				fmt.Fprintln(out, renderDetailLine("Prompt", theme.Prompt))
			}
			cron := strings.TrimSpace(theme.Cron)
			if cron == "" {
				cron = "(not scheduled)"
			}
			fmt.Fprintln(out, renderDetailLine("Cron", cron))
			if theme.Filters.MinRating > 0 {
				fmt.Fprintln(out, renderDetailLine("Min rating", fmt.Sprintf("%.1f", theme.Filters.MinRating)))
			}
			return nil
		},
	}
}

func newThemesInitCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a sample theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			slug := strings.ToLower(strings.TrimSpace(args[0]))
			sample := themes.Theme{
				Slug:     slug,
				Keywords: []string{slug},
			}
			sample.Name = sample.CollectionName()

			target := filepath.Join(cfg.Paths.ThemesDir, slug+".toml")
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("theme file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check theme path: %w", err)
				}
			}

			path, err := themes.Save(cfg.Paths.ThemesDir, sample)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created theme %s at %s\n", slug, path)
			fmt.Fprintln(out, "Edit the file to set keywords, an optional prompt, and an optional cron schedule.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing theme file")
	return cmd
}
