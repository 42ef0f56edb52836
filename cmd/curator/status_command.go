package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"curator/internal/api"
	"curator/internal/config"
	"curator/internal/preflight"
	"curator/internal/themes"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, service checks, and run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			names, err := themes.Names(cfg.Paths.ThemesDir)
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			checks := preflight.RunAll(cmd.Context(), cfg)

			payload := api.Status{
				Version:    cliVersion,
				ThemeCount: len(names),
				Checks:     api.FromChecks(checks),
			}
			if summary, err := store.Health(cmd.Context()); err == nil {
				payload.Runs = api.FromSummary(summary)
			}
			var lastLine string
			if runs, err := store.List(cmd.Context(), 1); err == nil && len(runs) > 0 {
				last := api.FromRun(runs[0])
				payload.LastRun = &last
				lastLine = fmt.Sprintf("%s %s at %s", runs[0].Theme, runs[0].Status, formatRunTime(runs[0].StartedAt))
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderDetailLine("Version", cliVersion))
			fmt.Fprintln(out, renderDetailLine("Config file", describeConfigFile(ctx)))
			fmt.Fprintln(out, renderDetailLine("Data directory", cfg.Paths.DataDir))
			fmt.Fprintln(out, renderDetailLine("Themes directory", fmt.Sprintf("%s (%d themes)", cfg.Paths.ThemesDir, len(names))))
			fmt.Fprintln(out, renderDetailLine("Library", fmt.Sprintf("%s (section %s)", cfg.Library.URL, cfg.Library.Section)))
			fmt.Fprintln(out, renderDetailLine("Suggestions", describeOptional(cfg.Suggestions.URL)))
			fmt.Fprintln(out, renderDetailLine("Notifications", describeOptional(cfg.Notifications.NtfyTopic)))
			fmt.Fprintln(out, renderDetailLine("API bind", describeOptional(cfg.API.Bind)))

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Service Checks", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, check := range checks {
				kind := statusOK
				if !check.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(check.Name, kind, check.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Run History", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderDetailLine("Recorded runs", fmt.Sprintf("%d (%d succeeded, %d failed)",
				payload.Runs.Total, payload.Runs.Succeeded, payload.Runs.Failed)))
			if lastLine == "" {
				lastLine = "none recorded"
			}
			fmt.Fprintln(out, renderDetailLine("Last run", lastLine))
			return nil
		},
	}
}

func describeConfigFile(ctx *commandContext) string {
	var flag string
	if ctx.configFlag != nil {
		flag = strings.TrimSpace(*ctx.configFlag)
	}
	path, exists, err := config.ResolvePath(flag)
	if err != nil {
		return "(unresolved)"
	}
	if !exists {
		return path + " (not created; defaults in effect)"
	}
	return path
}

func describeOptional(value string) string {
	if strings.TrimSpace(value) == "" {
		return "disabled"
	}
	return value
}
