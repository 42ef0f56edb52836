package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curator/internal/schedule"
	"curator/internal/themes"
)

type schedulePayload struct {
	Path     string   `json:"path,omitempty"`
	Content  string   `json:"content"`
	Warnings []string `json:"warnings,omitempty"`
}

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Render and sync the cron schedule",
	}

	scheduleCmd.AddCommand(newScheduleShowCommand(ctx))
	scheduleCmd.AddCommand(newScheduleSyncCommand(ctx))

	return scheduleCmd
}

func newScheduleShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the cron file without writing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			list, err := themes.LoadDir(cfg.Paths.ThemesDir)
			if err != nil {
				return err
			}

			content, warnings := schedule.Render(cfg, "", list)
			if ctx.jsonOutput() {
				return writeJSON(cmd, schedulePayload{Content: content, Warnings: warnings})
			}

			fmt.Fprint(cmd.OutOrStdout(), content)
			for _, warning := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warn: %s\n", warning)
			}
			return nil
		},
	}
}

func newScheduleSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Write the cron file for the configured themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			list, err := themes.LoadDir(cfg.Paths.ThemesDir)
			if err != nil {
				return err
			}

			content, warnings, err := schedule.Sync(cfg, list)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, schedulePayload{
					Path:     cfg.Schedule.CronFile,
					Content:  content,
					Warnings: warnings,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schedule written to %s\n", cfg.Schedule.CronFile)
			for _, warning := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warn: %s\n", warning)
			}
			return nil
		},
	}
}
