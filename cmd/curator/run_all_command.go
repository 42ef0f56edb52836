package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curator/internal/services"
)

type sweepEntry struct {
	Theme string     `json:"theme"`
	Error string     `json:"error,omitempty"`
	Run   *runReport `json:"run,omitempty"`
}

func newRunAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run-all",
		Short: "Run every theme that carries a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			curator, err := ctx.newCurator(store)
			if err != nil {
				return err
			}

			reports, sweepErr := curator.RunAll(cmd.Context())

			if ctx.jsonOutput() {
				entries := make([]sweepEntry, 0, len(reports))
				for _, report := range reports {
					entry := sweepEntry{Theme: report.Theme}
					if report.Err != nil {
						entry.Error = services.FailureDetail(report.Err)
					}
					if report.Outcome != nil {
						run := buildRunReport(report.Outcome)
						entry.Run = &run
					}
					entries = append(entries, entry)
				}
				if err := writeJSON(cmd, entries); err != nil {
					return err
				}
				return sweepErr
			}

			out := cmd.OutOrStdout()
			if len(reports) == 0 {
				fmt.Fprintln(out, "No scheduled themes found")
				return sweepErr
			}

			rows := make([][]string, 0, len(reports))
			succeeded := 0
			for _, report := range reports {
				status := "succeeded"
				matched := "0"
				detail := ""
				if report.Outcome != nil {
					matched = fmt.Sprintf("%d", report.Outcome.Matched)
				}
				if report.Err != nil {
					status = "failed"
					detail = services.FailureDetail(report.Err)
				} else {
					succeeded++
				}
				rows = append(rows, []string{report.Theme, status, matched, detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Theme", "Status", "Matched", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d of %d scheduled themes succeeded\n", succeeded, len(reports))
			return sweepErr
		},
	}
}
