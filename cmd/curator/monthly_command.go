package main

import (
	"github.com/spf13/cobra"
)

func newMonthlyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly [month]",
		Short: "Run the current month's theme, or a named month",
		Args:  cobra.MaximumNArgs(1),
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

			month := ""
			if len(args) > 0 {
				month = args[0]
			}
			outcome, err := curator.RunMonth(cmd.Context(), month)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, buildRunReport(outcome))
			}
			renderOutcome(cmd, outcome, true)
			return nil
		},
	}
}
