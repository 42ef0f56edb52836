package main

import (
	"github.com/spf13/cobra"

	"curator/internal/curation"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run <theme>",
		Short: "Execute a curation run for one theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			curator, err := ctx.newCurator(store)
			if err != nil {
				return err
			}

			name := args[0]
			var outcome *curation.Outcome
			if dryRun {
				outcome, err = curator.Preview(cmd.Context(), name)
			} else {
				outcome, err = curator.Run(cmd.Context(), name)
			}
			if err != nil {
				return describeRunError(cfg.Paths.ThemesDir, name, err)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, buildRunReport(outcome))
			}
			renderOutcome(cmd, outcome, !dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Match without publishing the collection")
	return cmd
}
