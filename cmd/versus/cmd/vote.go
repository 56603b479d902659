package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"versus/internal/adapters/tui"
	"versus/internal/application/commands"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Compare entries interactively",
	Long: `Present pairs of entries and record which one you prefer, until you
stop with esc. Candidates are drawn by the configured sampler policy;
the default mix favors entries the rating is least sure about.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if _, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), commands.SyncFailOnTombstoned, logger).Execute(ctx); err != nil {
			return err
		}

		s, err := sampler()
		if err != nil {
			return err
		}

		recorded, err := commands.NewVoteLoopCommand(store, s, tui.NewSelector(), logger).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %d comparisons.\n", recorded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(voteCmd)
}
