package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"versus/internal/application/commands"
)

var syncPrune bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the entries directory against the store",
	Long: `Walk the entries directory and bring the store in line with it:
new files become entries, changed files append versions, vanished files
are tombstoned. A file reappearing at a tombstoned path is an error
unless --prune is set, in which case the file is deleted instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := commands.SyncFailOnTombstoned
		if syncPrune {
			policy = commands.SyncPruneTombstoned
		}

		stats, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), policy, logger).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Scanned %d files: %d created, %d updated, %d tombstoned, %d pruned.\n",
			stats.Scanned, stats.Created, stats.Updated, stats.Tombstoned, stats.Pruned)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncPrune, "prune", "d", false, "delete files whose entry is already tombstoned")
	rootCmd.AddCommand(syncCmd)
}
