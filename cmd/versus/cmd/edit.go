package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"versus/internal/adapters/editor"
	"versus/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit an entry by rank index",
	Long: `Open the entry at the given rank index in your editor ($EDITOR),
then sync so the change is versioned right away.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		if _, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), commands.SyncFailOnTombstoned, logger).Execute(ctx); err != nil {
			return err
		}

		entry, err := commands.NewShowCommand(store, index).Execute(ctx)
		if err != nil {
			return err
		}

		full := filepath.Join(cfg.ExpandedRoot(), filepath.FromSlash(entry.Path))
		if err := editor.NewOpener().OpenFile(full); err != nil {
			return err
		}

		stats, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), commands.SyncFailOnTombstoned, logger).Execute(ctx)
		if err != nil {
			return err
		}
		if stats.Updated > 0 {
			fmt.Printf("Saved a new version of %s.\n", entry.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
