package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"versus/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an entry by rank index",
	Long: `Delete the file behind the entry at the given rank index and
tombstone it in the store. Its history and past comparisons are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		entry, err := commands.NewRemoveCommand(store, cfg.ExpandedRoot(), index, logger).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Removed %d. %s\n", index, entry.Title())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
