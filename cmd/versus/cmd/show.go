package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"versus/internal/application/commands"
)

var showCopy bool

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show one ranked entry",
	Long: `Show the entry at the given rank index (1 is the current best),
with its rating and full content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		return runShow(cmd.Context(), index, showCopy)
	},
}

func runShow(ctx context.Context, index int, copyContent bool) error {
	if _, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), commands.SyncFailOnTombstoned, logger).Execute(ctx); err != nil {
		return err
	}

	entry, err := commands.NewShowCommand(store, index).Execute(ctx)
	if err != nil {
		return err
	}

	head := entry.Head()
	fmt.Printf("%d. %s (score: %d, deviation: %d)\n\n",
		index, entry.Title(), int64(entry.Rating.Value), int64(entry.Rating.Deviation))
	fmt.Printf("@ %s\n%s\n", head.ObservedAt.Format("2006-01-02 15:04:05"),
		strings.TrimSpace(string(head.Content)))

	if copyContent {
		if err := clipboard.WriteAll(string(head.Content)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Println("\nContent copied to clipboard.")
	}
	return nil
}

func init() {
	showCmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "copy the entry content to the clipboard")
	rootCmd.AddCommand(showCmd)
}
