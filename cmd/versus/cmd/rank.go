package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"versus/internal/application/commands"
	"versus/internal/domain"
)

var rankIncludeDeleted bool

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Sync and print the standings",
	Long: `Reconcile the entries directory against the store, replay the
comparison log, and print the standings with the best entry first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRank(cmd.Context(), rankIncludeDeleted)
	},
}

func runRank(ctx context.Context, includeDeleted bool) error {
	if _, err := commands.NewSyncCommand(store, cfg.ExpandedRoot(), commands.SyncFailOnTombstoned, logger).Execute(ctx); err != nil {
		return err
	}

	ranked, err := commands.NewRankCommand(store, includeDeleted).Execute(ctx)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Println("No entries to rank.")
		return nil
	}

	fmt.Println(renderStandings(ranked))
	return nil
}

// renderStandings renders the ranked listing best first.
func renderStandings(ranked []domain.RankedEntry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Entry", "Score", "Deviation"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for i := len(ranked) - 1; i >= 0; i-- {
		entry := ranked[i]
		tw.AppendRow(table.Row{
			strconv.Itoa(commands.DisplayIndex(len(ranked), i)),
			entry.Title(),
			strconv.FormatInt(int64(entry.Rating.Value), 10),
			strconv.FormatInt(int64(entry.Rating.Deviation), 10),
		})
	}

	return tw.Render()
}

func init() {
	rankCmd.Flags().BoolVar(&rankIncludeDeleted, "deleted", false, "include tombstoned entries")
	rootCmd.AddCommand(rankCmd)
}
