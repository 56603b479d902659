package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"versus/internal/adapters/sqlite"
	"versus/internal/config"
	"versus/internal/domain"
	"versus/internal/logging"
)

var (
	cfgPath  string
	rootFlag string
	dbFlag   string

	cfg    config.Config
	store  *sqlite.Store
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "versus [index]",
	Short: "Rank a directory of text entries by pairwise comparison",
	Long: `versus keeps a versioned history of a directory of text entries and
ranks them with Glicko-2 ratings replayed from your pairwise votes.

Run it bare to sync and print the standings, or with an index to show
one entry. Use "versus vote" to compare entries interactively.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if rootFlag != "" {
			cfg.Root = rootFlag
		}
		if dbFlag != "" {
			cfg.DatabasePath = dbFlag
		}

		logger = logging.New(cfg.Logging.Level)
		slog.SetDefault(logger)

		store, err = sqlite.Open(cfg.ExpandedDatabasePath())
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number, got %q", args[0])
			}
			return runShow(cmd.Context(), index, false)
		}
		return runRank(cmd.Context(), false)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "", "entries directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")
}

// sampler builds the candidate sampler from the loaded config.
func sampler() (*domain.Sampler, error) {
	policy, err := domain.ParsePolicy(cfg.Sampler.Policy)
	if err != nil {
		return nil, err
	}
	return domain.NewSampler(policy, domain.WithMixWeight(cfg.Sampler.MixWeight)), nil
}
