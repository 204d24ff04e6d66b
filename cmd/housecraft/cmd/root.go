package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brynhall/housecraft/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	dataDir    string
	workers    int

	// logger and cfg are populated by rootCmd's PersistentPreRunE and
	// read by every subcommand; grounded on the retrieved corpus's
	// package-level logger/config pattern for its cobra root command.
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "housecraft",
	Short: "Compute Pareto-optimal building chains for a housecraft region",
	Long: `housecraft enumerates or optimizes the set of Pareto-dominant building
chains for a game region: connected subtrees of a region's building tree,
each mapping (lodging capacity, storage capacity) to a minimum cost.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			loaded.Data.Dir = dataDir
		}
		if loaded.Log.Level != "" && !verbose {
			if parsed, err := zerolog.ParseLevel(loaded.Log.Level); err == nil {
				logger = logger.Level(parsed)
			}
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (defaults built in if absent)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the configured input data directory")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker count for generate/optimize (0 = use config default)")
}

// Logger returns the configured logger. Subcommands call this instead
// of touching the package-level var directly, mirroring the retrieved
// corpus's GetLogger() accessor.
func Logger() zerolog.Logger {
	return logger
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// effectiveWorkers resolves --workers against cfg's default for the
// given solve path.
func effectiveWorkers(cfgDefault int) int {
	if workers > 0 {
		return workers
	}
	if cfgDefault > 0 {
		return cfgDefault
	}
	return 1
}
