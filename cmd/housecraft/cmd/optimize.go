package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brynhall/housecraft/hcerrors"
	"github.com/brynhall/housecraft/housecraft"
	"github.com/brynhall/housecraft/optimize"
	"github.com/brynhall/housecraft/output"
)

var optimizeTimeLimit time.Duration

var optimizeCmd = &cobra.Command{
	Use:   "optimize <region|ALL>",
	Short: "Run the branch-and-bound MIP path and write the Pareto-dominant chain set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := resolveRegionArg(args[0])
		if err != nil {
			return err
		}
		for _, r := range regions {
			if err := optimizeOne(r); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().DurationVar(&optimizeTimeLimit, "cell-time-limit", 0, "Per-cell search time budget (0 = unbounded)")
	rootCmd.AddCommand(optimizeCmd)
}

func optimizeOne(regionKey string) error {
	model, err := loadRegionModel(regionKey)
	if err != nil {
		return err
	}
	n := effectiveWorkers(Config().Optimize.Workers)
	Logger().Info().Str("region", regionKey).Int("workers", n).Msg("solving dominant-chain cells")

	opts := optimize.Options{Workers: n, TimeLimit: optimizeTimeLimit}
	chains, err := housecraft.OptimizeDominant(context.Background(), model, opts)
	if err != nil {
		return hcerrors.Wrap(hcerrors.ErrSolverFailure, regionKey, err.Error())
	}

	path := output.RegionPath(Config().Output.Dir, regionKey)
	if err := output.WriteChains(path, chains, false); err != nil {
		return err
	}
	fmt.Printf("%s: %d dominant chains -> %s\n", regionKey, len(chains), path)
	return nil
}
