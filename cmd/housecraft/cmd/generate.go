package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brynhall/housecraft/hcerrors"
	"github.com/brynhall/housecraft/housecraft"
	"github.com/brynhall/housecraft/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate <region|ALL>",
	Short: "Run the exhaustive enumeration path and write the Pareto-dominant chain set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regions, err := resolveRegionArg(args[0])
		if err != nil {
			return err
		}
		for _, r := range regions {
			if Config().IsExcluded(r) {
				Logger().Warn().Str("region", r).Msg("region excluded from exhaustive generation, skipping")
				continue
			}
			if err := generateOne(r); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateOne(regionKey string) error {
	model, err := loadRegionModel(regionKey)
	if err != nil {
		return err
	}
	n := effectiveWorkers(Config().Generate.Workers)
	Logger().Info().Str("region", regionKey).Int("workers", n).Msg("enumerating dominant chains")

	chains, err := housecraft.EnumerateDominant(context.Background(), model, n)
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

// resolveRegionArg expands "ALL" into every region referenced by the
// buildings file, or returns the single named region unchanged.
func resolveRegionArg(arg string) ([]string, error) {
	if arg != "ALL" {
		return []string{arg}, nil
	}
	return allRegionKeys()
}
