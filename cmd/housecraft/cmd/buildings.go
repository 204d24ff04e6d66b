package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brynhall/housecraft/output"
)

var (
	minStorage int
	minLodging int
)

var buildingsCmd = &cobra.Command{
	Use:   "buildings <region>",
	Short: "List chains from a previously generated result matching storage/lodging minimums",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := output.RegionPath(Config().Output.Dir, args[0])
		chains, err := output.ReadChains(path)
		if err != nil {
			return err
		}
		for _, c := range chains {
			if c.Storage >= minStorage && c.Lodging >= minLodging {
				fmt.Printf("cost=%d storage=%d lodging=%d buildings=%d\n", c.Cost, c.Storage, c.Lodging, len(c.Indices))
			}
		}
		return nil
	},
}

func init() {
	buildingsCmd.Flags().IntVar(&minStorage, "min-storage", 0, "Minimum storage capacity")
	buildingsCmd.Flags().IntVar(&minLodging, "min-lodging", 0, "Minimum lodging capacity")
	rootCmd.AddCommand(buildingsCmd)
}
