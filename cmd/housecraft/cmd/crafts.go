package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brynhall/housecraft/ingest"
)

var craftsCmd = &cobra.Command{
	Use:   "crafts",
	Short: "List known craft indices and their house_level capacity tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range ingest.KnownCrafts() {
			fmt.Printf("%d\t%-20s %v\n", c.Index, c.Label, c.Table)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(craftsCmd)
}
