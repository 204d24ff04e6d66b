package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List known region names",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := loadTables()
		if err != nil {
			return err
		}
		keys := make([]int, 0, len(tables.Regions))
		for k := range tables.Regions {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		for _, k := range keys {
			fmt.Printf("%d\t%s\n", k, tables.Regions[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
