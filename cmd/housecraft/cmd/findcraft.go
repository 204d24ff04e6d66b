package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var findCraftCmd = &cobra.Command{
	Use:   "find-craft <name>",
	Short: "Locate a character, node, or region by name substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		needle := strings.ToLower(args[0])
		tables, err := loadTables()
		if err != nil {
			return err
		}
		found := false
		for k, v := range tables.Characters {
			if strings.Contains(strings.ToLower(v), needle) {
				fmt.Printf("character\t%d\t%s\n", k, v)
				found = true
			}
		}
		for k, v := range tables.Nodes {
			if strings.Contains(strings.ToLower(v), needle) {
				fmt.Printf("node\t%d\t%s\n", k, v)
				found = true
			}
		}
		for k, v := range tables.Regions {
			if strings.Contains(strings.ToLower(v), needle) {
				fmt.Printf("region\t%d\t%s\n", k, v)
				found = true
			}
		}
		if !found {
			fmt.Printf("no match for %q\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCraftCmd)
}
