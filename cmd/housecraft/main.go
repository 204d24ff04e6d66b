// Command housecraft is the CLI entry point: it lists region/craft
// tables, filters previously generated results, and drives both the
// exhaustive and MIP solve paths.
package main

import "github.com/brynhall/housecraft/cmd/housecraft/cmd"

func main() {
	cmd.Execute()
}
