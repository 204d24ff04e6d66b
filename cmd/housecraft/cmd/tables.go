package cmd

import (
	"path/filepath"

	"github.com/brynhall/housecraft/ingest"
)

// loadTables resolves the configured CSV paths against the data
// directory and loads them.
func loadTables() (ingest.RecipeTables, error) {
	c := Config()
	return ingest.LoadTables(
		filepath.Join(c.Data.Dir, c.Data.CharacterCSV),
		filepath.Join(c.Data.Dir, c.Data.NodeCSV),
		filepath.Join(c.Data.Dir, c.Data.RegionCSV),
	)
}
