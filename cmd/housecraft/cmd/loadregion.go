package cmd

import (
	"path/filepath"

	"github.com/brynhall/housecraft/hcerrors"
	"github.com/brynhall/housecraft/housecraft"
	"github.com/brynhall/housecraft/ingest"
	"github.com/brynhall/housecraft/region"
)

// loadRegionModel loads every building record, filters it down to the
// ones tagged with regionKey, and builds the region.Model for them.
func loadRegionModel(regionKey string) (*region.Model, error) {
	c := Config()
	records, err := ingest.LoadBuildings(filepath.Join(c.Data.Dir, c.Data.BuildingsJSON))
	if err != nil {
		return nil, err
	}

	filtered := make(map[string]ingest.BuildingRecord)
	for k, rec := range records {
		if rec.RegionKey == regionKey {
			filtered[k] = rec
		}
	}
	if len(filtered) == 0 {
		return nil, hcerrors.Wrap(hcerrors.ErrMissingRegion, regionKey, "no buildings tagged with this region")
	}

	buildings := ingest.ToBuildings(filtered)
	return housecraft.BuildRegion(buildings, regionKey)
}

// allRegionKeys returns every distinct region key referenced by the
// buildings file, for the `ALL` argument to generate/optimize.
func allRegionKeys() ([]string, error) {
	c := Config()
	records, err := ingest.LoadBuildings(filepath.Join(c.Data.Dir, c.Data.BuildingsJSON))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, rec := range records {
		if !seen[rec.RegionKey] {
			seen[rec.RegionKey] = true
			out = append(out, rec.RegionKey)
		}
	}
	return out, nil
}
