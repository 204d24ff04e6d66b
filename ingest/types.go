// Package ingest parses the external building/region/recipe tables
// into the region.Building form the core expects. It is the only
// package upstream of housecraft that touches a filesystem; everything
// it returns is plain data, never a package-level global (see
// spec.md §9, "Global state").
package ingest

// CraftEntry is one (house_level, item_craft_index) pair attached to a
// building record. item_craft_index 1 means the craft produces worker
// capacity (lodging), 2 means warehouse capacity (storage); any other
// value is an unrecognized craft and is reported via
// hcerrors.ErrInvalidCraftIndex.
type CraftEntry struct {
	HouseLevel     int `json:"house_level"`
	ItemCraftIndex int `json:"item_craft_index"`
}

// BuildingRecord is the raw, unordered external representation of one
// building before mode derivation.
type BuildingRecord struct {
	Key          string       `json:"key"`
	Parent       string       `json:"parent"`
	RegionKey    string       `json:"region"`
	NeedHouseKey string       `json:"need_house_key,omitempty"`
	Crafts       []CraftEntry `json:"crafts"`
	Cost         int          `json:"cost"`
}

// effectiveParent returns the building's parent in the arborescence:
// NeedHouseKey overrides Parent when set, modeling a building whose
// placement depends on a prerequisite structure rather than its
// nominal tree parent.
func (b BuildingRecord) effectiveParent() string {
	if b.NeedHouseKey != "" {
		return b.NeedHouseKey
	}
	return b.Parent
}

// RecipeTables holds the three name lookups loaded once at startup and
// threaded explicitly through ingestion and the CLI's listing
// subcommands.
type RecipeTables struct {
	Characters map[int]string
	Nodes      map[int]string
	Regions    map[int]string
}
