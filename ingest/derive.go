package ingest

import (
	"github.com/rs/zerolog/log"

	"github.com/brynhall/housecraft/region"
)

// workerCapacity and storageCapacity are the fixed house_level -> count
// tables from spec.md §6: house_level is 1-based, mapping into these
// arrays at index house_level-1.
var (
	workerCapacity  = [5]int{1, 2, 4, 6, 8}
	storageCapacity = [5]int{3, 5, 8, 12, 16}
)

// DeriveModes computes (worker_count, warehouse_count) for one building
// record by scanning its craft list for the first item_craft_index 1
// (worker) and first item_craft_index 2 (storage) entry and mapping
// each one's house_level through the fixed tables; a second entry for
// an index already seen is ignored, matching houseinfo.rs's
// craft_index_to_count (.find, not a fold). Crafts with any other
// item_craft_index are unrecognized and skipped; invalid lists the
// item_craft_index of every such entry so the caller can log each
// distinct index exactly once (see ToBuildings).
func DeriveModes(rec BuildingRecord) (workerCount, warehouseCount int, invalid []int) {
	haveWorker, haveWarehouse := false, false
	for _, c := range rec.Crafts {
		switch c.ItemCraftIndex {
		case 1:
			if !haveWorker {
				haveWorker = true
				workerCount = levelValue(workerCapacity, c.HouseLevel)
			}
		case 2:
			if !haveWarehouse {
				haveWarehouse = true
				warehouseCount = levelValue(storageCapacity, c.HouseLevel)
			}
		default:
			invalid = append(invalid, c.ItemCraftIndex)
		}
	}
	return workerCount, warehouseCount, invalid
}

func levelValue(table [5]int, houseLevel int) int {
	if houseLevel < 1 || houseLevel > len(table) {
		return 0
	}
	return table[houseLevel-1]
}

// CraftDescription describes one known craft index for the CLI's `crafts`
// listing: its index, a short label, and the house_level -> capacity
// table it draws from.
type CraftDescription struct {
	Index int
	Label string
	Table [5]int
}

// KnownCrafts returns the two recognized craft indices in ascending
// order, for display only (ingestion itself never consults this list;
// it switches directly on ItemCraftIndex).
func KnownCrafts() []CraftDescription {
	return []CraftDescription{
		{Index: 1, Label: "worker (lodging)", Table: workerCapacity},
		{Index: 2, Label: "warehouse (storage)", Table: storageCapacity},
	}
}

// ToBuildings translates every record into a region.Building, logging
// each distinct invalid craft index once (per call) rather than once
// per occurrence, and skipping only the offending craft entries — the
// building itself is still emitted, per spec.md §7's "non-fatal,
// entry skipped" handling.
func ToBuildings(records map[string]BuildingRecord) map[string]region.Building {
	warned := make(map[int]bool)
	out := make(map[string]region.Building, len(records))
	for key, rec := range records {
		workers, warehouses, invalid := DeriveModes(rec)
		for _, idx := range invalid {
			if !warned[idx] {
				warned[idx] = true
				log.Warn().Int("item_craft_index", idx).Str("building", key).Msg("unrecognized craft index, skipping entry")
			}
		}
		out[key] = region.Building{
			Key:          rec.Key,
			Parent:       rec.effectiveParent(),
			Cost:         rec.Cost,
			StorageValue: warehouses,
			LodgingValue: workers,
		}
	}
	return out
}
