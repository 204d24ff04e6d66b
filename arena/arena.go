// Package arena implements ChainArena: a fingerprint-keyed "best chain
// seen so far" store. The hot path (Insert) is latency-critical, so
// the seen-cost table is a dense, flat slice indexed by
// chain.Fingerprint(lodging, storage) rather than a map — the same
// row-major, pre-sized-backing-array discipline the retrieved corpus
// uses for its other dense numeric tables.
package arena

import (
	"math"

	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/region"
)

// unseen is the sentinel cost meaning "no chain recorded at this key yet".
const unseen = math.MaxInt64

// Arena is the dense table plus the stable-index snapshot store.
// Arena is not safe for concurrent use; each parallel worker owns one,
// and Merge combines them single-threaded after all workers finish.
type Arena struct {
	seenCost []int64       // dense, length L = (max(maxStorage,maxLodging)+1)^2
	slot     []int         // slot[k] valid iff seenCost[k] != unseen
	entries  []chain.Chain // stable-index append-only store
}

// New allocates an Arena sized for region m: L = (max(MaxStorage,
// MaxLodging)+1)^2, all slots sentinel.
func New(m *region.Model) *Arena {
	bound := m.MaxStorage
	if m.MaxLodging > bound {
		bound = m.MaxLodging
	}
	l := (bound + 1) * (bound + 1)
	a := &Arena{
		seenCost: make([]int64, l),
		slot:     make([]int, l),
	}
	for i := range a.seenCost {
		a.seenCost[i] = unseen
	}
	return a
}

// Insert records c if its fingerprint is new, or overwrites the
// existing slot if c is strictly cheaper. Otherwise it is a no-op.
func (a *Arena) Insert(c chain.Chain) {
	k := chain.Fingerprint(c.Totals.Lodging, c.Totals.Storage)
	cost := int64(c.Totals.Cost)
	switch {
	case a.seenCost[k] == unseen:
		a.seenCost[k] = cost
		a.entries = append(a.entries, c)
		a.slot[k] = len(a.entries) - 1
	case cost < a.seenCost[k]:
		a.seenCost[k] = cost
		a.entries[a.slot[k]] = c
	}
}

// Merge folds other's entries into a via Insert, so the result is
// order-independent: whichever arena holds the strictly cheaper chain
// at a given fingerprint wins, regardless of merge direction.
func (a *Arena) Merge(other *Arena) {
	for _, e := range other.entries {
		a.Insert(e)
	}
}

// Visit implements walker.Observer: it snapshots the given state into
// a chain.Chain and inserts it. Arena satisfies walker.Observer
// structurally, without walker needing to import this package.
func (a *Arena) Visit(indices []int, modes []region.Mode, totals region.Totals) {
	idx := make([]int, len(indices))
	copy(idx, indices)
	md := make([]region.Mode, len(modes))
	copy(md, modes)
	a.Insert(chain.Chain{Indices: idx, Modes: md, Totals: totals})
}

// Entries returns the arena's current chain snapshots. The returned
// slice aliases the arena's internal storage and must not be mutated.
func (a *Arena) Entries() []chain.Chain { return a.entries }

// Len reports the number of distinct fingerprints currently recorded.
func (a *Arena) Len() int { return len(a.entries) }
