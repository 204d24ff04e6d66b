// Package region defines the immutable arborescence that the walker,
// arena, partitioner and optimizer all operate over: a pre-order flat
// layout of a region's buildings, with jump indices for subtree
// skipping (see Model.Jump).
//
// A Model is built once per region by Build and is safe for concurrent
// read access from any number of workers; nothing in this package
// mutates a Model after construction.
package region

// Mode identifies how a selected non-root node contributes to a
// chain's capacity totals.
type Mode uint8

const (
	// ModeRoot is the fixed mode of index 0, the virtual region root.
	ModeRoot Mode = 0
	// ModeStorage means the node contributes storage_value to Chain.Storage.
	ModeStorage Mode = 1
	// ModeLodging means the node contributes lodging_value to Chain.Lodging.
	ModeLodging Mode = 2
)

// Building is the external, unordered input: one real node, named by
// Key, attached to Parent (the region root if Parent == Key's own
// region root key). Only one of StorageValue/LodgingValue is expected
// to be non-zero in practice; Model does not enforce this.
type Building struct {
	Key           string
	Parent        string
	Cost          int
	StorageValue  int
	LodgingValue  int
}

// Totals aggregates cost/storage/lodging for a set of nodes taken in a
// particular mode assignment; used both for Model.InitialTotals and as
// the numeric payload of a Chain snapshot.
type Totals struct {
	Cost    int
	Storage int
	Lodging int
}

// Model is the immutable, pre-order-flattened arborescence. Index 0 is
// always the virtual root (Cost/StorageValue/LodgingValue all zero,
// Mode ModeRoot). For i > 0, Parents[i] is the pre-order index of i's
// parent and is always < i.
type Model struct {
	// NumNodes is N, the root plus every real building.
	NumNodes int

	// Keys[i] is the original building key for index i (the root key
	// passed to Build for index 0).
	Keys []string

	// Parents[i] is the pre-order index of node i's parent; Parents[0] == 0.
	Parents []int

	// Jump[i] is one past the last index in i's subtree: the smallest
	// j > i that is not a descendant of i.
	Jump []int

	// Costs, StorageValues, LodgingValues are parallel to Keys.
	Costs         []int
	StorageValues []int
	LodgingValues []int

	// InitialModes[i] is ModeStorage or ModeLodging for i > 0, ModeRoot for i == 0.
	InitialModes []Mode

	// MaxStorage, MaxLodging are the sums of all Storage/LodgingValues —
	// upper bounds on any chain's fingerprint coordinates.
	MaxStorage int
	MaxLodging int

	// InitialTotals is the aggregate obtained when every node is
	// selected in its initial mode (the walker's start state).
	InitialTotals Totals
}

// Children returns the pre-order index range [i+1, Jump[i]) that holds
// all descendants of i, matching the "children[] are contiguous"
// invariant from the data model.
func (m *Model) Children(i int) (start, end int) {
	return i + 1, m.Jump[i]
}

// IsRoot reports whether i is the virtual region root.
func (m *Model) IsRoot(i int) bool { return i == 0 }
