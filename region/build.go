package region

import (
	"sort"

	"github.com/brynhall/housecraft/hcerrors"
)

// RootKey is the reserved empty string building key; no real building
// may use it. It has no bearing on index 0's external key, which is
// always the root argument passed to Build (see spec.md §6/§8 S1).
const RootKey = ""

// Build constructs a Model from an unordered mapping of building key
// to Building. root is the key that Building.Parent must reference for
// top-level buildings (a building whose Parent == root is attached
// directly under the virtual root).
//
// Construction proceeds in four passes, each grounded on a distinct
// graph-validation idiom:
//
//  1. Adjacency: fold (parent, key) edges into a children-by-parent
//     map, validating that every referenced parent exists.
//  2. Cycle check: union-find over the same edges (Kruskal-style).
//  3. Connectivity check: breadth-first reachability from root.
//  4. Pre-order emission: depth-first, children ordered by descending
//     subtree size (ties broken by building key order), computing
//     Jump as each subtree closes.
//
// Any failure in passes 1-3 returns hcerrors.ErrMalformedArborescence.
func Build(buildings map[string]Building, root string) (*Model, error) {
	children, order, err := buildAdjacency(buildings, root)
	if err != nil {
		return nil, err
	}
	if err := checkAcyclic(buildings, root); err != nil {
		return nil, err
	}
	if err := checkConnected(children, buildings, root); err != nil {
		return nil, err
	}

	m := &Model{
		NumNodes: len(buildings) + 1,
	}
	m.Keys = make([]string, 0, m.NumNodes)
	m.Parents = make([]int, 0, m.NumNodes)
	m.Jump = make([]int, m.NumNodes)
	m.Costs = make([]int, 0, m.NumNodes)
	m.StorageValues = make([]int, 0, m.NumNodes)
	m.LodgingValues = make([]int, 0, m.NumNodes)
	m.InitialModes = make([]Mode, 0, m.NumNodes)

	// index 0: virtual root, keyed by the caller's root string itself
	m.Keys = append(m.Keys, root)
	m.Parents = append(m.Parents, 0)
	m.Costs = append(m.Costs, 0)
	m.StorageValues = append(m.StorageValues, 0)
	m.LodgingValues = append(m.LodgingValues, 0)
	m.InitialModes = append(m.InitialModes, ModeRoot)

	keyIndex := make(map[string]int, m.NumNodes)
	keyIndex[root] = 0

	emitPreorder(root, 0, children, buildings, order, m, keyIndex)

	m.InitialTotals = sumInitialTotals(m)
	m.MaxStorage, m.MaxLodging = sumMaxCapacities(m)

	return m, nil
}

// buildAdjacency validates every Parent reference and groups children
// by parent key. order records each key's position in sorted key
// order — used only to break subtree-size ties deterministically by
// the key string itself, since Go map iteration order is not stable
// across runs.
func buildAdjacency(buildings map[string]Building, root string) (map[string][]string, map[string]int, error) {
	children := make(map[string][]string, len(buildings)+1)
	order := make(map[string]int, len(buildings))

	keys := make([]string, 0, len(buildings))
	for k := range buildings {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic base order, independent of map iteration

	for i, k := range keys {
		order[k] = i
		b := buildings[k]
		if b.Parent != root {
			if _, ok := buildings[b.Parent]; !ok {
				return nil, nil, hcerrors.Wrap(hcerrors.ErrMalformedArborescence, "", "dangling parent reference: "+k+" -> "+b.Parent)
			}
		}
		children[b.Parent] = append(children[b.Parent], k)
	}
	return children, order, nil
}

// checkAcyclic unions every (parent, key) edge; a union that finds both
// endpoints already joined indicates a cycle among building references.
func checkAcyclic(buildings map[string]Building, root string) error {
	keys := make([]string, 0, len(buildings)+1)
	keys = append(keys, root)
	for k := range buildings {
		keys = append(keys, k)
	}
	dsu := newDisjointSet(keys)
	for k, b := range buildings {
		if !dsu.union(b.Parent, k) {
			return hcerrors.Wrap(hcerrors.ErrMalformedArborescence, "", "cycle detected at "+k)
		}
	}
	return nil
}

// checkConnected performs a breadth-first reachability sweep from root
// over the children adjacency; any building not reached is part of a
// disconnected forest.
func checkConnected(children map[string][]string, buildings map[string]Building, root string) error {
	visited := make(map[string]bool, len(buildings)+1)
	queue := []string{root}
	visited[root] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range children[cur] {
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}
	if len(visited)-1 != len(buildings) {
		return hcerrors.Wrap(hcerrors.ErrMalformedArborescence, "", "disconnected building reachable set")
	}
	return nil
}

// emitPreorder performs the depth-first emission described in Build's
// doc comment, assigning index keyIndex[key] for each node as it is
// pushed and recording Jump once its subtree closes.
func emitPreorder(key string, idx int, children map[string][]string, buildings map[string]Building, order map[string]int, m *Model, keyIndex map[string]int) {
	kids := append([]string(nil), children[key]...)
	sizes := make(map[string]int, len(kids))
	for _, c := range kids {
		sizes[c] = subtreeSize(c, children)
	}
	sort.SliceStable(kids, func(i, j int) bool {
		if sizes[kids[i]] != sizes[kids[j]] {
			return sizes[kids[i]] > sizes[kids[j]] // largest subtree first
		}
		return order[kids[i]] < order[kids[j]] // deterministic tie-break on key order
	})

	for _, c := range kids {
		b := buildings[c]
		childIdx := len(m.Keys)
		keyIndex[c] = childIdx

		m.Keys = append(m.Keys, c)
		m.Parents = append(m.Parents, idx)
		m.Costs = append(m.Costs, b.Cost)
		m.StorageValues = append(m.StorageValues, b.StorageValue)
		m.LodgingValues = append(m.LodgingValues, b.LodgingValue)
		if b.StorageValue > 0 {
			m.InitialModes = append(m.InitialModes, ModeStorage)
		} else {
			m.InitialModes = append(m.InitialModes, ModeLodging)
		}

		emitPreorder(c, childIdx, children, buildings, order, m, keyIndex)
		m.Jump[childIdx] = len(m.Keys) // one past the last descendant emitted so far
	}
	m.Jump[idx] = len(m.Keys)
}

func subtreeSize(key string, children map[string][]string) int {
	size := 1
	for _, c := range children[key] {
		size += subtreeSize(c, children)
	}
	return size
}

func sumInitialTotals(m *Model) Totals {
	var t Totals
	for i := 1; i < m.NumNodes; i++ {
		t.Cost += m.Costs[i]
		switch m.InitialModes[i] {
		case ModeStorage:
			t.Storage += m.StorageValues[i]
		case ModeLodging:
			t.Lodging += m.LodgingValues[i]
		}
	}
	return t
}

func sumMaxCapacities(m *Model) (maxStorage, maxLodging int) {
	for i := 1; i < m.NumNodes; i++ {
		maxStorage += m.StorageValues[i]
		maxLodging += m.LodgingValues[i]
	}
	return maxStorage, maxLodging
}
