package region

// Truncate returns a prefix region model containing only the first p
// pre-order indices of m (0 < p <= m.NumNodes). Every invariant that
// Build establishes still holds: parents of included nodes are always
// included (pre-order guarantees parent index < child index), and Jump
// values are clipped to p so no index ever points outside the
// truncated range.
//
// Truncate is used exclusively by the work partitioner to enumerate
// "prefix chains" over a bounded node count; it is not a general
// subtree-extraction utility.
func Truncate(m *Model, p int) *Model {
	if p > m.NumNodes {
		p = m.NumNodes
	}
	t := &Model{
		NumNodes:      p,
		Keys:          append([]string(nil), m.Keys[:p]...),
		Parents:       append([]int(nil), m.Parents[:p]...),
		Jump:          make([]int, p),
		Costs:         append([]int(nil), m.Costs[:p]...),
		StorageValues: append([]int(nil), m.StorageValues[:p]...),
		LodgingValues: append([]int(nil), m.LodgingValues[:p]...),
		InitialModes:  append([]Mode(nil), m.InitialModes[:p]...),
	}
	for i := 0; i < p; i++ {
		j := m.Jump[i]
		if j > p {
			j = p
		}
		t.Jump[i] = j
	}
	t.InitialTotals = sumInitialTotals(t)
	t.MaxStorage, t.MaxLodging = sumMaxCapacities(t)
	return t
}
