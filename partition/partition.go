// Package partition implements WorkPartitioner: it divides the full
// pop-jump-push walk of a region.Model into non-overlapping jobs, one
// per worker, so that parallel.Run can execute them independently with
// no shared mutable state and no duplicate visits.
package partition

import (
	"github.com/brynhall/housecraft/chain"
	"github.com/brynhall/housecraft/region"
	"github.com/brynhall/housecraft/walker"
)

// Job is a JobDescriptor: the initial Chain state a worker starts
// from, and the stop predicate that keeps it inside its own territory.
// A worker processes while len(indices) > StopIndex && indices[StopIndex]
// >= StopValue; the one additional state where len(indices) == StopIndex
// (the job's fixed prefix with every free-tail node retracted) belongs
// to this job too and must be visited once, without stepping past it —
// see parallel.runJob.
type Job struct {
	StartIndices []int
	StartModes   []region.Mode
	StartTotals  region.Totals
	StopIndex    int
	StopValue    int
}

// Continue reports whether a worker executing this job should keep
// stepping given the walker's current index stack. It does not by
// itself cover the job's final boundary state (len(indices) ==
// StopIndex); callers must check that separately and visit it once
// before stopping.
func (j Job) Continue(indices []int) bool {
	return len(indices) > j.StopIndex && indices[j.StopIndex] >= j.StopValue
}

// Split partitions the walk of m across up to workers jobs. It grows
// the prefix depth P from 1 while P+1 <= workers and the next depth's
// job count stays at or below workers, then uses prefixChains(P) — the
// largest P <= workers whose own job count fits. If workers <= 0 or
// m.NumNodes == 1, it returns a single trivial job that runs the
// entire walk unrestricted.
func Split(m *region.Model, workers int) []Job {
	if workers <= 0 || m.NumNodes == 1 {
		return []Job{trivialJob(m)}
	}

	p := 1
	prefixChains := walker.EnumerateAll(region.Truncate(m, p))
	for p+1 <= m.NumNodes && p+1 <= workers {
		next := p + 1
		nextChains := walker.EnumerateAll(region.Truncate(m, next))
		if len(nextChains) > workers {
			break
		}
		p = next
		prefixChains = nextChains
	}

	minIndex := 0
	if len(prefixChains) > 0 {
		first := prefixChains[0]
		minIndex = first.Indices[len(first.Indices)-1] + 1
	}

	jobs := make([]Job, 0, len(prefixChains))
	for _, prefix := range prefixChains {
		jobs = append(jobs, buildJob(m, prefix, minIndex))
	}
	return jobs
}

// trivialJob returns the single job that runs the unrestricted full
// walk: StopIndex/StopValue chosen so the stop predicate stays true
// until the root itself is popped (indices becomes empty).
func trivialJob(m *region.Model) Job {
	w := walker.NewFull(m)
	indices, modes, totals := w.State()
	return Job{
		StartIndices: append([]int(nil), indices...),
		StartModes:   append([]region.Mode(nil), modes...),
		StartTotals:  totals,
		StopIndex:    0,
		StopValue:    0,
	}
}

// buildJob turns one enumerated prefix chain into a full JobDescriptor
// over the untruncated region m.
func buildJob(m *region.Model, prefix chain.Chain, minIndex int) Job {
	present := make(map[int]bool, len(prefix.Indices))
	for _, idx := range prefix.Indices {
		present[idx] = true
	}

	stopValue := minIndex
	for i := 0; i < minIndex; i++ {
		if !present[i] {
			if j := m.Jump[i]; j > stopValue {
				stopValue = j
			}
		}
	}

	startIndices := append([]int(nil), prefix.Indices...)
	startModes := append([]region.Mode(nil), prefix.Modes...)
	totals := prefix.Totals
	stopIndex := len(startIndices)

	for r := stopValue; r < m.NumNodes; r++ {
		startIndices = append(startIndices, r)
		mode := m.InitialModes[r]
		startModes = append(startModes, mode)
		totals.Cost += m.Costs[r]
		switch mode {
		case region.ModeStorage:
			totals.Storage += m.StorageValues[r]
		case region.ModeLodging:
			totals.Lodging += m.LodgingValues[r]
		}
	}

	return Job{
		StartIndices: startIndices,
		StartModes:   startModes,
		StartTotals:  totals,
		StopIndex:    stopIndex,
		StopValue:    stopValue,
	}
}
