// Package parallel runs a set of partition.Job descriptors across a
// worker pool, one arena.Arena per job, and merges the results into a
// single arena — the ParallelDriver of spec.md §4.5.
//
// Workers are CPU-bound and share no mutable state: each owns its own
// walker.Walker and arena.Arena for the duration of its job. The merge
// phase is single-threaded and deterministic (see arena.Arena.Merge),
// so the final result does not depend on goroutine interleaving. The
// pool shape is grounded on the generic worker-pool idiom used
// elsewhere in the retrieved corpus for CPU-bound fan-out: a fixed
// number of goroutines draining a job channel, collected through a
// sync.WaitGroup.
package parallel

import (
	"context"
	"sync"

	"github.com/brynhall/housecraft/arena"
	"github.com/brynhall/housecraft/partition"
	"github.com/brynhall/housecraft/region"
	"github.com/brynhall/housecraft/walker"
)

// Run executes jobs against m's state space and returns the merged
// arena. ctx is checked only at job boundaries (before a job starts),
// never inside a job's hot loop, preserving the walker's
// no-suspension-point guarantee.
func Run(ctx context.Context, m *region.Model, jobs []partition.Job) (*arena.Arena, error) {
	if len(jobs) == 0 {
		return arena.New(m), nil
	}

	results := make([]*arena.Arena, len(jobs))
	var wg sync.WaitGroup
	jobCh := make(chan int, len(jobs))
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	workers := len(jobs)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobCh {
				if ctx.Err() != nil {
					return
				}
				results[i] = runJob(m, jobs[i])
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := arena.New(m)
	for _, a := range results {
		if a != nil {
			merged.Merge(a)
		}
	}
	return merged, nil
}

// runJob drives one job's walker to its stop boundary, feeding every
// visited state into a fresh Arena. When StopIndex > 0, the boundary
// itself — the state where the job's own fixed prefix remains and
// every free-tail node has been retracted — belongs to this job and is
// visited once before stopping; stepping past it would pop into the
// next job's prefix. StopIndex == 0 (the single unrestricted job) has
// no such boundary: its terminal empty-stack state is Done, not a
// chain, and must not be visited.
func runJob(m *region.Model, job partition.Job) *arena.Arena {
	w := walker.New(m, append([]int(nil), job.StartIndices...), append([]region.Mode(nil), job.StartModes...), job.StartTotals)
	a := arena.New(m)
	for {
		indices, modes, totals := w.State()
		atBoundary := job.StopIndex > 0 && len(indices) == job.StopIndex
		if !atBoundary && !job.Continue(indices) {
			break
		}
		a.Visit(indices, modes, totals)
		if atBoundary {
			break
		}
		w.Step()
	}
	return a
}
