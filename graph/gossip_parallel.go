package graph

import (
	"sync"
	"sync/atomic"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/PoOnesNerfect/bit-gossip/matrix"
)

// runParallelGossip drives em to its fixed point using workers goroutines,
// one per contiguous node partition. Each round has two
// barrier-separated phases: every worker first recomputes reach[] for its
// own nodes from the current matrix state, then - after all workers have
// finished phase one - applies deltas by writing through em. Partitioning
// by node, not by edge, is what makes phase two race-free without any
// per-edge lock: a physical row is only ever written by the worker that
// owns its lo endpoint (writes from the hi side are no-ops, see matrix
// doc), so no two workers ever call Or on the same row.
//
// Concurrency:
//   - Exactly two sync.WaitGroup barriers per round: one after phase one
//     (reach recomputation), one after phase two (matrix writes). No worker
//     begins a phase before every worker has finished the previous one.
//   - anyChanged is a sync/atomic.Bool so workers can report convergence
//     without a shared lock; it is only read after the phase-two barrier.
//
// Complexity: identical asymptotic work to runSequentialGossip, O(m*diameter)
// total, spread across workers goroutines; wall-clock approaches
// O(m*diameter/workers) when the partition is balanced.
func runParallelGossip(adj Adjacency, em *matrix.EdgeMatrix, workers int) {
	n := adj.NodeCount()
	if n == 0 || em.EdgeCount() == 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	width := em.Width()
	factory := rowFactoryOf(em)
	compOf := componentLabels(adj)
	reach := make([]bitrow.Row, n)
	for v := 0; v < n; v++ {
		reach[v] = factory(width)
	}

	parts := partitionNodes(n, workers)
	deltas := make([]bitrow.Row, workers)
	for i := range deltas {
		deltas[i] = factory(width)
	}

	for {
		var wg sync.WaitGroup
		for _, part := range parts {
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for v := lo; v < hi; v++ {
					computeReachInto(reach[v], adj[v], em, v, compOf)
				}
			}(part.lo, part.hi)
		}
		wg.Wait()

		var anyChanged atomic.Bool
		for w, part := range parts {
			wg.Add(1)
			go func(lo, hi, wi int) {
				defer wg.Done()
				delta := deltas[wi]
				changed := false
				for v := lo; v < hi; v++ {
					for _, nb := range adj[v] {
						if em.Lo(nb.Edge) != v {
							continue
						}
						delta.Reset()
						delta.Or(reach[nb.Node])
						delta.AndNot(reach[v])
						delta.Clear(v)
						view := em.View(nb.Edge, v)
						if view.Or(delta) {
							changed = true
						}
					}
				}
				if changed {
					anyChanged.Store(true)
				}
			}(part.lo, part.hi, w)
		}
		wg.Wait()

		if !anyChanged.Load() {
			return
		}
	}
}

type nodeRange struct{ lo, hi int }

// partitionNodes splits [0, n) into at most workers contiguous, roughly
// equal ranges.
//
// Complexity: O(workers) time and space.
func partitionNodes(n, workers int) []nodeRange {
	base := n / workers
	rem := n % workers
	parts := make([]nodeRange, 0, workers)
	start := 0
	for w := 0; w < workers && start < n; w++ {
		size := base
		if w < rem {
			size++
		}
		if size == 0 {
			continue
		}
		parts = append(parts, nodeRange{lo: start, hi: start + size})
		start += size
	}
	return parts
}
