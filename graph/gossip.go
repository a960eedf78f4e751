package graph

import (
	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/PoOnesNerfect/bit-gossip/matrix"
)

// runSequentialGossip drives em to its bit-gossip fixed point in a single
// goroutine. Each round, every node v computes reach[v], the set
// of destinations v currently knows a first hop to (the union of its
// incident edge views), then offers each neighbor's reach set to the
// corresponding edge, adding only the destinations v doesn't already know
// about. Because a destination only ever enters reach[v] once its true
// shortest distance has stabilized upstream, this gate is what keeps a
// longer path from ever overwriting a shorter one discovered in an earlier
// round, while still letting two equally-short paths register as ties in
// the same round.
//
// Complexity: each round is O(n*deg_avg) = O(m) work to recompute reach plus
// O(m) work to offer deltas, and the fixed point is reached in at most
// diameter(graph) rounds, for O(m*diameter) total.
func runSequentialGossip(adj Adjacency, em *matrix.EdgeMatrix) {
	n := adj.NodeCount()
	if n == 0 || em.EdgeCount() == 0 {
		return
	}
	width := em.Width()
	factory := rowFactoryOf(em)
	compOf := componentLabels(adj)

	reach := make([]bitrow.Row, n)
	for v := 0; v < n; v++ {
		reach[v] = factory(width)
	}
	delta := factory(width)

	for {
		for v := 0; v < n; v++ {
			computeReachInto(reach[v], adj[v], em, v, compOf)
		}

		changed := false
		for v := 0; v < n; v++ {
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
		if !changed {
			return
		}
	}
}

// computeReachInto resets dst and fills it with the union of every incident
// edge's current view as seen from v, i.e. every destination v already
// knows a first hop to. A hi-side view reads as the complement of a bit
// gossip never got to write, which defaults every destination outside v's
// own component to "reachable" until something says otherwise - nothing
// ever will, since gossip never crosses components - so those bits are
// stripped here rather than trusted.
//
// Complexity: O(deg(v)) Materialize/Or calls plus an O(popcount(dst))
// stripForeignBits pass, each against rows of O(n/64) words.
func computeReachInto(dst bitrow.Row, nbrs []Neighbor, em *matrix.EdgeMatrix, v int, compOf []int) {
	dst.Reset()
	for _, nb := range nbrs {
		view := em.View(nb.Edge, v)
		dst.Or(view.Materialize())
	}
	stripForeignBits(dst, compOf, compOf[v])
}

// stripForeignBits clears every set bit of row whose component label isn't
// home. Walking only the currently-set bits keeps this proportional to
// row's popcount rather than its full width.
func stripForeignBits(row bitrow.Row, compOf []int, home int) {
	var foreign []int
	row.Range(func(d int) bool {
		if compOf[d] != home {
			foreign = append(foreign, d)
		}
		return true
	})
	for _, d := range foreign {
		row.Clear(d)
	}
}

// rowFactoryOf returns a factory producing rows of the same concrete
// backend as em's rows, so scratch buffers (reach, delta) stay compatible
// with View.Or's type assertion on its argument.
func rowFactoryOf(em *matrix.EdgeMatrix) matrix.RowFactory {
	if em.EdgeCount() == 0 {
		return func(n int) bitrow.Row { return bitrow.NewDynamic(n) }
	}
	switch em.StoredRow(0).(type) {
	case *bitrow.Fixed:
		return func(n int) bitrow.Row { return bitrow.NewFixed(n) }
	case *bitrow.AtomicDynamic:
		return func(n int) bitrow.Row { return bitrow.NewAtomicDynamic(n) }
	default:
		return func(n int) bitrow.Row { return bitrow.NewDynamic(n) }
	}
}
