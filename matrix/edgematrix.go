package matrix

import "github.com/PoOnesNerfect/bit-gossip/bitrow"

// RowFactory allocates a fresh, zeroed bitrow.Row of width n. Builder selects
// the factory (bitrow.NewFixed, bitrow.NewDynamic, or bitrow.NewAtomicDynamic)
// based on the node count and on whether the build will run the parallel
// engine.
type RowFactory func(n int) bitrow.Row

// EdgeMatrix is the M-row, N-bit-wide bit-matrix backing the engine: one packed
// row per undirected edge, stored in the canonical lo->hi direction.
//
// Complexity: every row holds O(n/64) machine words, so the whole matrix is
// O(m*n/64) words for m edges and n destinations.
type EdgeMatrix struct {
	width int
	rows  []bitrow.Row
	lo    []int
	hi    []int
}

// New allocates an EdgeMatrix for m edges over n destinations. Rows start
// zeroed; callers must call Seed for each edge before running gossip.
func New(m, n int, factory RowFactory) *EdgeMatrix {
	em := &EdgeMatrix{
		width: n,
		rows:  make([]bitrow.Row, m),
		lo:    make([]int, m),
		hi:    make([]int, m),
	}
	for i := 0; i < m; i++ {
		em.rows[i] = factory(n)
	}
	return em
}

// Width returns N, the number of possible destinations.
func (em *EdgeMatrix) Width() int { return em.width }

// EdgeCount returns M, the number of undirected edges.
func (em *EdgeMatrix) EdgeCount() int { return len(em.rows) }

// SetEndpoints records the canonical orientation of edge id: lo = min(a,b),
// hi = max(a,b). Must be called once per edge before Seed or any View.
func (em *EdgeMatrix) SetEndpoints(edge, a, b int) {
	if a > b {
		a, b = b, a
	}
	em.lo[edge] = a
	em.hi[edge] = b
}

// Lo returns the canonical lo endpoint of edge.
func (em *EdgeMatrix) Lo(edge int) int { return em.lo[edge] }

// Hi returns the canonical hi endpoint of edge.
func (em *EdgeMatrix) Hi(edge int) int { return em.hi[edge] }

// StoredRow returns the canonical (lo-oriented) row for edge, for callers
// that need direct access (gossip engine internals, Freeze).
func (em *EdgeMatrix) StoredRow(edge int) bitrow.Row { return em.rows[edge] }

// Seed initializes edge's row: clear then set bit hi (the edge itself is
// trivially a shortest path from lo to hi).
func (em *EdgeMatrix) Seed(edge int) {
	em.rows[edge].Reset()
	em.rows[edge].Set(em.hi[edge])
}

// View returns a directed read/write view of edge's row as seen from node
// from, which must be one of edge's two endpoints.
func (em *EdgeMatrix) View(edge, from int) View {
	lo, hi := em.lo[edge], em.hi[edge]
	if from != lo && from != hi {
		panic("matrix: from is not an endpoint of edge")
	}
	return View{row: em.rows[edge], lo: lo, hi: hi, fromLo: from == lo}
}

// Freeze converts every row to a plain, non-atomic bitrow.Dynamic snapshot
// (no-op for rows that are already non-atomic). Called once after the
// parallel gossip fixed point so the resulting Graph never pays for atomics
// on the read-only query path.
//
// Complexity: O(m) type switches plus one O(n/64) snapshot per atomic row.
// Concurrency: must run after every gossip worker has exited; not safe to
// call while a writer still holds a reference to any row.
func (em *EdgeMatrix) Freeze() {
	for i, row := range em.rows {
		if a, ok := row.(*bitrow.AtomicDynamic); ok {
			em.rows[i] = a.Freeze()
		}
	}
}

// View is a directed read/write interpretation of one EdgeMatrix row, per
// the lo/hi orientation convention described in the package doc. Zero-value
// View is not usable; obtain one via EdgeMatrix.View.
//
// Complexity: Get/Set are O(1); Or/Materialize are O(n/64).
type View struct {
	row    bitrow.Row
	lo, hi int
	fromLo bool
}

// Get reports whether d is reachable via this edge as a first hop from the
// view's origin node.
func (v View) Get(d int) bool {
	if v.fromLo {
		return v.row.Get(d)
	}
	switch d {
	case v.lo:
		return true
	case v.hi:
		return false
	default:
		return !v.row.Get(d)
	}
}

// Set marks d as reachable via this edge as a first hop from the view's
// origin node. Writes from the hi side are no-ops: for any edge and any
// destination outside {lo,hi}, at most one direction can ever legitimately
// claim it (see package doc), so whenever the hi side's gossip step derives
// that it should see d as reachable, the canonical (lo) bit is already, and
// will remain, 0 - the complement read already reflects it.
func (v View) Set(d int) {
	if d == v.lo || d == v.hi {
		return
	}
	if v.fromLo {
		v.row.Set(d)
	}
}

// Or ORs every set bit of delta into the view, respecting the same
// lo-side-only write rule as Set. delta is expressed in the view's own
// (already-oriented) coordinate space, i.e. delta.Get(d) == true means
// "d should be marked reachable from this view's origin".
func (v View) Or(delta bitrow.Row) bool {
	if !v.fromLo {
		return false
	}
	return v.row.Or(delta)
}

// Width returns the destination count addressed by this view.
func (v View) Width() int { return v.row.Width() }

// Materialize returns an independent row holding the view's oriented bits:
// a clone of the canonical row if the view already reads lo->hi, or its
// complement otherwise. The hi-side complement needs no further correction
// (see package doc) since the canonical row's own lo and hi bits never
// change from their seeded values.
func (v View) Materialize() bitrow.Row {
	m := v.row.Clone()
	if !v.fromLo {
		m.Not()
	}
	return m
}
