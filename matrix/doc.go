// Package matrix implements EdgeMatrix, the per-edge bit-row storage that
// backs the APSP bit-gossip engine (graph.Builder and its gossip passes).
//
// Each undirected edge {a,b} owns exactly one stored bitrow.Row, oriented in
// the canonical direction lo->hi where lo = min(a,b). Bit d of that row means
// "this edge lies on a shortest path from lo to d". The opposite direction
// (hi->lo) is never stored separately: it is read as the bitwise complement
// of the stored row, with two corrected bits (lo always reads 1, hi always
// reads 0 from that side). This halves memory relative to storing both
// directions explicitly.
//
// Writing through the opposite (hi) view never requires an actual bit flip.
// For any edge {a,b} and destination d not in {a,b}, it is a fact about
// unweighted shortest paths that at most one of "edge is on a shortest path
// from a to d" / "edge is on a shortest path from b to d" can hold - they can
// never both be true, since that would require dist(a,d) = dist(b,d)+1 and
// dist(b,d) = dist(a,d)+1 simultaneously. So whenever gossip at the hi
// endpoint concludes "this edge is my first hop to d", the canonical bit is
// already (and remains) 0, and the hi-side apparent view already reads 1
// through the complement - no write needed. Set calls made from the hi side
// are therefore no-ops by construction; every physical bit flip on an
// EdgeMatrix is a plain, monotone Set performed from the lo side. This is
// exactly the property the parallel engine relies on: each row has a single
// write-site, its lo endpoint, and that write-site only adds bits.
//
// Two situations sit outside that "at most one side claims it" argument, and
// the gossip engine - not this package - is responsible for keeping both out
// of the matrix. A destination in a different connected component has both
// distances undefined, so an unwritten bit's complement defaults to a false
// "yes"; the engine strips cross-component bits out of every aggregated
// reach set before it can reach a view. A destination exactly tied in
// distance from both endpoints of one edge only arises in a non-bipartite
// graph (an odd cycle), and has no artifact-free representation in a single
// bit - an accepted limit of storing one row per edge instead of two.
package matrix
