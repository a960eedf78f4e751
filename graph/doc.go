// Package graph is the public façade of the bit-gossip engine: it wires
// bitrow rows and matrix.EdgeMatrix together into a Builder/Graph API for
// unweighted, undirected all-pairs shortest paths.
//
// Usage is two-phase: accumulate nodes and edges in a
// Builder, call Build to run the bit-gossip fixed point once, then query the
// resulting Graph with NextNode/NextNodes/AreConnected in O(degree) and Path in
// O(degree) per hop, reading bits instead of recomputing paths.
//
//	b := graph.NewBuilder(6)
//	b.Connect(0, 1)
//	b.Connect(0, 3)
//	g, err := b.Build()
//	next, ok := g.NextNode(2, 5)
//
// To mutate a built Graph, convert it back with IntoBuilder (structure is
// retained, the bit-matrix is discarded) and Build again.
package graph
