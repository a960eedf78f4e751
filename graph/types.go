package graph

import "github.com/PoOnesNerfect/bit-gossip/matrix"

// Neighbor is one entry of a node's adjacency list: the neighbor's id and
// the stable edge id connecting it to the owning node.
type Neighbor struct {
	Node int
	Edge int
}

// Adjacency is, per node, the ordered list of (neighbor, edge id) pairs,
// sorted by neighbor id. It is built once at Build time, owned by the
// resulting Graph, and never mutated again; IntoBuilder copies the edge set
// out of it rather than sharing it.
type Adjacency [][]Neighbor

// NodeCount returns N.
func (a Adjacency) NodeCount() int { return len(a) }

// Graph is the sealed, read-only result of Builder.Build: an Adjacency plus
// a fully-populated matrix.EdgeMatrix. All Graph methods are safe for
// concurrent use by multiple goroutines; the query phase never writes.
type Graph struct {
	n       int
	adj     Adjacency
	em      *matrix.EdgeMatrix
	workers int
}
