package graph

// NextNode returns the first hop on a shortest path from u to v: the
// neighbor of u, in adjacency order, whose edge view marks v as reachable.
// ok is false if u == v or no such neighbor exists (v unreachable from u).
// When multiple neighbors tie for shortest, the lowest-id neighbor wins -
// adjacency order is sorted by neighbor id at Build time, so this is
// deterministic across rebuilds of the same edge set.
func (g *Graph) NextNode(u, v int) (int, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return 0, false
	}
	for _, nb := range g.adj[u] {
		if g.em.View(nb.Edge, u).Get(v) {
			return nb.Node, true
		}
	}
	return 0, false
}

// NextNodes returns every neighbor of u, in adjacency order, whose edge
// view marks v as reachable - every valid first hop on some shortest path
// from u to v, including ties. Returns nil if u == v or v is unreachable.
func (g *Graph) NextNodes(u, v int) []int {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return nil
	}
	var out []int
	for _, nb := range g.adj[u] {
		if g.em.View(nb.Edge, u).Get(v) {
			out = append(out, nb.Node)
		}
	}
	return out
}

// AreConnected reports whether u and v lie in the same connected component.
func (g *Graph) AreConnected(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	if u == v {
		return true
	}
	_, ok := g.NextNode(u, v)
	return ok
}

// Path returns the sequence of intermediate nodes from u to v, ending with
// v, walking NextNode until v is reached. u itself is not included, so
// len(path) always equals the BFS distance from u to v. Returns an empty,
// non-nil slice if u == v; nil if v is unreachable from u.
func (g *Graph) Path(u, v int) []int {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return nil
	}
	if u == v {
		return []int{}
	}
	path := []int{}
	cur := u
	for cur != v {
		next, ok := g.NextNode(cur, v)
		if !ok {
			return nil
		}
		path = append(path, next)
		cur = next
	}
	return path
}

// NodeCount returns N, the number of nodes in the graph.
func (g *Graph) NodeCount() int { return g.n }

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	return len(g.adj[v])
}

// Neighbors returns v's adjacency list, sorted by neighbor id. The returned
// slice is shared and must not be mutated.
func (g *Graph) Neighbors(v int) []Neighbor {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.adj[v]
}
