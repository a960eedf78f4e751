package graph_test

import (
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/graph"
	"github.com/stretchr/testify/require"
)

// bfsDistance computes shortest-path distances from src over an edge list,
// independent of the package under test, as ground truth for the scenario
// and property tests below.
func bfsDistance(n int, edges [][2]int, src int) []int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if dist[nb] == -1 {
				dist[nb] = dist[cur] + 1
				queue = append(queue, nb)
			}
		}
	}
	return dist
}

func buildFrom(t *testing.T, n int, edges [][2]int, opts ...graph.BuildOption) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(n, opts...)
	for _, e := range edges {
		_, err := b.Connect(e[0], e[1])
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func requirePathMatchesBFS(t *testing.T, g *graph.Graph, edges [][2]int, n int) {
	t.Helper()
	for src := 0; src < n; src++ {
		dist := bfsDistance(n, edges, src)
		for dst := 0; dst < n; dst++ {
			if dist[dst] == -1 {
				require.False(t, g.AreConnected(src, dst), "src=%d dst=%d", src, dst)
				continue
			}
			path := g.Path(src, dst)
			if src == dst {
				require.Empty(t, path, "src=%d dst=%d", src, dst)
				continue
			}
			require.NotNil(t, path, "src=%d dst=%d", src, dst)
			require.Equal(t, dist[dst], len(path), "src=%d dst=%d", src, dst)
			require.Equal(t, dst, path[len(path)-1])
		}
	}
}

// S1: six-node graph with a 4-cycle and two pendant leaves.
func TestScenarioSixNodeTree(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {3, 4}, {3, 5}}
	g := buildFrom(t, 6, edges)
	requirePathMatchesBFS(t, g, edges, 6)

	next, ok := g.NextNode(2, 5)
	require.True(t, ok)
	require.Equal(t, 1, next)

	path := g.Path(2, 5)
	require.Len(t, path, 4)
	require.Equal(t, 1, path[0])
	require.Contains(t, []int{0, 4}, path[1])
	require.Equal(t, 3, path[2])
	require.Equal(t, 5, path[3])
}

// S2: 4x3 grid, nodes numbered row-major 0..11, with edges {1,5} and {5,9}
// removed.
func TestScenarioGridMinusTwoEdges(t *testing.T) {
	const cols, rows = 4, 3
	n := cols * rows
	idx := func(c, r int) int { return r*cols + c }
	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, [2]int{idx(c, r), idx(c+1, r)})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{idx(c, r), idx(c, r+1)})
			}
		}
	}
	skip := map[[2]int]bool{
		{1, 5}: true,
		{5, 9}: true,
	}
	pruned := make([][2]int, 0, len(edges)-2)
	for _, e := range edges {
		if skip[e] {
			continue
		}
		pruned = append(pruned, e)
	}
	g := buildFrom(t, n, pruned)
	requirePathMatchesBFS(t, g, pruned, n)

	next, ok := g.NextNode(0, 9)
	require.True(t, ok)
	require.Equal(t, 4, next)

	next, ok = g.NextNode(4, 9)
	require.True(t, ok)
	require.Equal(t, 8, next)

	next, ok = g.NextNode(8, 9)
	require.True(t, ok)
	require.Equal(t, 9, next)

	require.ElementsMatch(t, []int{1, 4}, g.NextNodes(0, 11))
	require.Equal(t, []int{4, 5}, g.Path(0, 5))
}

// S3: two disconnected components.
func TestScenarioDisconnectedPair(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {3, 4}}
	g := buildFrom(t, 5, edges)
	require.False(t, g.AreConnected(0, 4))
	require.False(t, g.AreConnected(2, 3))
	_, ok := g.NextNode(0, 4)
	require.False(t, ok)
	require.Nil(t, g.Path(0, 4))
	require.NotEqual(t, g.ComponentID(0), g.ComponentID(3))
	require.Equal(t, g.ComponentID(0), g.ComponentID(2))
}

// S4: ring of 8 - antipodal nodes tie between two equally short paths.
func TestScenarioRingOfEight(t *testing.T) {
	const n = 8
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	g := buildFrom(t, n, edges)
	requirePathMatchesBFS(t, g, edges, n)

	nexts := g.NextNodes(0, 4)
	require.ElementsMatch(t, []int{1, 7}, nexts, "antipodal node on an even ring has two shortest first hops")
}

// S5: grid graph checked against Manhattan distance with sampled queries.
func TestScenarioGridManhattanDistance(t *testing.T) {
	const side = 12
	n := side * side
	idx := func(c, r int) int { return r*side + c }
	var edges [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				edges = append(edges, [2]int{idx(c, r), idx(c+1, r)})
			}
			if r+1 < side {
				edges = append(edges, [2]int{idx(c, r), idx(c, r+1)})
			}
		}
	}
	g := buildFrom(t, n, edges)

	seed := uint64(12345)
	nextRand := func(bound int) int {
		seed = seed*6364136223846793005 + 1442695040888963407
		return int((seed >> 33) % uint64(bound))
	}
	for i := 0; i < 200; i++ {
		c1, r1 := nextRand(side), nextRand(side)
		c2, r2 := nextRand(side), nextRand(side)
		u, v := idx(c1, r1), idx(c2, r2)
		manhattan := abs(c1-c2) + abs(r1-r2)
		path := g.Path(u, v)
		require.NotNil(t, path)
		require.Equal(t, manhattan, len(path), "u=%d v=%d", u, v)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// S6: rebuilding the same builder state twice yields an identical graph.
func TestScenarioRebuildEquivalence(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	b := graph.NewBuilder(4)
	for _, e := range edges {
		_, err := b.Connect(e[0], e[1])
		require.NoError(t, err)
	}
	g1, err := b.Build()
	require.NoError(t, err)
	g2, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, g1.Stats(), g2.Stats())
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			require.Equal(t, g1.NextNodes(u, v), g2.NextNodes(u, v), "u=%d v=%d", u, v)
		}
	}
}

// Rebuilding with the parallel engine forced on must match the sequential
// result for the same edge set.
func TestScenarioParallelMatchesSequential(t *testing.T) {
	const side = 10
	n := side * side
	idx := func(c, r int) int { return r*side + c }
	var edges [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				edges = append(edges, [2]int{idx(c, r), idx(c+1, r)})
			}
			if r+1 < side {
				edges = append(edges, [2]int{idx(c, r), idx(c, r+1)})
			}
		}
	}

	seq := buildFrom(t, n, edges, graph.WithSequential())
	par := buildFrom(t, n, edges, graph.WithWorkers(4), graph.WithFixedWidthLimit(1))

	for u := 0; u < n; u += 7 {
		for v := 0; v < n; v += 11 {
			require.Equal(t, seq.NextNodes(u, v), par.NextNodes(u, v), "u=%d v=%d", u, v)
		}
	}
}
