package graph

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/PoOnesNerfect/bit-gossip/matrix"
)

// defaultFixedWidthLimit is the destination count at or below which Build
// selects the two-word bitrow.Fixed backend instead of bitrow.Dynamic.
const defaultFixedWidthLimit = 128

// BuildOption configures a Builder's Build strategy without growing the
// Builder constructor's signature - the same functional-option shape used
// throughout the bit-gossip API.
type BuildOption func(cfg *buildConfig)

type buildConfig struct {
	workers         int
	forceSequential bool
	fixedWidthLimit int
}

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		workers:         runtime.NumCPU(),
		forceSequential: false,
		fixedWidthLimit: defaultFixedWidthLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}

// WithWorkers overrides the worker count used by the parallel gossip engine.
// Values < 1 are ignored.
func WithWorkers(n int) BuildOption {
	return func(cfg *buildConfig) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}

// WithSequential forces the sequential gossip engine regardless of node
// count or GOMAXPROCS, useful for deterministic benchmarking or debugging.
func WithSequential() BuildOption {
	return func(cfg *buildConfig) {
		cfg.forceSequential = true
	}
}

// WithFixedWidthLimit overrides the destination count at or below which
// Build uses the fixed-width bitrow backend instead of the dynamic one.
// Values <= 0 are ignored; values above 128 (the widest fixed row) are
// capped at 128.
func WithFixedWidthLimit(n int) BuildOption {
	return func(cfg *buildConfig) {
		if n > defaultFixedWidthLimit {
			n = defaultFixedWidthLimit
		}
		if n > 0 {
			cfg.fixedWidthLimit = n
		}
	}
}

type edgeKey struct{ lo, hi int }

type edgeRec struct {
	origID int
	lo, hi int
}

// Builder accumulates nodes and edges for a future Build. It is the mutable
// staging area of the engine: safe for concurrent Connect/Disconnect/Resize
// from multiple goroutines, guarded by a single RWMutex (the whole mutable
// state - node count, edge set - is small and always touched together,
// unlike the split vertex/edge locks of a general-purpose graph type).
type Builder struct {
	mu         sync.RWMutex
	n          int
	edges      map[edgeKey]int
	nextEdgeID uint64
	cfg        buildConfig
}

// NewBuilder creates a Builder for n nodes with no edges.
func NewBuilder(n int, opts ...BuildOption) *Builder {
	if n < 0 {
		n = 0
	}
	return &Builder{
		n:     n,
		edges: make(map[edgeKey]int),
		cfg:   newBuildConfig(opts...),
	}
}

// NodeCount returns the builder's current node count.
func (b *Builder) NodeCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.n
}

// EdgeCount returns the builder's current edge count.
func (b *Builder) EdgeCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.edges)
}

// Resize changes the node count. Growing adds isolated nodes; shrinking
// drops every edge incident to a removed node.
func (b *Builder) Resize(n int) {
	if n < 0 {
		n = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if n >= b.n {
		b.n = n
		return
	}
	for k := range b.edges {
		if k.lo >= n || k.hi >= n {
			delete(b.edges, k)
		}
	}
	b.n = n
}

// Connect idempotently adds the undirected edge {a,b}, returning its edge
// id. Returns ErrInvalidArgument if a==b or either id is out of [0, n).
// Connecting an already-connected pair is a silent no-op that returns the
// existing edge id.
func (b *Builder) Connect(a, bNode int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if a == bNode {
		return 0, builderErrorf("Connect", ErrInvalidArgument, "a=%d, b=%d: self-loop", a, bNode)
	}
	if a < 0 || a >= b.n || bNode < 0 || bNode >= b.n {
		return 0, builderErrorf("Connect", ErrInvalidArgument, "a=%d, b=%d, n=%d", a, bNode, b.n)
	}

	key := edgeKey{lo: a, hi: bNode}
	if key.lo > key.hi {
		key.lo, key.hi = key.hi, key.lo
	}
	if id, ok := b.edges[key]; ok {
		return id, nil
	}

	id := int(atomic.AddUint64(&b.nextEdgeID, 1) - 1)
	b.edges[key] = id
	return id, nil
}

// Disconnect idempotently removes the undirected edge {a,b}. Removing a
// non-existent or already-removed edge is a no-op.
func (b *Builder) Disconnect(a, bNode int) {
	key := edgeKey{lo: a, hi: bNode}
	if key.lo > key.hi {
		key.lo, key.hi = key.hi, key.lo
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.edges, key)
}

// Build seals the current node/edge set, runs the bit-gossip fixed point,
// and returns a read-only Graph. The Builder remains usable afterwards for
// further mutation and rebuilding; Build does not consume it.
func (b *Builder) Build() (*Graph, error) {
	b.mu.RLock()
	n := b.n
	recs := make([]edgeRec, 0, len(b.edges))
	for k, id := range b.edges {
		recs = append(recs, edgeRec{origID: id, lo: k.lo, hi: k.hi})
	}
	b.mu.RUnlock()

	// Sort by original (connect-time) edge id so that the compacted ids
	// assigned below are a deterministic function of builder state alone:
	// two builds over the same state produce identical matrices.
	sortEdgeRecs(recs)

	m := len(recs)
	em := matrix.New(m, n, rowFactoryFor(n, b.cfg))

	adj := make(Adjacency, n)
	degree := make([]int, n)
	for _, r := range recs {
		degree[r.lo]++
		degree[r.hi]++
	}
	for v := 0; v < n; v++ {
		adj[v] = make([]Neighbor, 0, degree[v])
	}

	for id, r := range recs {
		em.SetEndpoints(id, r.lo, r.hi)
		em.Seed(id)
		adj[r.lo] = append(adj[r.lo], Neighbor{Node: r.hi, Edge: id})
		adj[r.hi] = append(adj[r.hi], Neighbor{Node: r.lo, Edge: id})
	}
	for v := 0; v < n; v++ {
		sortNeighbors(adj[v])
	}

	useParallel := !b.cfg.forceSequential && b.cfg.workers > 1 && n > b.cfg.fixedWidthLimit
	workers := 1
	if useParallel {
		workers = b.cfg.workers
		if workers > n {
			workers = n
		}
		runParallelGossip(adj, em, workers)
	} else {
		runSequentialGossip(adj, em)
	}
	em.Freeze()

	return &Graph{n: n, adj: adj, em: em, workers: workers}, nil
}

// IntoBuilder reconstructs a Builder from g's adjacency (structure only -
// the matrix is discarded), so callers can mutate and rebuild.
func (g *Graph) IntoBuilder(opts ...BuildOption) *Builder {
	b := NewBuilder(g.n, opts...)
	seen := make(map[edgeKey]bool)
	var nextID uint64
	for v, nbrs := range g.adj {
		for _, nb := range nbrs {
			key := edgeKey{lo: v, hi: nb.Node}
			if key.lo > key.hi {
				key.lo, key.hi = key.hi, key.lo
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			b.edges[key] = int(nextID)
			nextID++
		}
	}
	b.nextEdgeID = nextID
	return b
}

func rowFactoryFor(n int, cfg buildConfig) matrix.RowFactory {
	fixed := n <= cfg.fixedWidthLimit
	parallel := !cfg.forceSequential && cfg.workers > 1 && !fixed
	switch {
	case fixed:
		return func(width int) bitrow.Row { return bitrow.NewFixed(width) }
	case parallel:
		return func(width int) bitrow.Row { return bitrow.NewAtomicDynamic(width) }
	default:
		return func(width int) bitrow.Row { return bitrow.NewDynamic(width) }
	}
}

func sortEdgeRecs(recs []edgeRec) {
	for i := 1; i < len(recs); i++ {
		for j := i; j > 0 && recs[j].origID < recs[j-1].origID; j-- {
			recs[j], recs[j-1] = recs[j-1], recs[j]
		}
	}
}

func sortNeighbors(nbrs []Neighbor) {
	for i := 1; i < len(nbrs); i++ {
		for j := i; j > 0 && nbrs[j].Node < nbrs[j-1].Node; j-- {
			nbrs[j], nbrs[j-1] = nbrs[j-1], nbrs[j]
		}
	}
}
