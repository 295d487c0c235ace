// Package traverse provides the traversal iterators over a core.Graph: BFS,
// DFS, topological order, closest-first (weighted), degeneracy ordering,
// lexicographic BFS, maximum cardinality search, and seeded random walks.
//
// Every traversal implements the iterate.Iterator protocol and computes its
// visitation order lazily per step (BFS, DFS, closest-first, random walk) or
// eagerly at creation (topological, degeneracy, lex-BFS, max cardinality).
// Iterators are single-consumer. Mutating the graph during iteration is
// detected best-effort via vertex/edge counts and fails fast with
// core.ErrConcurrentMutation.
package traverse

import (
	"fmt"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for traversal construction.
var (
	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = fmt.Errorf("traverse: start vertex not found: %w", status.ErrIllegalArgument)

	// ErrCyclicGraph is returned by Topological on a graph with a cycle.
	ErrCyclicGraph = fmt.Errorf("traverse: graph is not acyclic: %w", status.ErrIllegalArgument)

	// ErrNotDirected is returned by Topological on an undirected graph.
	ErrNotDirected = fmt.Errorf("traverse: graph is not directed: %w", status.ErrIllegalArgument)

	// ErrNegativeSteps is returned for a negative random-walk step bound.
	ErrNegativeSteps = fmt.Errorf("traverse: negative step bound: %w", status.ErrIllegalArgument)
)

// Option configures a traversal via functional arguments.
type Option func(*options)

type options struct {
	radius    float64
	hasRadius bool
	seed      int64
	hasSeed   bool
	maxSteps  int64
	bounded   bool
}

// WithRadius bounds ClosestFirst to vertices within the given distance.
func WithRadius(r float64) Option {
	return func(o *options) { o.radius, o.hasRadius = r, true }
}

// WithSeed fixes the random-walk RNG seed for deterministic replay.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.hasSeed = seed, true }
}

// WithMaxSteps bounds a random walk to at most n steps. Without a bound the
// walk is infinite (until it reaches a vertex with no outgoing edge) and is
// terminated by the caller ceasing to call Next.
func WithMaxSteps(n int64) Option {
	return func(o *options) { o.maxSteps, o.bounded = n, true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// snapshot captures the cheap mutation fingerprint used for fail-fast.
type snapshot struct{ vc, ec int }

func snap(g core.Graph) snapshot {
	return snapshot{vc: g.VertexCount(), ec: g.EdgeCount()}
}

func (s snapshot) changed(g core.Graph) bool {
	return s.vc != g.VertexCount() || s.ec != g.EdgeCount()
}

// successors returns the vertices reachable from v across one edge, in
// ascending edge-id order with duplicates preserved (callers dedupe via their
// visited sets). Works uniformly for directed graphs, undirected graphs, and
// views.
func successors(g core.Graph, v int64) ([]int64, error) {
	it, err := g.OutgoingEdgesOf(v)
	if err != nil {
		return nil, err
	}
	var out []int64
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, err
		}
		s, err := g.EdgeSource(e)
		if err != nil {
			return nil, err
		}
		t, err := g.EdgeTarget(e)
		if err != nil {
			return nil, err
		}
		if s == v {
			out = append(out, t)
		} else {
			out = append(out, s)
		}
	}

	return out, nil
}

// collectVertices drains g.Vertices into an ascending id slice.
func collectVertices(g core.Graph) ([]int64, error) {
	var out []int64
	it := g.Vertices()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
