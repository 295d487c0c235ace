// This file declares the Graph interface, GraphType, construction options,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph             - nil graph passed to an operation.
//	ErrNegativeID           - negative vertex or edge identifier.
//	ErrDuplicateVertex      - AddVertexWithID on an existing id.
//	ErrDuplicateEdge        - AddEdgeWithID on an existing id.
//	ErrVertexNotFound       - referenced vertex does not exist.
//	ErrEdgeNotFound         - referenced edge does not exist.
//	ErrSelfLoopNotAllowed   - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrUnweightedGraph      - SetEdgeWeight on an unweighted graph.
//	ErrUnmodifiable         - mutation through an unmodifiable view.
//	ErrViewMutation         - structural mutation through a read-only projection.
//	ErrConcurrentMutation   - graph mutated while an iterator was live.
package core

import (
	"errors"
	"fmt"

	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// DefaultEdgeWeight is the weight reported for any edge that never had one
// assigned, and for every edge of an unweighted graph.
const DefaultEdgeWeight = 1.0

// Sentinel errors for core graph operations. Each wraps exactly one taxonomy
// kind from the status package.
var (
	ErrNilGraph            = fmt.Errorf("core: graph is nil: %w", status.ErrNilPointer)
	ErrNegativeID          = fmt.Errorf("core: identifier is negative: %w", status.ErrIllegalArgument)
	ErrDuplicateVertex     = fmt.Errorf("core: vertex already present: %w", status.ErrIllegalArgument)
	ErrDuplicateEdge       = fmt.Errorf("core: edge already present: %w", status.ErrIllegalArgument)
	ErrVertexNotFound      = fmt.Errorf("core: vertex not found: %w", status.ErrIllegalArgument)
	ErrEdgeNotFound        = fmt.Errorf("core: edge not found: %w", status.ErrIllegalArgument)
	ErrSelfLoopNotAllowed  = fmt.Errorf("core: self-loops not allowed: %w", status.ErrUnsupportedOperation)
	ErrMultiEdgeNotAllowed = fmt.Errorf("core: multi-edges not allowed: %w", status.ErrUnsupportedOperation)
	ErrUnweightedGraph     = fmt.Errorf("core: graph is not weighted: %w", status.ErrUnsupportedOperation)
	ErrUnmodifiable        = fmt.Errorf("core: graph is unmodifiable: %w", status.ErrUnsupportedOperation)
	ErrViewMutation        = fmt.Errorf("core: mutation not supported through this view: %w", status.ErrUnsupportedOperation)

	// ErrConcurrentMutation maps to the generic boundary error: the iterator
	// contract is undefined under mutation and we choose to fail fast.
	ErrConcurrentMutation = errors.New("core: graph mutated during iteration")
)

// GraphType reports the policy flags of a graph or view. All flags are fixed
// at construction; views may project different values than their base.
type GraphType struct {
	Directed            bool
	AllowsSelfLoops     bool
	AllowsMultipleEdges bool
	Weighted            bool
	Modifiable          bool
}

// Graph is the capability surface shared by the mutable store and its views.
// Algorithm packages accept this interface and never mutate their input.
type Graph interface {
	// Type reports the policy flags in effect for this graph or view.
	Type() GraphType

	// AddVertex inserts a vertex under the next unused id and returns it.
	AddVertex() (int64, error)
	// AddVertexWithID inserts a vertex under a caller-chosen id.
	AddVertexWithID(v int64) error
	// ContainsVertex reports whether v exists.
	ContainsVertex(v int64) bool
	// RemoveVertex deletes v and all incident edges. Absent v is a no-op
	// reported as false, not an error.
	RemoveVertex(v int64) (bool, error)

	// AddEdge connects u to v under the next unused edge id and returns it.
	AddEdge(u, v int64) (int64, error)
	// AddEdgeWithID connects u to v under a caller-chosen edge id.
	AddEdgeWithID(u, v, e int64) error
	// ContainsEdge reports whether edge e exists.
	ContainsEdge(e int64) bool
	// ContainsEdgeBetween reports whether at least one edge connects u to v,
	// in either orientation for undirected graphs.
	ContainsEdgeBetween(u, v int64) bool
	// RemoveEdge deletes edge e. Absent e is a no-op reported as false.
	RemoveEdge(e int64) (bool, error)

	// EdgeSource and EdgeTarget return the ordered endpoints of e.
	EdgeSource(e int64) (int64, error)
	EdgeTarget(e int64) (int64, error)
	// EdgeWeight returns the weight of e, DefaultEdgeWeight if none was set.
	EdgeWeight(e int64) (float64, error)
	// SetEdgeWeight assigns a weight; fails on unweighted graphs.
	SetEdgeWeight(e int64, w float64) error

	// DegreeOf returns the total degree of v; self-loops count twice.
	DegreeOf(v int64) (int, error)
	// InDegreeOf and OutDegreeOf equal DegreeOf on undirected graphs.
	InDegreeOf(v int64) (int, error)
	OutDegreeOf(v int64) (int, error)

	VertexCount() int
	EdgeCount() int

	// Vertices and Edges iterate ids in ascending order, failing fast if the
	// graph is mutated after iterator creation.
	Vertices() iterate.Iterator[int64]
	Edges() iterate.Iterator[int64]
	// EdgesOf iterates all edges touching v; Incoming/OutgoingEdgesOf restrict
	// by orientation and coincide with EdgesOf on undirected graphs.
	EdgesOf(v int64) (iterate.Iterator[int64], error)
	IncomingEdgesOf(v int64) (iterate.Iterator[int64], error)
	OutgoingEdgesOf(v int64) (iterate.Iterator[int64], error)
	// EdgesBetween iterates every edge connecting u to v.
	EdgesBetween(u, v int64) iterate.Iterator[int64]
}

// Option configures a Store before creation.
type Option func(*Store)

// WithDirected makes every edge directed source→target.
func WithDirected() Option {
	return func(g *Store) { g.directed = true }
}

// WithWeighted enables mutable edge weights.
func WithWeighted() Option {
	return func(g *Store) { g.weighted = true }
}

// WithSelfLoops permits edges whose source equals their target.
func WithSelfLoops() Option {
	return func(g *Store) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges sharing both endpoints.
func WithMultiEdges() Option {
	return func(g *Store) { g.allowMulti = true }
}

// edgeRec is the internal edge record. Weight starts at DefaultEdgeWeight.
type edgeRec struct {
	source, target int64
	weight         float64
}

// pairKey canonicalizes an endpoint pair: ordered for directed graphs,
// sorted for undirected ones, so the pair index is orientation-correct.
type pairKey struct{ a, b int64 }

// Store is the concrete mutable graph. The zero value is not usable; build
// instances with NewGraph.
type Store struct {
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextVertexID int64
	nextEdgeID   int64

	vertices map[int64]struct{}
	edges    map[int64]*edgeRec

	// out[v] holds edges with source v, plus edges with target v when the
	// graph is undirected; in[v] mirrors the target side. Self-loops appear
	// once per index.
	out map[int64]map[int64]struct{}
	in  map[int64]map[int64]struct{}

	// pairs indexes edge ids by canonical endpoint pair for O(1)
	// ContainsEdgeBetween and the multi-edge policy check.
	pairs map[pairKey]map[int64]struct{}

	// version counts structural and weight mutations; live iterators compare
	// against it to fail fast.
	version uint64
}

// NewGraph creates an empty Store. By default the graph is undirected,
// unweighted, and rejects self-loops and multi-edges. Complexity: O(1).
func NewGraph(opts ...Option) *Store {
	g := &Store{
		vertices: make(map[int64]struct{}),
		edges:    make(map[int64]*edgeRec),
		out:      make(map[int64]map[int64]struct{}),
		in:       make(map[int64]map[int64]struct{}),
		pairs:    make(map[pairKey]map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Type reports the construction-time policy flags. A Store is always
// modifiable; only views project Modifiable=false.
func (g *Store) Type() GraphType {
	return GraphType{
		Directed:            g.directed,
		AllowsSelfLoops:     g.allowLoops,
		AllowsMultipleEdges: g.allowMulti,
		Weighted:            g.weighted,
		Modifiable:          true,
	}
}

func (g *Store) pairKeyOf(u, v int64) pairKey {
	if !g.directed && u > v {
		u, v = v, u
	}

	return pairKey{u, v}
}
