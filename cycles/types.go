// Package cycles provides cycle machinery: Eulerian circuits (Hierholzer),
// a fundamental cycle basis (Paton) and lazy enumeration of simple directed
// cycles (Tiernan).
package cycles

import (
	"fmt"
	"time"

	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for cycle computation.
var (
	// ErrNotEulerian is returned when the graph admits no Eulerian circuit
	// (odd degree, unbalanced in/out degree, or disconnected edges).
	ErrNotEulerian = fmt.Errorf("cycles: graph is not Eulerian: %w", status.ErrUnsupportedOperation)

	// ErrDirectedGraph is returned by the cycle basis, which is defined for
	// undirected graphs only.
	ErrDirectedGraph = fmt.Errorf("cycles: cycle basis requires an undirected graph: %w", status.ErrUnsupportedOperation)

	// ErrUndirectedGraph is returned by simple-cycle enumeration, which is
	// defined for directed graphs only.
	ErrUndirectedGraph = fmt.Errorf("cycles: simple-cycle enumeration requires a directed graph: %w", status.ErrUnsupportedOperation)

	// ErrTimeout is surfaced by the simple-cycle iterator when the
	// WithTimeout budget is exhausted.
	ErrTimeout = fmt.Errorf("cycles: enumeration timed out: %w", status.ErrTimeout)
)

// Circuit is an immutable closed walk: n edges and n+1 vertices with the
// first vertex repeated at the end.
type Circuit struct {
	vertices []int64
	edges    []int64
}

// Len returns the number of edges in the circuit.
func (c *Circuit) Len() int { return len(c.edges) }

// VertexList returns a copy of the closed vertex sequence.
func (c *Circuit) VertexList() []int64 {
	return append([]int64(nil), c.vertices...)
}

// EdgeList returns a copy of the edge sequence.
func (c *Circuit) EdgeList() []int64 {
	return append([]int64(nil), c.edges...)
}

// Vertices iterates the closed vertex sequence.
func (c *Circuit) Vertices() iterate.Iterator[int64] {
	return iterate.FromSlice(c.VertexList())
}

// Edges iterates the edge sequence.
func (c *Circuit) Edges() iterate.Iterator[int64] {
	return iterate.FromSlice(c.EdgeList())
}

// Option configures simple-cycle enumeration.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout bounds the total enumeration time. A zero or negative
// duration means no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}
