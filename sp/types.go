// Package sp implements shortest-path algorithms over a core.Graph:
// single-pair and single-source Dijkstra, Bellman-Ford with negative-cycle
// detection, A* with pluggable heuristics (including ALT landmark bounds),
// and all-pairs computation via Floyd-Warshall or parallel Dijkstra.
//
// All entry points are pure: the input graph is never mutated, and results
// are immutable value objects. Unweighted graphs participate normally with
// every edge weighing core.DefaultEdgeWeight.
package sp

import (
	"fmt"
	"math"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrVertexNotFound is returned when a source or target id is absent.
	ErrVertexNotFound = fmt.Errorf("sp: vertex not found: %w", status.ErrIllegalArgument)

	// ErrNegativeWeight is returned by Dijkstra-class algorithms when the
	// graph carries a negative edge weight; use BellmanFordFrom instead.
	ErrNegativeWeight = fmt.Errorf("sp: negative edge weight: %w", status.ErrUnsupportedOperation)

	// ErrNegativeCycle is returned when relaxation detects a reachable
	// negative-weight cycle.
	ErrNegativeCycle = fmt.Errorf("sp: %w", status.ErrNegativeCycle)

	// ErrNoPath is returned when the target is unreachable from the source.
	ErrNoPath = fmt.Errorf("sp: no path between vertices: %w", status.ErrNoSuchElement)

	// ErrNoLandmarks is returned by NewALTHeuristic with an empty landmark set.
	ErrNoLandmarks = fmt.Errorf("sp: at least one landmark required: %w", status.ErrIllegalArgument)
)

// Path is an immutable shortest-path result: an alternating vertex/edge
// sequence with its accumulated weight. A path over n edges holds n+1
// vertices; a zero-length path holds the single source vertex.
type Path struct {
	source, target int64
	vertices       []int64
	edges          []int64
	weight         float64
}

// Weight returns the total path weight.
func (p *Path) Weight() float64 { return p.weight }

// StartVertex returns the first vertex of the path.
func (p *Path) StartVertex() int64 { return p.source }

// EndVertex returns the last vertex of the path.
func (p *Path) EndVertex() int64 { return p.target }

// Length returns the number of edges.
func (p *Path) Length() int { return len(p.edges) }

// VertexList returns a copy of the vertex sequence, source first.
func (p *Path) VertexList() []int64 {
	return append([]int64(nil), p.vertices...)
}

// EdgeList returns a copy of the edge sequence.
func (p *Path) EdgeList() []int64 {
	return append([]int64(nil), p.edges...)
}

// Vertices iterates the vertex sequence.
func (p *Path) Vertices() iterate.Iterator[int64] {
	return iterate.FromSlice(p.VertexList())
}

// Edges iterates the edge sequence.
func (p *Path) Edges() iterate.Iterator[int64] {
	return iterate.FromSlice(p.EdgeList())
}

// Tree is a single-source shortest-path tree. PathTo reconstructs the path
// to any settled vertex in O(path length).
type Tree struct {
	source     int64
	dist       map[int64]float64
	predEdge   map[int64]int64
	predVertex map[int64]int64
}

// SourceVertex returns the tree root.
func (t *Tree) SourceVertex() int64 { return t.source }

// DistanceTo returns the shortest distance to target, or ErrNoPath when the
// target was not reached.
func (t *Tree) DistanceTo(target int64) (float64, error) {
	d, ok := t.dist[target]
	if !ok {
		return math.Inf(1), fmt.Errorf("target %d: %w", target, ErrNoPath)
	}

	return d, nil
}

// PathTo reconstructs the shortest path from the source to target, or
// ErrNoPath when the target was not reached.
func (t *Tree) PathTo(target int64) (*Path, error) {
	d, ok := t.dist[target]
	if !ok {
		return nil, fmt.Errorf("target %d: %w", target, ErrNoPath)
	}
	var revVerts, revEdges []int64
	for cur := target; cur != t.source; {
		revVerts = append(revVerts, cur)
		revEdges = append(revEdges, t.predEdge[cur])
		cur = t.predVertex[cur]
	}
	revVerts = append(revVerts, t.source)

	verts := make([]int64, 0, len(revVerts))
	for i := len(revVerts) - 1; i >= 0; i-- {
		verts = append(verts, revVerts[i])
	}
	edges := make([]int64, 0, len(revEdges))
	for i := len(revEdges) - 1; i >= 0; i-- {
		edges = append(edges, revEdges[i])
	}

	return &Path{source: t.source, target: target, vertices: verts, edges: edges, weight: d}, nil
}

// arc is a directed relaxation step derived from an edge. Undirected edges
// contribute one arc per orientation.
type arc struct {
	from, to, edge int64
	weight         float64
}

// collectArcs flattens the graph into relaxation arcs, reporting the most
// negative weight seen.
func collectArcs(g core.Graph) ([]arc, float64, error) {
	directed := g.Type().Directed
	minWeight := 0.0
	var arcs []arc
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, 0, err
		}
		s, err := g.EdgeSource(e)
		if err != nil {
			return nil, 0, err
		}
		t, err := g.EdgeTarget(e)
		if err != nil {
			return nil, 0, err
		}
		w, err := g.EdgeWeight(e)
		if err != nil {
			return nil, 0, err
		}
		if w < minWeight {
			minWeight = w
		}
		arcs = append(arcs, arc{from: s, to: t, edge: e, weight: w})
		if !directed && s != t {
			arcs = append(arcs, arc{from: t, to: s, edge: e, weight: w})
		}
	}

	return arcs, minWeight, nil
}

// checkEndpoints validates the vertices an algorithm starts from.
func checkEndpoints(g core.Graph, vs ...int64) error {
	if g == nil {
		return core.ErrNilGraph
	}
	for _, v := range vs {
		if !g.ContainsVertex(v) {
			return fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
		}
	}

	return nil
}
