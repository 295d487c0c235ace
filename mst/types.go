package mst

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for spanning-tree computation.
var (
	// ErrDirectedGraph is returned when the input graph is directed.
	ErrDirectedGraph = fmt.Errorf("mst: spanning tree requires an undirected graph: %w", status.ErrUnsupportedOperation)

	// ErrRootNotFound is returned by Prim when the chosen root is absent.
	ErrRootNotFound = fmt.Errorf("mst: root vertex not found: %w", status.ErrIllegalArgument)
)

// SpanningTree is an immutable minimum-spanning-forest result: the selected
// edge ids in ascending order and their total weight.
type SpanningTree struct {
	edges  []int64
	weight float64
}

// Weight returns the total weight of the selected edges.
func (t *SpanningTree) Weight() float64 { return t.weight }

// EdgeList returns a copy of the selected edge ids, ascending.
func (t *SpanningTree) EdgeList() []int64 {
	return append([]int64(nil), t.edges...)
}

// Edges iterates the selected edge ids, ascending.
func (t *SpanningTree) Edges() iterate.Iterator[int64] {
	return iterate.FromSlice(t.EdgeList())
}

// Len returns the number of selected edges.
func (t *SpanningTree) Len() int { return len(t.edges) }

// treeEdge is a candidate edge flattened for selection.
type treeEdge struct {
	id, u, v int64
	weight   float64
}

// collectTreeEdges gathers non-loop edges in ascending id order, so stable
// weight sorts break ties toward lower ids.
func collectTreeEdges(g core.Graph) ([]treeEdge, error) {
	var out []treeEdge
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return nil, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, err
		}
		if u == v {
			continue
		}
		w, err := g.EdgeWeight(e)
		if err != nil {
			return nil, err
		}
		out = append(out, treeEdge{id: e, u: u, v: v, weight: w})
	}

	return out, nil
}

func checkUndirected(g core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	if g.Type().Directed {
		return ErrDirectedGraph
	}

	return nil
}

func finishTree(picked []treeEdge) *SpanningTree {
	t := &SpanningTree{edges: make([]int64, 0, len(picked))}
	for _, e := range picked {
		t.edges = append(t.edges, e.id)
		t.weight += e.weight
	}
	sort.Slice(t.edges, func(i, j int) bool { return t.edges[i] < t.edges[j] })

	return t
}
