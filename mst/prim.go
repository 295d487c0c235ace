package mst

import (
	"container/heap"
	"fmt"

	"github.com/korifey/grapht/core"
)

// Option configures Prim's algorithm.
type Option func(*options)

type options struct {
	root    int64
	hasRoot bool
}

// WithRoot selects the vertex Prim grows from first. Without it the lowest
// vertex id is used.
func WithRoot(v int64) Option {
	return func(o *options) { o.root, o.hasRoot = v, true }
}

// primEntry is a frontier edge: crossing edge id, weight and the vertex it
// would attach.
type primEntry struct {
	weight float64
	edge   int64
	to     int64
}

type primHeap []primEntry

func (h primHeap) Len() int { return len(h) }
func (h primHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].edge < h[j].edge
}
func (h primHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *primHeap) Push(x interface{}) { *h = append(*h, x.(primEntry)) }
func (h *primHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Prim computes a minimum spanning forest by growing trees from a root,
// always attaching the cheapest frontier edge (lazy-deletion heap).
// Secondary components grow from their lowest vertex id.
// Complexity: O(E log E).
func Prim(g core.Graph, opts ...Option) (*SpanningTree, error) {
	if err := checkUndirected(g); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasRoot && !g.ContainsVertex(o.root) {
		return nil, fmt.Errorf("vertex %d: %w", o.root, ErrRootNotFound)
	}

	edges, err := collectTreeEdges(g)
	if err != nil {
		return nil, err
	}
	adj := make(map[int64][]treeEdge)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], e)
		adj[e.v] = append(adj[e.v], treeEdge{id: e.id, u: e.v, v: e.u, weight: e.weight})
	}

	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}
	// Grow the root's component first, remaining components in id order.
	if o.hasRoot {
		roots := []int64{o.root}
		for _, v := range vertices {
			if v != o.root {
				roots = append(roots, v)
			}
		}
		vertices = roots
	}

	visited := make(map[int64]struct{}, len(vertices))
	var picked []treeEdge
	h := &primHeap{}
	for _, root := range vertices {
		if _, ok := visited[root]; ok {
			continue
		}
		visited[root] = struct{}{}
		*h = (*h)[:0]
		for _, e := range adj[root] {
			heap.Push(h, primEntry{weight: e.weight, edge: e.id, to: e.v})
		}
		for h.Len() > 0 {
			ent := heap.Pop(h).(primEntry)
			if _, ok := visited[ent.to]; ok {
				continue
			}
			visited[ent.to] = struct{}{}
			picked = append(picked, treeEdge{id: ent.edge, weight: ent.weight})
			for _, e := range adj[ent.to] {
				if _, ok := visited[e.v]; !ok {
					heap.Push(h, primEntry{weight: e.weight, edge: e.id, to: e.v})
				}
			}
		}
	}

	return finishTree(picked), nil
}
