// Iterator accessors for the Store. Orders are ascending by id; every
// iterator captures the store's modification counter at creation and fails
// fast with ErrConcurrentMutation once the graph changes under it.
package core

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/iterate"
)

// guardedIterator walks a fixed id sequence while watching the store version.
type guardedIterator struct {
	g       *Store
	version uint64
	ids     []int64
	pos     int
}

func (g *Store) guarded(ids []int64) iterate.Iterator[int64] {
	return &guardedIterator{g: g, version: g.version, ids: ids}
}

func (it *guardedIterator) HasNext() bool { return it.pos < len(it.ids) }

func (it *guardedIterator) Next() (int64, error) {
	if it.g.version != it.version {
		return 0, ErrConcurrentMutation
	}
	if it.pos >= len(it.ids) {
		return 0, iterate.ErrExhausted
	}
	v := it.ids[it.pos]
	it.pos++

	return v, nil
}

// Vertices iterates all vertex ids in ascending order.
// Complexity: O(V log V) at creation, O(1) per step.
func (g *Store) Vertices() iterate.Iterator[int64] {
	ids := make([]int64, 0, len(g.vertices))
	for v := range g.vertices {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return g.guarded(ids)
}

// Edges iterates all edge ids in ascending order.
// Complexity: O(E log E) at creation, O(1) per step.
func (g *Store) Edges() iterate.Iterator[int64] {
	ids := make([]int64, 0, len(g.edges))
	for e := range g.edges {
		ids = append(ids, e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return g.guarded(ids)
}

// EdgesOf iterates every edge touching v, each id exactly once.
// Complexity: O(deg(v) log deg(v)).
func (g *Store) EdgesOf(v int64) (iterate.Iterator[int64], error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	seen := make(map[int64]struct{}, len(g.out[v])+len(g.in[v]))
	for e := range g.out[v] {
		seen[e] = struct{}{}
	}
	for e := range g.in[v] {
		seen[e] = struct{}{}
	}

	return g.guarded(sortedIDs(seen)), nil
}

// OutgoingEdgesOf iterates edges leaving v (all incident edges when the graph
// is undirected). Complexity: O(deg(v) log deg(v)).
func (g *Store) OutgoingEdgesOf(v int64) (iterate.Iterator[int64], error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return g.guarded(sortedIDs(g.out[v])), nil
}

// IncomingEdgesOf iterates edges entering v (all incident edges when the
// graph is undirected). Complexity: O(deg(v) log deg(v)).
func (g *Store) IncomingEdgesOf(v int64) (iterate.Iterator[int64], error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return g.guarded(sortedIDs(g.in[v])), nil
}

// EdgesBetween iterates every edge connecting u to v, respecting orientation
// on directed graphs. Absent endpoints yield an empty iterator.
// Complexity: O(k log k) for k parallel edges.
func (g *Store) EdgesBetween(u, v int64) iterate.Iterator[int64] {
	set, ok := g.pairs[g.pairKeyOf(u, v)]
	if !ok {
		return iterate.Empty[int64]()
	}

	return g.guarded(sortedIDs(set))
}

// NeighborsOf returns the distinct adjacent vertex ids of v in ascending
// order: out-neighbors on directed graphs, all neighbors otherwise. A
// convenience for traversal and algorithm packages; self-loops contribute v
// itself once. Complexity: O(deg(v) log deg(v)).
func (g *Store) NeighborsOf(v int64) ([]int64, error) {
	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	seen := make(map[int64]struct{}, len(g.out[v]))
	for e := range g.out[v] {
		rec := g.edges[e]
		if rec.source == v {
			seen[rec.target] = struct{}{}
		} else {
			seen[rec.source] = struct{}{}
		}
	}

	return sortedIDs(seen), nil
}
