// Package matching computes approximate matchings in undirected graphs:
// a greedy maximal-cardinality matching and the path-growing 1/2-approximation
// for maximum weight.
package matching

import (
	"fmt"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// ErrDirectedGraph is returned when the input graph is directed.
var ErrDirectedGraph = fmt.Errorf("matching: matching requires an undirected graph: %w", status.ErrUnsupportedOperation)

// Matching is an immutable matching result.
type Matching struct {
	edges   []int64
	weight  float64
	matched map[int64]int64 // vertex -> matched partner
}

// Weight returns the total weight of the matched edges.
func (m *Matching) Weight() float64 { return m.weight }

// Len returns the number of matched edges.
func (m *Matching) Len() int { return len(m.edges) }

// EdgeList returns a copy of the matched edge ids, ascending.
func (m *Matching) EdgeList() []int64 {
	return append([]int64(nil), m.edges...)
}

// Edges iterates the matched edge ids, ascending.
func (m *Matching) Edges() iterate.Iterator[int64] {
	return iterate.FromSlice(m.EdgeList())
}

// IsMatched reports whether v is covered by the matching.
func (m *Matching) IsMatched(v int64) bool {
	_, ok := m.matched[v]

	return ok
}

// PartnerOf returns the vertex matched with v, ErrNoSuchElement when v is
// exposed.
func (m *Matching) PartnerOf(v int64) (int64, error) {
	p, ok := m.matched[v]
	if !ok {
		return 0, fmt.Errorf("matching: vertex %d is unmatched: %w", v, status.ErrNoSuchElement)
	}

	return p, nil
}

// matchEdge is a candidate edge flattened for selection.
type matchEdge struct {
	id, u, v int64
	weight   float64
}

func collectEdges(g core.Graph) ([]matchEdge, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}
	var out []matchEdge
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
		out = append(out, matchEdge{id: e, u: u, v: v, weight: w})
	}

	return out, nil
}

func buildMatching(picked []matchEdge) *Matching {
	m := &Matching{
		edges:   make([]int64, 0, len(picked)),
		matched: make(map[int64]int64, 2*len(picked)),
	}
	for _, e := range picked {
		m.edges = append(m.edges, e.id)
		m.weight += e.weight
		m.matched[e.u] = e.v
		m.matched[e.v] = e.u
	}
	sort.Slice(m.edges, func(i, j int) bool { return m.edges[i] < m.edges[j] })

	return m
}

// GreedyMaxCardinality builds a maximal matching by scanning edges in
// ascending id order and keeping every edge whose endpoints are both still
// exposed. The result is at least half the maximum cardinality.
// Complexity: O(V + E).
func GreedyMaxCardinality(g core.Graph) (*Matching, error) {
	edges, err := collectEdges(g)
	if err != nil {
		return nil, err
	}
	used := make(map[int64]struct{})
	var picked []matchEdge
	for _, e := range edges {
		if _, ok := used[e.u]; ok {
			continue
		}
		if _, ok := used[e.v]; ok {
			continue
		}
		used[e.u], used[e.v] = struct{}{}, struct{}{}
		picked = append(picked, e)
	}

	return buildMatching(picked), nil
}

// PathGrowingMaxWeight runs the Drake-Hougardy path-growing heuristic: grow
// vertex-disjoint paths along the locally heaviest edge, alternately
// assigning edges to two candidate matchings, and keep the heavier one.
// Guarantees at least half the maximum weight. Complexity: O(V + E log V).
func PathGrowingMaxWeight(g core.Graph) (*Matching, error) {
	edges, err := collectEdges(g)
	if err != nil {
		return nil, err
	}
	adj := make(map[int64][]matchEdge)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], e)
		adj[e.v] = append(adj[e.v], matchEdge{id: e.id, u: e.v, v: e.u, weight: e.weight})
	}
	var vertices []int64
	for v := range adj {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool { return vertices[i] < vertices[j] })

	removed := make(map[int64]struct{}, len(vertices))
	var sides [2][]matchEdge
	var weights [2]float64
	for _, start := range vertices {
		side := 0
		cur := start
		for {
			if _, gone := removed[cur]; gone {
				break
			}
			// Heaviest incident edge to a surviving neighbor; ties
			// toward the lower edge id.
			best, found := matchEdge{}, false
			for _, e := range adj[cur] {
				if _, gone := removed[e.v]; gone {
					continue
				}
				if !found || e.weight > best.weight || (e.weight == best.weight && e.id < best.id) {
					best, found = e, true
				}
			}
			removed[cur] = struct{}{}
			if !found {
				break
			}
			sides[side] = append(sides[side], best)
			weights[side] += best.weight
			side = 1 - side
			cur = best.v
		}
	}

	chosen := sides[0]
	if weights[1] > weights[0] {
		chosen = sides[1]
	}
	// Path growing can assign two edges of one side a shared endpoint when
	// paths close into a cycle; filter to a proper matching.
	used := make(map[int64]struct{})
	var picked []matchEdge
	for _, e := range chosen {
		if _, ok := used[e.u]; ok {
			continue
		}
		if _, ok := used[e.v]; ok {
			continue
		}
		used[e.u], used[e.v] = struct{}{}, struct{}{}
		picked = append(picked, e)
	}

	return buildMatching(picked), nil
}
