// Package properties answers structural questions about graphs: predicate
// tests (simple, complete, connected, bipartite, chordal and friends) and
// unweighted distance metrics (eccentricity, diameter, radius, girth,
// triangle count).
//
// Every function treats the graph read-only. Metrics use hop counts, not
// edge weights.
package properties

import (
	"fmt"

	"github.com/korifey/grapht/connectivity"
	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
	"github.com/korifey/grapht/traverse"
)

// ErrVertexNotFound is returned by Eccentricity for an unknown vertex.
var ErrVertexNotFound = fmt.Errorf("properties: vertex not found: %w", status.ErrIllegalArgument)

// neighborSets builds the loop-free symmetric adjacency sets.
func neighborSets(g core.Graph) (map[int64]map[int64]struct{}, []int64, error) {
	adj := make(map[int64]map[int64]struct{})
	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, nil, err
		}
		vertices = append(vertices, v)
		adj[v] = make(map[int64]struct{})
	}
	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
		if err != nil {
			return nil, nil, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, nil, err
		}
		if u != v {
			adj[u][v] = struct{}{}
			adj[v][u] = struct{}{}
		}
	}

	return adj, vertices, nil
}

// IsEmpty reports whether the graph has no edges. Complexity: O(1).
func IsEmpty(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}

	return g.EdgeCount() == 0, nil
}

// HasSelfLoops reports whether any edge joins a vertex to itself.
// Complexity: O(E).
func HasSelfLoops(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return false, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return false, err
		}
		if u == v {
			return true, nil
		}
	}

	return false, nil
}

// HasMultipleEdges reports whether any two edges share an endpoint pair
// (orientation-sensitive on directed graphs). Complexity: O(E).
func HasMultipleEdges(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	type pair struct{ a, b int64 }
	directed := g.Type().Directed
	seen := make(map[pair]struct{}, g.EdgeCount())
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return false, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return false, err
		}
		if !directed && u > v {
			u, v = v, u
		}
		p := pair{a: u, b: v}
		if _, dup := seen[p]; dup {
			return true, nil
		}
		seen[p] = struct{}{}
	}

	return false, nil
}

// IsSimple reports whether the graph has neither self-loops nor parallel
// edges. Complexity: O(V + E).
func IsSimple(g core.Graph) (bool, error) {
	loops, err := HasSelfLoops(g)
	if err != nil {
		return false, err
	}
	if loops {
		return false, nil
	}
	multi, err := HasMultipleEdges(g)
	if err != nil {
		return false, err
	}

	return !multi, nil
}

// IsComplete reports whether every distinct vertex pair is adjacent (in
// both orientations on directed graphs). Complexity: O(V + E).
func IsComplete(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	simple, err := IsSimple(g)
	if err != nil {
		return false, err
	}
	if !simple {
		return false, nil
	}
	n := int64(g.VertexCount())
	want := n * (n - 1)
	if !g.Type().Directed {
		want /= 2
	}

	return int64(g.EdgeCount()) == want, nil
}

// IsWeaklyConnected reports whether the graph is connected ignoring edge
// direction. The empty graph counts as connected. Complexity: O(V + E).
func IsWeaklyConnected(g core.Graph) (bool, error) {
	c, err := connectivity.WeakComponents(g)
	if err != nil {
		return false, err
	}

	return c.Count() <= 1, nil
}

// IsConnected is IsWeaklyConnected under its undirected-graph name.
func IsConnected(g core.Graph) (bool, error) {
	return IsWeaklyConnected(g)
}

// IsStronglyConnected reports whether every vertex reaches every other
// respecting direction. Complexity: O(V + E).
func IsStronglyConnected(g core.Graph) (bool, error) {
	c, err := connectivity.StrongComponents(g)
	if err != nil {
		return false, err
	}

	return c.Count() <= 1, nil
}

// IsForest reports whether the graph is an acyclic undirected graph.
// Complexity: O(V + E).
func IsForest(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	if g.Type().Directed {
		return false, nil
	}
	loops, err := HasSelfLoops(g)
	if err != nil {
		return false, err
	}
	if loops {
		return false, nil
	}
	c, err := connectivity.WeakComponents(g)
	if err != nil {
		return false, err
	}

	// A forest has exactly V - C edges.
	return g.EdgeCount() == g.VertexCount()-c.Count(), nil
}

// IsTree reports whether the graph is a connected forest with at least one
// vertex. Complexity: O(V + E).
func IsTree(g core.Graph) (bool, error) {
	forest, err := IsForest(g)
	if err != nil || !forest {
		return false, err
	}
	if g.VertexCount() == 0 {
		return false, nil
	}
	connected, err := IsWeaklyConnected(g)
	if err != nil {
		return false, err
	}

	return connected, nil
}

// IsBipartite reports whether the vertices split into two independent
// sets, via BFS 2-coloring of the underlying undirected graph. Self-loops
// make a graph non-bipartite. Complexity: O(V + E).
func IsBipartite(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	loops, err := HasSelfLoops(g)
	if err != nil {
		return false, err
	}
	if loops {
		return false, nil
	}
	adj, vertices, err := neighborSets(g)
	if err != nil {
		return false, err
	}

	color := make(map[int64]int, len(vertices))
	for _, root := range vertices {
		if _, ok := color[root]; ok {
			continue
		}
		color[root] = 0
		queue := []int64{root}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for n := range adj[u] {
				if c, ok := color[n]; ok {
					if c == color[u] {
						return false, nil
					}

					continue
				}
				color[n] = 1 - color[u]
				queue = append(queue, n)
			}
		}
	}

	return true, nil
}

// IsTriangleFree reports whether no three vertices are mutually adjacent.
// Complexity: O(E^1.5) via the triangle count.
func IsTriangleFree(g core.Graph) (bool, error) {
	n, err := Triangles(g)
	if err != nil {
		return false, err
	}

	return n == 0, nil
}

// IsEulerian reports whether the graph admits an Eulerian circuit: all
// degrees balanced and all edges in one component. Complexity: O(V + E).
func IsEulerian(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	directed := g.Type().Directed
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return false, err
		}
		if directed {
			in, err := g.InDegreeOf(v)
			if err != nil {
				return false, err
			}
			out, err := g.OutDegreeOf(v)
			if err != nil {
				return false, err
			}
			if in != out {
				return false, nil
			}
		} else {
			d, err := g.DegreeOf(v)
			if err != nil {
				return false, err
			}
			if d%2 != 0 {
				return false, nil
			}
		}
	}

	// All edges in one weak component.
	c, err := connectivity.WeakComponents(g)
	if err != nil {
		return false, err
	}
	carrying := -1
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return false, err
		}
		comp, err := c.ComponentOf(u)
		if err != nil {
			return false, err
		}
		if carrying < 0 {
			carrying = comp

			continue
		}
		if comp != carrying {
			return false, nil
		}
	}

	return true, nil
}

// IsChordal reports whether every cycle of length four or more has a
// chord, by checking that the maximum-cardinality-search order is a
// perfect elimination ordering. Complexity: O(V^2) with the MCS scan.
func IsChordal(g core.Graph) (bool, error) {
	if g == nil {
		return false, core.ErrNilGraph
	}
	if g.Type().Directed {
		return false, nil
	}
	adj, _, err := neighborSets(g)
	if err != nil {
		return false, err
	}
	it, err := traverse.MaxCardinality(g)
	if err != nil {
		return false, err
	}
	order, err := iterate.Collect(it)
	if err != nil {
		return false, err
	}

	rank := make(map[int64]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	// Perfect elimination check in reverse MCS order: the earlier-ranked
	// neighbors of each vertex must form a clique, which reduces to each
	// vertex's closest earlier neighbor covering the rest.
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		pivot, pivotRank := int64(0), -1
		for n := range adj[v] {
			if r := rank[n]; r < i && r > pivotRank {
				pivot, pivotRank = n, r
			}
		}
		if pivotRank < 0 {
			continue
		}
		for n := range adj[v] {
			if n == pivot || rank[n] >= i {
				continue
			}
			if _, ok := adj[pivot][n]; !ok {
				return false, nil
			}
		}
	}

	return true, nil
}
