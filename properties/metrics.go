package properties

import (
	"fmt"
	"math"
	"sort"

	"github.com/korifey/grapht/core"
)

// bfsDistances returns hop counts from src over the symmetric adjacency.
func bfsDistances(adj map[int64]map[int64]struct{}, src int64) map[int64]int {
	dist := map[int64]int{src: 0}
	queue := []int64{src}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for n := range adj[u] {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[u] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist
}

// Eccentricity returns the hop distance from v to its farthest reachable
// vertex, infinite when the graph is disconnected. Complexity: O(V + E).
func Eccentricity(g core.Graph, v int64) (float64, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	if !g.ContainsVertex(v) {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	adj, vertices, err := neighborSets(g)
	if err != nil {
		return 0, err
	}
	dist := bfsDistances(adj, v)
	if len(dist) < len(vertices) {
		return math.Inf(1), nil
	}
	ecc := 0
	for _, d := range dist {
		if d > ecc {
			ecc = d
		}
	}

	return float64(ecc), nil
}

// Diameter returns the largest eccentricity, infinite when disconnected
// and zero for graphs with fewer than two vertices. Complexity: O(V*(V+E)).
func Diameter(g core.Graph) (float64, error) {
	_, diameter, err := eccentricityRange(g)

	return diameter, err
}

// Radius returns the smallest eccentricity. Complexity: O(V*(V+E)).
func Radius(g core.Graph) (float64, error) {
	radius, _, err := eccentricityRange(g)

	return radius, err
}

func eccentricityRange(g core.Graph) (radius, diameter float64, err error) {
	if g == nil {
		return 0, 0, core.ErrNilGraph
	}
	adj, vertices, err := neighborSets(g)
	if err != nil {
		return 0, 0, err
	}
	if len(vertices) == 0 {
		return 0, 0, nil
	}
	radius = math.Inf(1)
	for _, v := range vertices {
		dist := bfsDistances(adj, v)
		if len(dist) < len(vertices) {
			return math.Inf(1), math.Inf(1), nil
		}
		ecc := 0
		for _, d := range dist {
			if d > ecc {
				ecc = d
			}
		}
		if float64(ecc) < radius {
			radius = float64(ecc)
		}
		if float64(ecc) > diameter {
			diameter = float64(ecc)
		}
	}

	return radius, diameter, nil
}

// Triangles counts unordered vertex triples that are mutually adjacent,
// ignoring direction and edge multiplicity. Uses the degree-ordered
// enumeration. Complexity: O(E^1.5).
func Triangles(g core.Graph) (int, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	adj, vertices, err := neighborSets(g)
	if err != nil {
		return 0, err
	}

	// Orient each edge from the lower-ranked vertex (degree, then id)
	// toward the higher; each triangle is counted at its lowest corner.
	rank := make(map[int64]int, len(vertices))
	ordered := append([]int64(nil), vertices...)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := len(adj[ordered[i]]), len(adj[ordered[j]])
		if di != dj {
			return di < dj
		}

		return ordered[i] < ordered[j]
	})
	for i, v := range ordered {
		rank[v] = i
	}

	higher := make(map[int64][]int64, len(vertices))
	for _, v := range vertices {
		for n := range adj[v] {
			if rank[n] > rank[v] {
				higher[v] = append(higher[v], n)
			}
		}
	}

	count := 0
	for _, v := range vertices {
		hs := higher[v]
		for i := 0; i < len(hs); i++ {
			for j := i + 1; j < len(hs); j++ {
				a, b := hs[i], hs[j]
				if _, ok := adj[a][b]; ok {
					count++
				}
			}
		}
	}

	return count, nil
}

// Girth returns the length of the shortest cycle, infinite for acyclic
// graphs. Self-loops have girth 1 and parallel edges girth 2; direction is
// ignored otherwise. Complexity: O(V * (V + E)).
func Girth(g core.Graph) (float64, error) {
	if g == nil {
		return 0, core.ErrNilGraph
	}
	loops, err := HasSelfLoops(g)
	if err != nil {
		return 0, err
	}
	if loops {
		return 1, nil
	}
	// Two edges over one unordered pair close a 2-cycle regardless of
	// orientation.
	type pair struct{ a, b int64 }
	seen := make(map[pair]struct{}, g.EdgeCount())
	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
		if err != nil {
			return 0, err
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return 0, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return 0, err
		}
		if u > v {
			u, v = v, u
		}
		p := pair{a: u, b: v}
		if _, dup := seen[p]; dup {
			return 2, nil
		}
		seen[p] = struct{}{}
	}
	adj, vertices, err := neighborSets(g)
	if err != nil {
		return 0, err
	}

	// BFS from every vertex; a cross or back edge at depth d closes a
	// cycle of length dist[u]+dist[n]+1.
	best := math.Inf(1)
	for _, root := range vertices {
		dist := map[int64]int{root: 0}
		parent := map[int64]int64{root: root}
		queue := []int64{root}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for n := range adj[u] {
				if n == parent[u] {
					continue
				}
				if dn, ok := dist[n]; ok {
					if cycle := float64(dist[u] + dn + 1); cycle < best {
						best = cycle
					}

					continue
				}
				dist[n] = dist[u] + 1
				parent[n] = u
				queue = append(queue, n)
			}
		}
	}

	return best, nil
}
