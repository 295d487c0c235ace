// Package coloring assigns proper vertex colors with ordering-based greedy
// heuristics: natural order, largest-degree-first, smallest-degree-last
// (degeneracy order), DSatur and a seeded random order.
//
// Edge direction is ignored and self-loops never constrain a vertex.
// Every algorithm is deterministic: ties break toward the lower vertex id
// and the random order is fully determined by its seed.
package coloring

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
	"github.com/korifey/grapht/traverse"
)

// ErrVertexNotFound is returned by ColorOf for an uncolored vertex id.
var ErrVertexNotFound = fmt.Errorf("coloring: vertex not found: %w", status.ErrIllegalArgument)

// Coloring is an immutable proper-coloring result. Colors are dense
// integers starting at 0.
type Coloring struct {
	colors    map[int64]int
	numColors int
}

// NumColors returns the number of distinct colors used.
func (c *Coloring) NumColors() int { return c.numColors }

// ColorOf returns the color assigned to v.
func (c *Coloring) ColorOf(v int64) (int, error) {
	col, ok := c.colors[v]
	if !ok {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return col, nil
}

// Colors returns a copy of the vertex-to-color map.
func (c *Coloring) Colors() map[int64]int {
	out := make(map[int64]int, len(c.colors))
	for v, col := range c.colors {
		out[v] = col
	}

	return out
}

// adjacency is the loop-free symmetric neighbor map used by every
// heuristic.
func adjacency(g core.Graph) (map[int64]map[int64]struct{}, []int64, error) {
	if g == nil {
		return nil, nil, core.ErrNilGraph
	}
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
		if u == v {
			continue
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	return adj, vertices, nil
}

// colorInOrder assigns each vertex the smallest color unused by its
// already-colored neighbors.
func colorInOrder(adj map[int64]map[int64]struct{}, order []int64) *Coloring {
	c := &Coloring{colors: make(map[int64]int, len(order))}
	taken := make([]bool, 0, 8)
	for _, v := range order {
		taken = taken[:0]
		for n := range adj[v] {
			if col, ok := c.colors[n]; ok {
				for col >= len(taken) {
					taken = append(taken, false)
				}
				taken[col] = true
			}
		}
		col := 0
		for col < len(taken) && taken[col] {
			col++
		}
		c.colors[v] = col
		if col+1 > c.numColors {
			c.numColors = col + 1
		}
	}

	return c
}

// Greedy colors vertices in ascending id order. Complexity: O(V + E).
func Greedy(g core.Graph) (*Coloring, error) {
	adj, order, err := adjacency(g)
	if err != nil {
		return nil, err
	}

	return colorInOrder(adj, order), nil
}

// LargestDegreeFirst colors vertices in descending degree order
// (Welsh-Powell). Complexity: O(V log V + E).
func LargestDegreeFirst(g core.Graph) (*Coloring, error) {
	adj, order, err := adjacency(g)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := len(adj[order[i]]), len(adj[order[j]])
		if di != dj {
			return di > dj
		}

		return order[i] < order[j]
	})

	return colorInOrder(adj, order), nil
}

// SmallestDegreeLast colors vertices in reverse degeneracy order, using at
// most degeneracy+1 colors. Complexity: O((V + E) log V).
func SmallestDegreeLast(g core.Graph) (*Coloring, error) {
	adj, _, err := adjacency(g)
	if err != nil {
		return nil, err
	}
	it, err := traverse.DegeneracyOrdering(g)
	if err != nil {
		return nil, err
	}
	order, err := iterate.Collect(it)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return colorInOrder(adj, order), nil
}

// RandomOrder colors vertices in a seed-determined shuffle of the vertex
// set. Complexity: O(V + E).
func RandomOrder(g core.Graph, seed int64) (*Coloring, error) {
	adj, order, err := adjacency(g)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	return colorInOrder(adj, order), nil
}

// DSatur colors the vertex with the highest saturation (distinct neighbor
// colors) next, breaking ties by degree then lower id. Complexity: O(V^2).
func DSatur(g core.Graph) (*Coloring, error) {
	adj, vertices, err := adjacency(g)
	if err != nil {
		return nil, err
	}

	c := &Coloring{colors: make(map[int64]int, len(vertices))}
	saturation := make(map[int64]map[int]struct{}, len(vertices))
	for _, v := range vertices {
		saturation[v] = make(map[int]struct{})
	}

	for len(c.colors) < len(vertices) {
		best, found := int64(0), false
		for _, v := range vertices {
			if _, done := c.colors[v]; done {
				continue
			}
			if !found {
				best, found = v, true

				continue
			}
			sv, sb := len(saturation[v]), len(saturation[best])
			dv, db := len(adj[v]), len(adj[best])
			if sv > sb || (sv == sb && dv > db) {
				best = v
			}
		}

		col := 0
		for {
			if _, used := saturation[best][col]; !used {
				break
			}
			col++
		}
		c.colors[best] = col
		if col+1 > c.numColors {
			c.numColors = col + 1
		}
		for n := range adj[best] {
			if _, done := c.colors[n]; !done {
				saturation[n][col] = struct{}{}
			}
		}
	}

	return c, nil
}
