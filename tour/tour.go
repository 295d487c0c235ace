// Package tour builds and improves closed Hamiltonian tours: random and
// greedy construction, 2-opt local search, the MST shortcut
// 2-approximation for metric instances, and exact Held-Karp for small
// ones.
//
// All solvers need an undirected graph; those that need every pairwise
// distance reject incomplete graphs. Parallel edges contribute their
// cheapest weight, self-loops are ignored.
package tour

import (
	"fmt"
	"math"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for tour construction.
var (
	// ErrDirectedGraph is returned when a solver receives a directed graph.
	ErrDirectedGraph = fmt.Errorf("tour: directed graphs are not supported: %w", status.ErrUnsupportedOperation)

	// ErrIncompleteGraph is returned when a solver needs every pairwise
	// distance and some pair has no edge.
	ErrIncompleteGraph = fmt.Errorf("tour: graph is not complete: %w", status.ErrIllegalArgument)

	// ErrBadTour is returned when a tour to improve is not a closed
	// Hamiltonian cycle over the graph's vertices.
	ErrBadTour = fmt.Errorf("tour: not a closed tour over all vertices: %w", status.ErrIllegalArgument)

	// ErrTooManyVertices is returned when an exact solver's vertex bound
	// is exceeded.
	ErrTooManyVertices = fmt.Errorf("tour: vertex count exceeds exact-solver bound: %w", status.ErrIllegalArgument)
)

// Tour is a closed walk visiting every vertex exactly once.
type Tour struct {
	vertices []int64 // closed: n+1 entries, first == last (empty when n == 0)
	weight   float64
}

// Weight returns the total edge weight of the cycle.
func (t *Tour) Weight() float64 { return t.weight }

// Len returns the number of distinct vertices on the tour.
func (t *Tour) Len() int {
	if len(t.vertices) == 0 {
		return 0
	}

	return len(t.vertices) - 1
}

// VertexList returns a copy of the closed vertex sequence.
func (t *Tour) VertexList() []int64 {
	out := make([]int64, len(t.vertices))
	copy(out, t.vertices)

	return out
}

// Vertices iterates the closed vertex sequence.
func (t *Tour) Vertices() iterate.Iterator[int64] { return iterate.FromSlice(t.vertices) }

// distances is a dense symmetric weight matrix over an id index.
type distances struct {
	// ids is ascending; w holds +Inf where no edge exists.
	ids   []int64
	index map[int64]int
	w     [][]float64
}

// newDistances folds the graph into a dense matrix, keeping the cheapest
// parallel edge per pair. Complexity: O(V^2 + E).
func newDistances(g core.Graph) (*distances, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}
	ids, err := iterate.Collect(g.Vertices())
	if err != nil {
		return nil, err
	}
	d := &distances{ids: ids, index: make(map[int64]int, len(ids))}
	for i, v := range ids {
		d.index[v] = i
	}
	d.w = make([][]float64, len(ids))
	for i := range d.w {
		d.w[i] = make([]float64, len(ids))
		for j := range d.w[i] {
			if i != j {
				d.w[i][j] = math.Inf(1)
			}
		}
	}

	eit := g.Edges()
	for eit.HasNext() {
		e, err := eit.Next()
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
		wt, err := g.EdgeWeight(e)
		if err != nil {
			return nil, err
		}
		i, j := d.index[u], d.index[v]
		if wt < d.w[i][j] {
			d.w[i][j] = wt
			d.w[j][i] = wt
		}
	}

	return d, nil
}

// requireComplete fails unless every off-diagonal distance is finite.
func (d *distances) requireComplete() error {
	for i := range d.w {
		for j := range d.w[i] {
			if i != j && math.IsInf(d.w[i][j], 1) {
				return ErrIncompleteGraph
			}
		}
	}

	return nil
}

// closeTour turns an index permutation into a Tour, summing cycle weight.
func (d *distances) closeTour(perm []int) *Tour {
	n := len(perm)
	if n == 0 {
		return &Tour{}
	}
	vs := make([]int64, n+1)
	for i, idx := range perm {
		vs[i] = d.ids[idx]
	}
	vs[n] = vs[0]
	weight := 0.0
	if n > 1 {
		for i := 0; i < n; i++ {
			weight += d.w[perm[i]][perm[(i+1)%n]]
		}
	}

	return &Tour{vertices: vs, weight: weight}
}
