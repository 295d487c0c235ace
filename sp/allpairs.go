// All-pairs shortest paths: Floyd-Warshall for dense/negative-weight graphs
// and parallel per-source Dijkstra for non-negative ones.
package sp

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/korifey/grapht/core"
)

// AllPairs is the lazy pair accessor produced by the all-pairs algorithms.
// Paths are reconstructed on demand from per-source trees.
type AllPairs struct {
	trees map[int64]*Tree
}

// PathBetween returns the shortest path from source to target, ErrNoPath if
// target is unreachable, ErrVertexNotFound for unknown endpoints.
func (ap *AllPairs) PathBetween(source, target int64) (*Path, error) {
	t, ok := ap.trees[source]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return t.PathTo(target)
}

// DistanceBetween returns the shortest distance from source to target.
func (ap *AllPairs) DistanceBetween(source, target int64) (float64, error) {
	t, ok := ap.trees[source]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return t.DistanceTo(target)
}

// TreeFrom returns the single-source tree rooted at source.
func (ap *AllPairs) TreeFrom(source int64) (*Tree, error) {
	t, ok := ap.trees[source]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return t, nil
}

// DijkstraAllPairs computes one shortest-path tree per vertex, fanning the
// sources across GOMAXPROCS workers. The input graph is read-only during the
// computation, which is the only concurrent access the engine model allows.
// Fails with ErrNegativeWeight on any negative edge.
// Complexity: O(V * (V + E) log V) work in total.
func DijkstraAllPairs(g core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	_, minWeight, err := collectArcs(g)
	if err != nil {
		return nil, err
	}
	if minWeight < 0 {
		return nil, ErrNegativeWeight
	}
	sources, err := collectVertexIDs(g)
	if err != nil {
		return nil, err
	}

	trees := make([]*Tree, len(sources))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			t, err := DijkstraFrom(g, src)
			if err != nil {
				return err
			}
			trees[i] = t

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ap := &AllPairs{trees: make(map[int64]*Tree, len(sources))}
	for i, src := range sources {
		ap.trees[src] = trees[i]
	}

	return ap, nil
}

// FloydWarshall computes all-pairs shortest paths in one cubic pass,
// tolerating negative edge weights. Any negative cycle fails with
// ErrNegativeCycle. Complexity: O(V^3) time, O(V^2) space.
func FloydWarshall(g core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	vertices, err := collectVertexIDs(g)
	if err != nil {
		return nil, err
	}
	arcs, _, err := collectArcs(g)
	if err != nil {
		return nil, err
	}

	n := len(vertices)
	idx := make(map[int64]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	const unreachable = -1
	dist := make([][]float64, n)
	hasDist := make([][]bool, n)
	predV := make([][]int64, n)
	predE := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		hasDist[i] = make([]bool, n)
		predV[i] = make([]int64, n)
		predE[i] = make([]int64, n)
		dist[i][i] = 0
		hasDist[i][i] = true
		for j := range predV[i] {
			predV[i][j] = unreachable
			predE[i][j] = unreachable
		}
	}
	for _, a := range arcs {
		i, j := idx[a.from], idx[a.to]
		if i == j {
			// A negative self-loop is already a negative cycle.
			if a.weight < 0 {
				return nil, ErrNegativeCycle
			}

			continue
		}
		if !hasDist[i][j] || a.weight < dist[i][j] {
			dist[i][j] = a.weight
			hasDist[i][j] = true
			predV[i][j] = a.from
			predE[i][j] = a.edge
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !hasDist[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if !hasDist[k][j] {
					continue
				}
				alt := dist[i][k] + dist[k][j]
				if !hasDist[i][j] || alt < dist[i][j] {
					dist[i][j] = alt
					hasDist[i][j] = true
					predV[i][j] = predV[k][j]
					predE[i][j] = predE[k][j]
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, ErrNegativeCycle
		}
	}

	// Project the matrices into one predecessor tree per source so path
	// reconstruction shares the Tree machinery.
	ap := &AllPairs{trees: make(map[int64]*Tree, n)}
	for i, src := range vertices {
		t := &Tree{
			source:     src,
			dist:       make(map[int64]float64),
			predEdge:   make(map[int64]int64),
			predVertex: make(map[int64]int64),
		}
		for j, dst := range vertices {
			if !hasDist[i][j] {
				continue
			}
			t.dist[dst] = dist[i][j]
			if i != j {
				t.predVertex[dst] = predV[i][j]
				t.predEdge[dst] = predE[i][j]
			}
		}
		ap.trees[src] = t
	}

	return ap, nil
}

// collectVertexIDs drains the vertex iterator into an ascending slice.
func collectVertexIDs(g core.Graph) ([]int64, error) {
	var out []int64
	it := g.Vertices()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
