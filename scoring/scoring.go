// Package scoring computes per-vertex importance scores: PageRank,
// closeness and harmonic centrality, and Brandes betweenness.
//
// All scores come back as a vertex-to-value map. Distances are hop counts;
// direction is respected on directed graphs.
package scoring

import (
	"fmt"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for scoring parameters.
var (
	// ErrBadDamping is returned when the PageRank damping factor leaves
	// (0, 1).
	ErrBadDamping = fmt.Errorf("scoring: damping factor must be in (0, 1): %w", status.ErrIllegalArgument)

	// ErrBadIterations is returned when the iteration cap is not positive.
	ErrBadIterations = fmt.Errorf("scoring: max iterations must be positive: %w", status.ErrIllegalArgument)
)

// PageRankOption configures PageRank.
type PageRankOption func(*pagerankOptions)

type pagerankOptions struct {
	damping   float64
	maxIter   int
	tolerance float64
}

// WithDamping sets the damping factor (default 0.85).
func WithDamping(d float64) PageRankOption {
	return func(o *pagerankOptions) { o.damping = d }
}

// WithMaxIterations caps the power iterations (default 100).
func WithMaxIterations(n int) PageRankOption {
	return func(o *pagerankOptions) { o.maxIter = n }
}

// WithTolerance sets the L1 convergence threshold (default 1e-7).
func WithTolerance(tol float64) PageRankOption {
	return func(o *pagerankOptions) { o.tolerance = tol }
}

// successorLists returns out-neighbors (symmetric when undirected),
// keeping parallel edges as repeated entries. Self-loops count.
func successorLists(g core.Graph) (map[int64][]int64, []int64, error) {
	succ := make(map[int64][]int64)
	var vertices []int64
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, nil, err
		}
		vertices = append(vertices, v)
	}
	directed := g.Type().Directed
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
		succ[u] = append(succ[u], v)
		if !directed && u != v {
			succ[v] = append(succ[v], u)
		}
	}

	return succ, vertices, nil
}

// PageRank runs power iteration with uniform teleportation. Dangling mass
// is redistributed uniformly each round. Scores sum to 1.
// Complexity: O(iterations * (V + E)).
func PageRank(g core.Graph, opts ...PageRankOption) (map[int64]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := pagerankOptions{damping: 0.85, maxIter: 100, tolerance: 1e-7}
	for _, opt := range opts {
		opt(&o)
	}
	if o.damping <= 0 || o.damping >= 1 {
		return nil, ErrBadDamping
	}
	if o.maxIter < 1 {
		return nil, ErrBadIterations
	}

	succ, vertices, err := successorLists(g)
	if err != nil {
		return nil, err
	}
	n := len(vertices)
	if n == 0 {
		return map[int64]float64{}, nil
	}

	rank := make(map[int64]float64, n)
	for _, v := range vertices {
		rank[v] = 1.0 / float64(n)
	}

	for iter := 0; iter < o.maxIter; iter++ {
		next := make(map[int64]float64, n)
		dangling := 0.0
		for _, v := range vertices {
			out := succ[v]
			if len(out) == 0 {
				dangling += rank[v]

				continue
			}
			share := rank[v] / float64(len(out))
			for _, w := range out {
				next[w] += share
			}
		}

		base := (1-o.damping)/float64(n) + o.damping*dangling/float64(n)
		delta := 0.0
		for _, v := range vertices {
			nv := base + o.damping*next[v]
			d := nv - rank[v]
			if d < 0 {
				d = -d
			}
			delta += d
			next[v] = nv
		}
		rank = next
		if delta < o.tolerance {
			break
		}
	}

	return rank, nil
}

// hopDistances runs BFS over the successor lists.
func hopDistances(succ map[int64][]int64, src int64) map[int64]int {
	dist := map[int64]int{src: 0}
	queue := []int64{src}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, n := range succ[u] {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[u] + 1
				queue = append(queue, n)
			}
		}
	}

	return dist
}

// ClosenessCentrality scores each vertex by (reachable-1) / total distance
// to reachable vertices, scaled by the reachable fraction on disconnected
// graphs (Wasserman-Faust). Isolated vertices score 0.
// Complexity: O(V * (V + E)).
func ClosenessCentrality(g core.Graph) (map[int64]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	succ, vertices, err := successorLists(g)
	if err != nil {
		return nil, err
	}
	n := len(vertices)

	scores := make(map[int64]float64, n)
	for _, v := range vertices {
		dist := hopDistances(succ, v)
		total, reach := 0, 0
		for _, d := range dist {
			if d > 0 {
				total += d
				reach++
			}
		}
		if total == 0 {
			scores[v] = 0

			continue
		}
		frac := 1.0
		if n > 1 {
			frac = float64(reach) / float64(n-1)
		}
		scores[v] = frac * float64(reach) / float64(total)
	}

	return scores, nil
}

// HarmonicCentrality scores each vertex by the sum of reciprocal distances
// to every other vertex; unreachable pairs contribute 0.
// Complexity: O(V * (V + E)).
func HarmonicCentrality(g core.Graph) (map[int64]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	succ, vertices, err := successorLists(g)
	if err != nil {
		return nil, err
	}

	scores := make(map[int64]float64, len(vertices))
	for _, v := range vertices {
		dist := hopDistances(succ, v)
		sum := 0.0
		for _, d := range dist {
			if d > 0 {
				sum += 1.0 / float64(d)
			}
		}
		scores[v] = sum
	}

	return scores, nil
}

// BetweennessCentrality computes exact shortest-path betweenness with
// Brandes' accumulation. Undirected scores are halved so each unordered
// pair counts once. Complexity: O(V * E).
func BetweennessCentrality(g core.Graph) (map[int64]float64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	succ, vertices, err := successorLists(g)
	if err != nil {
		return nil, err
	}

	scores := make(map[int64]float64, len(vertices))
	for _, v := range vertices {
		scores[v] = 0
	}

	for _, s := range vertices {
		// BFS phase: shortest-path counts and predecessor lists.
		dist := map[int64]int{s: 0}
		sigma := map[int64]float64{s: 1}
		preds := make(map[int64][]int64)
		var order []int64
		queue := []int64{s}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			order = append(order, u)
			for _, w := range succ[u] {
				if _, seen := dist[w]; !seen {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[u]+1 {
					sigma[w] += sigma[u]
					preds[w] = append(preds[w], u)
				}
			}
		}

		// Accumulation phase in reverse BFS order.
		delta := make(map[int64]float64)
		for i := len(order) - 1; i > 0; i-- {
			w := order[i]
			for _, u := range preds[w] {
				delta[u] += sigma[u] / sigma[w] * (1 + delta[w])
			}
			scores[w] += delta[w]
		}
	}

	if !g.Type().Directed {
		for v := range scores {
			scores[v] /= 2
		}
	}

	return scores, nil
}
