package connectivity

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/mst"
)

// LabelPropagation clusters an undirected graph by iteratively adopting
// the most frequent label among each vertex's neighbors until labels
// stabilize. The visit order is reshuffled by the seeded generator each
// round, so results are deterministic for a given seed.
// Complexity: O(rounds * (V + E)).
func LabelPropagation(g core.Graph, seed int64) (*Components, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}
	adj, vertices, err := undirectedAdjacency(g)
	if err != nil {
		return nil, err
	}

	labels := make(map[int64]int64, len(vertices))
	for _, v := range vertices {
		labels[v] = v
	}
	rng := rand.New(rand.NewSource(seed))
	order := append([]int64(nil), vertices...)

	// Cap the rounds; propagation on pathological graphs can oscillate.
	for round := 0; round < len(vertices)+1; round++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		changed := false
		for _, v := range order {
			if len(adj[v]) == 0 {
				continue
			}
			counts := make(map[int64]int)
			for _, n := range adj[v] {
				counts[labels[n]]++
			}
			best, bestCnt := labels[v], 0
			for label, cnt := range counts {
				if cnt > bestCnt || (cnt == bestCnt && label < best) {
					best, bestCnt = label, cnt
				}
			}
			if best != labels[v] {
				labels[v] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	groups := make(map[int64][]int64)
	for _, v := range vertices {
		groups[labels[v]] = append(groups[labels[v]], v)
	}
	raw := make([][]int64, 0, len(groups))
	for _, members := range groups {
		raw = append(raw, members)
	}

	return newComponents(raw), nil
}

// KSpanningTree clusters an undirected graph into k groups by running
// Kruskal and dropping the k-1 heaviest accepted edges, leaving k trees.
// Complexity: O(E log E).
func KSpanningTree(g core.Graph, k int) (*Components, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}
	if k < 1 || k > max(1, g.VertexCount()) {
		return nil, fmt.Errorf("k=%d with %d vertices: %w", k, g.VertexCount(), ErrInvalidK)
	}

	tree, err := mst.Kruskal(g)
	if err != nil {
		return nil, err
	}

	// Order the forest's edges by descending weight; ties toward the
	// higher edge id so the drop set is deterministic.
	type weightedEdge struct {
		id     int64
		weight float64
	}
	edges := make([]weightedEdge, 0, tree.Len())
	for _, e := range tree.EdgeList() {
		w, err := g.EdgeWeight(e)
		if err != nil {
			return nil, err
		}
		edges = append(edges, weightedEdge{id: e, weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].weight != edges[j].weight {
			return edges[i].weight > edges[j].weight
		}

		return edges[i].id > edges[j].id
	})

	// The forest already has VertexCount - Len components; drop enough of
	// the heaviest edges to reach k.
	drop := k - (g.VertexCount() - tree.Len())
	if drop < 0 {
		drop = 0
	}
	if drop > len(edges) {
		drop = len(edges)
	}
	dropped := make(map[int64]struct{}, drop)
	for _, e := range edges[:drop] {
		dropped[e.id] = struct{}{}
	}

	uf := mst.NewUnionFind()
	vit := g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		uf.Add(v)
	}
	for _, e := range tree.EdgeList() {
		if _, skip := dropped[e]; skip {
			continue
		}
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, err
		}
		uf.Union(u, v)
	}

	groups := make(map[int64][]int64)
	vit = g.Vertices()
	for vit.HasNext() {
		v, err := vit.Next()
		if err != nil {
			return nil, err
		}
		groups[uf.Find(v)] = append(groups[uf.Find(v)], v)
	}
	raw := make([][]int64, 0, len(groups))
	for _, members := range groups {
		raw = append(raw, members)
	}

	return newComponents(raw), nil
}
