package tour

import (
	"math/rand"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/mst"
)

// RandomTour returns a uniformly random closed tour, deterministic for a
// fixed seed. Needs a complete graph so every permutation is a cycle.
func RandomTour(g core.Graph, seed int64) (*Tour, error) {
	d, err := newDistances(g)
	if err != nil {
		return nil, err
	}
	if err := d.requireComplete(); err != nil {
		return nil, err
	}
	perm := rand.New(rand.NewSource(seed)).Perm(len(d.ids))

	return d.closeTour(perm), nil
}

// NearestNeighbor grows a tour from the lowest-id vertex, always moving
// to the closest unvisited vertex (lowest id on ties).
// Complexity: O(V^2).
func NearestNeighbor(g core.Graph) (*Tour, error) {
	d, err := newDistances(g)
	if err != nil {
		return nil, err
	}
	if err := d.requireComplete(); err != nil {
		return nil, err
	}
	n := len(d.ids)
	if n == 0 {
		return &Tour{}, nil
	}

	visited := make([]bool, n)
	perm := make([]int, 1, n)
	visited[0] = true
	for len(perm) < n {
		cur := perm[len(perm)-1]
		best := -1
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best < 0 || d.w[cur][j] < d.w[cur][best] {
				best = j
			}
		}
		visited[best] = true
		perm = append(perm, best)
	}

	return d.closeTour(perm), nil
}

// GreedyEdge accepts pairwise distances in ascending order, keeping a
// pair only while every vertex stays at degree two or less and no
// premature subcycle forms, then closes the remaining Hamiltonian path.
// Complexity: O(V^2 log V).
func GreedyEdge(g core.Graph) (*Tour, error) {
	d, err := newDistances(g)
	if err != nil {
		return nil, err
	}
	if err := d.requireComplete(); err != nil {
		return nil, err
	}
	n := len(d.ids)
	if n < 2 {
		return d.closeTour(make([]int, n)), nil
	}

	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return d.w[pairs[a].i][pairs[a].j] < d.w[pairs[b].i][pairs[b].j]
	})

	deg := make([]int, n)
	next := make(map[int][]int, n)
	uf := mst.NewUnionFind()
	taken := 0
	for _, p := range pairs {
		if taken == n-1 {
			break
		}
		if deg[p.i] == 2 || deg[p.j] == 2 {
			continue
		}
		if !uf.Union(int64(p.i), int64(p.j)) {
			continue
		}
		deg[p.i]++
		deg[p.j]++
		next[p.i] = append(next[p.i], p.j)
		next[p.j] = append(next[p.j], p.i)
		taken++
	}

	// The accepted pairs form one Hamiltonian path; walk it from one of
	// the two degree-one endpoints and close the cycle.
	start := 0
	for v := 0; v < n; v++ {
		if deg[v] == 1 {
			start = v

			break
		}
	}
	perm := make([]int, 0, n)
	prev := -1
	cur := start
	for len(perm) < n {
		perm = append(perm, cur)
		advanced := false
		for _, nb := range next[cur] {
			if nb != prev {
				prev, cur = cur, nb
				advanced = true

				break
			}
		}
		if !advanced {
			break
		}
	}

	return d.closeTour(perm), nil
}
