package tour

import (
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/mst"
)

const improveEpsilon = 1e-9

// TwoOptImprove runs first-improvement 2-opt on an existing closed tour:
// while some segment reversal shortens the cycle, apply the first one
// found and rescan. The result never costs more than the input.
// Complexity: O(passes * V^2).
func TwoOptImprove(g core.Graph, t *Tour) (*Tour, error) {
	d, err := newDistances(g)
	if err != nil {
		return nil, err
	}
	if err := d.requireComplete(); err != nil {
		return nil, err
	}
	perm, err := d.permOf(t)
	if err != nil {
		return nil, err
	}
	n := len(perm)
	if n < 4 {
		return d.closeTour(perm), nil
	}

	improved := true
	for improved {
		improved = false
		for i := 1; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				a, b := perm[i-1], perm[i]
				c, e := perm[k], perm[(k+1)%n]
				delta := d.w[a][c] + d.w[b][e] - d.w[a][b] - d.w[c][e]
				if delta < -improveEpsilon {
					for l, r := i, k; l < r; l, r = l+1, r-1 {
						perm[l], perm[r] = perm[r], perm[l]
					}
					improved = true

					break
				}
			}
		}
	}

	return d.closeTour(perm), nil
}

// permOf validates a closed tour over exactly this graph's vertices and
// translates it to matrix indices.
func (d *distances) permOf(t *Tour) ([]int, error) {
	if t == nil || t.Len() != len(d.ids) {
		return nil, ErrBadTour
	}
	n := t.Len()
	if n == 0 {
		return nil, nil
	}
	if t.vertices[0] != t.vertices[n] {
		return nil, ErrBadTour
	}
	perm := make([]int, n)
	seen := make([]bool, n)
	for i, v := range t.vertices[:n] {
		idx, ok := d.index[v]
		if !ok || seen[idx] {
			return nil, ErrBadTour
		}
		seen[idx] = true
		perm[i] = idx
	}

	return perm, nil
}

// MetricTwoApprox builds a tour by shortcutting a preorder walk of a
// minimum spanning tree. On metric instances the result is at most twice
// the optimum. Complexity: O(V^2) dominated by the distance matrix.
func MetricTwoApprox(g core.Graph) (*Tour, error) {
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

	tree, err := mst.Kruskal(g)
	if err != nil {
		return nil, err
	}
	adj := make(map[int][]int, n)
	for _, e := range tree.EdgeList() {
		u, err := g.EdgeSource(e)
		if err != nil {
			return nil, err
		}
		v, err := g.EdgeTarget(e)
		if err != nil {
			return nil, err
		}
		i, j := d.index[u], d.index[v]
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}
	for _, nbs := range adj {
		sort.Ints(nbs)
	}

	// Preorder DFS from index 0 with an explicit stack.
	perm := make([]int, 0, n)
	visited := make([]bool, n)
	stack := []int{0}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		perm = append(perm, v)
		nbs := adj[v]
		for i := len(nbs) - 1; i >= 0; i-- {
			if !visited[nbs[i]] {
				stack = append(stack, nbs[i])
			}
		}
	}

	return d.closeTour(perm), nil
}
