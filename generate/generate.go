// Package generate builds classic graph topologies and random models
// through the public mutation contract of core.
//
// Every generator validates its parameters first and returns a freshly
// built graph whose vertex ids are 0..n-1 in creation order. Random
// models are deterministic for a fixed seed.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/status"
)

// Sentinel errors for generator parameters.
var (
	// ErrNegativeCount is returned when a vertex count is negative.
	ErrNegativeCount = fmt.Errorf("generate: vertex count must be non-negative: %w", status.ErrIllegalArgument)

	// ErrBadProbability is returned when an edge probability leaves [0, 1].
	ErrBadProbability = fmt.Errorf("generate: edge probability must be in [0, 1]: %w", status.ErrIllegalArgument)

	// ErrBadEdgeCount is returned when a requested edge count is negative
	// or exceeds the number of available vertex pairs.
	ErrBadEdgeCount = fmt.Errorf("generate: unsatisfiable edge count: %w", status.ErrIllegalArgument)

	// ErrBadAttachment is returned when Barabasi-Albert parameters are
	// inconsistent (need 1 <= m <= m0 <= n).
	ErrBadAttachment = fmt.Errorf("generate: need 1 <= m <= m0 <= n: %w", status.ErrIllegalArgument)
)

// addVertices creates n vertices and returns their ids in creation order.
func addVertices(g *core.Store, n int) ([]int64, error) {
	ids := make([]int64, n)
	for i := range ids {
		v, err := g.AddVertex()
		if err != nil {
			return nil, err
		}
		ids[i] = v
	}

	return ids, nil
}

// Empty builds a graph with n vertices and no edges.
func Empty(n int, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	if _, err := addVertices(g, n); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds K_n: every distinct pair connected once (both ordered
// pairs when directed). Complexity: O(n^2).
func Complete(n int, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	ids, err := addVertices(g, n)
	if err != nil {
		return nil, err
	}
	directed := g.Type().Directed
	for i := range ids {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, err
			}
			if directed {
				if _, err := g.AddEdge(ids[j], ids[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Ring builds C_n: vertex i connected to (i+1) mod n. A directed graph
// gets a single forward cycle. Rings need at least three vertices; n of
// 0 yields an empty graph.
func Ring(n int, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	ids, err := addVertices(g, n)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return g, nil
	}
	for i := range ids {
		if _, err := g.AddEdge(ids[i], ids[(i+1)%n]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Star builds K_{1,n-1}: vertex 0 in the center, connected to every other
// vertex. Directed edges point outward from the center.
func Star(n int, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	ids, err := addVertices(g, n)
	if err != nil {
		return nil, err
	}
	for _, leaf := range ids[min(n, 1):] {
		if _, err := g.AddEdge(ids[0], leaf); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// BipartiteComplete builds K_{a,b}: vertices 0..a-1 in the first
// partition, a..a+b-1 in the second, every cross pair connected.
// Directed edges run from the first partition to the second.
func BipartiteComplete(a, b int, opts ...core.Option) (*core.Store, error) {
	if a < 0 || b < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	ids, err := addVertices(g, a+b)
	if err != nil {
		return nil, err
	}
	for _, u := range ids[:a] {
		for _, v := range ids[a:] {
			if _, err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// pairCount returns the number of candidate vertex pairs for a simple
// graph on n vertices.
func pairCount(n int, directed bool) int {
	c := n * (n - 1) / 2
	if directed {
		c *= 2
	}

	return c
}

// kthPair maps an index in [0, pairCount) to a distinct ordered pair.
func kthPair(k, n int, directed bool) (int, int) {
	if directed {
		u := k / (n - 1)
		v := k % (n - 1)
		if v >= u {
			v++
		}

		return u, v
	}
	// Row-major walk of the upper triangle.
	u := 0
	row := n - 1
	for k >= row {
		k -= row
		u++
		row--
	}

	return u, u + 1 + k
}

// GnpRandom builds an Erdos-Renyi G(n, p) graph: each candidate pair is
// drawn independently with probability p. Complexity: O(n^2).
func GnpRandom(n int, p float64, seed int64, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}
	g := core.NewGraph(opts...)
	ids, err := addVertices(g, n)
	if err != nil {
		return nil, err
	}
	directed := g.Type().Directed
	rng := rand.New(rand.NewSource(seed))
	total := pairCount(n, directed)
	for k := 0; k < total; k++ {
		if rng.Float64() >= p {
			continue
		}
		u, v := kthPair(k, n, directed)
		if _, err := g.AddEdge(ids[u], ids[v]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GnmRandom builds a uniform G(n, m) graph: exactly m distinct pairs
// chosen without replacement via a partial Fisher-Yates shuffle over the
// pair index space. Complexity: O(n^2) space for the index permutation.
func GnmRandom(n, m int, seed int64, opts ...core.Option) (*core.Store, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	g := core.NewGraph(opts...)
	total := pairCount(n, g.Type().Directed)
	if m < 0 || m > total {
		return nil, ErrBadEdgeCount
	}
	ids, err := addVertices(g, n)
	if err != nil {
		return nil, err
	}
	perm := make([]int, total)
	for i := range perm {
		perm[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	directed := g.Type().Directed
	for i := 0; i < m; i++ {
		j := i + rng.Intn(total-i)
		perm[i], perm[j] = perm[j], perm[i]
		u, v := kthPair(perm[i], n, directed)
		if _, err := g.AddEdge(ids[u], ids[v]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// BarabasiAlbert builds a preferential-attachment graph: a complete seed
// on m0 vertices, then each new vertex attaches to m distinct existing
// vertices drawn proportionally to their current degree.
// Complexity: O(n * m) expected.
func BarabasiAlbert(m0, m, n int, seed int64, opts ...core.Option) (*core.Store, error) {
	if m < 1 || m > m0 || m0 > n {
		return nil, ErrBadAttachment
	}
	g, err := Complete(m0, opts...)
	if err != nil {
		return nil, err
	}
	ids, err := addVertices(g, n-m0)
	if err != nil {
		return nil, err
	}

	// One entry per edge endpoint: sampling uniformly from this list is
	// sampling vertices proportionally to degree.
	endpoints := make([]int64, 0, 2*m*n)
	for i := int64(0); i < int64(m0); i++ {
		for j := i + 1; j < int64(m0); j++ {
			endpoints = append(endpoints, i, j)
		}
	}
	if len(endpoints) == 0 {
		// Single-vertex seed has no edges; sample it uniformly instead.
		endpoints = append(endpoints, 0)
	}

	rng := rand.New(rand.NewSource(seed))
	picked := make(map[int64]bool, m)
	targets := make([]int64, 0, m)
	for _, v := range ids {
		for k := range picked {
			delete(picked, k)
		}
		targets = targets[:0]
		for len(targets) < m {
			t := endpoints[rng.Intn(len(endpoints))]
			if !picked[t] {
				picked[t] = true
				targets = append(targets, t)
			}
		}
		for _, t := range targets {
			if _, err := g.AddEdge(v, t); err != nil {
				return nil, err
			}
			endpoints = append(endpoints, v, t)
		}
	}

	return g, nil
}
