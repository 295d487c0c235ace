package tour

import (
	"context"
	"math"

	"github.com/korifey/grapht/core"
)

// maxExactVertices bounds the Held-Karp state space (2^n * n entries).
const maxExactVertices = 20

// Option configures the exact solver.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext makes the solver honor cancellation between DP layers.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// HeldKarp solves the instance exactly with the Held-Karp dynamic
// program. Graphs above the vertex bound are rejected.
// Complexity: O(2^V * V^2) time, O(2^V * V) space.
func HeldKarp(g core.Graph, opts ...Option) (*Tour, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	d, err := newDistances(g)
	if err != nil {
		return nil, err
	}
	if err := d.requireComplete(); err != nil {
		return nil, err
	}
	n := len(d.ids)
	if n > maxExactVertices {
		return nil, ErrTooManyVertices
	}
	if n < 3 {
		return d.closeTour(identityPerm(n)), nil
	}

	// dp[mask][j]: cheapest path over the vertex set mask, starting at 0
	// and ending at j. Vertex 0 is pinned as the tour anchor.
	size := 1 << n
	dp := make([][]float64, size)
	parent := make([][]int, size)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask < size; mask++ {
		if mask&1 == 0 {
			continue
		}
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 || math.IsInf(dp[mask][j], 1) {
				continue
			}
			for k := 1; k < n; k++ {
				if mask&(1<<k) != 0 {
					continue
				}
				next := mask | 1<<k
				cand := dp[mask][j] + d.w[j][k]
				if cand < dp[next][k] {
					dp[next][k] = cand
					parent[next][k] = j
				}
			}
		}
	}

	full := size - 1
	best, bestEnd := math.Inf(1), -1
	for j := 1; j < n; j++ {
		cand := dp[full][j] + d.w[j][0]
		if cand < best {
			best = cand
			bestEnd = j
		}
	}

	perm := make([]int, n)
	mask, j := full, bestEnd
	for i := n - 1; i > 0; i-- {
		perm[i] = j
		pj := parent[mask][j]
		mask &^= 1 << j
		j = pj
	}

	return d.closeTour(perm), nil
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}
