// Package vertexcover finds vertex covers: a greedy degree heuristic,
// the edge-based 2-approximation, and an exact branch-and-bound solver.
//
// Vertices carry unit weight unless a weight table is supplied;
// self-loops force their vertex into every cover.
package vertexcover

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

// ErrNegativeWeight is returned when a supplied vertex weight is negative.
var ErrNegativeWeight = fmt.Errorf("vertexcover: vertex weights must be non-negative: %w", status.ErrIllegalArgument)

// Option configures a solver.
type Option func(*options)

type options struct {
	ctx     context.Context
	weights map[int64]float64
}

// WithContext makes the exact solver honor cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithWeights assigns per-vertex costs; absent vertices cost 1.
func WithWeights(w map[int64]float64) Option {
	return func(o *options) { o.weights = w }
}

func resolve(opts []Option) (options, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	for _, w := range o.weights {
		if w < 0 {
			return o, ErrNegativeWeight
		}
	}

	return o, nil
}

func (o options) weightOf(v int64) float64 {
	if w, ok := o.weights[v]; ok {
		return w
	}

	return 1
}

// VertexCover is a set of vertices touching every edge.
type VertexCover struct {
	members []int64 // ascending
	set     map[int64]bool
	weight  float64
}

// Weight returns the total weight of the cover.
func (c *VertexCover) Weight() float64 { return c.weight }

// Len returns the number of vertices in the cover.
func (c *VertexCover) Len() int { return len(c.members) }

// Contains reports membership.
func (c *VertexCover) Contains(v int64) bool { return c.set[v] }

// VertexList returns the cover in ascending id order.
func (c *VertexCover) VertexList() []int64 {
	out := make([]int64, len(c.members))
	copy(out, c.members)

	return out
}

// Vertices iterates the cover in ascending id order.
func (c *VertexCover) Vertices() iterate.Iterator[int64] { return iterate.FromSlice(c.members) }

func newCover(set map[int64]bool, o options) *VertexCover {
	members := make([]int64, 0, len(set))
	weight := 0.0
	for v := range set {
		members = append(members, v)
		weight += o.weightOf(v)
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	return &VertexCover{members: members, set: set, weight: weight}
}

// coverEdges lists distinct unordered endpoint pairs in edge-id order,
// loops first as (v, v).
func coverEdges(g core.Graph) ([][2]int64, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	var pairs [][2]int64
	seen := make(map[[2]int64]bool)
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
		if v < u {
			u, v = v, u
		}
		key := [2]int64{u, v}
		if !seen[key] {
			seen[key] = true
			pairs = append(pairs, key)
		}
	}

	return pairs, nil
}

// Greedy repeatedly adds the vertex covering the most remaining edges
// (highest degree-to-weight ratio, lowest id on ties).
// Complexity: O(V * E).
func Greedy(g core.Graph, opts ...Option) (*VertexCover, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	pairs, err := coverEdges(g)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool)
	covered := make([]bool, len(pairs))
	remaining := len(pairs)
	for remaining > 0 {
		gain := make(map[int64]int)
		for i, p := range pairs {
			if covered[i] {
				continue
			}
			gain[p[0]]++
			if p[1] != p[0] {
				gain[p[1]]++
			}
		}
		best, bestScore := int64(0), math.Inf(-1)
		for v, n := range gain {
			score := float64(n)
			if w := o.weightOf(v); w > 0 {
				score = float64(n) / w
			} else {
				score = math.Inf(1)
			}
			if score > bestScore || (score == bestScore && v < best) {
				best, bestScore = v, score
			}
		}
		set[best] = true
		for i, p := range pairs {
			if !covered[i] && (p[0] == best || p[1] == best) {
				covered[i] = true
				remaining--
			}
		}
	}

	return newCover(set, o), nil
}

// EdgeBasedTwoApprox scans edges in id order and takes both endpoints of
// every uncovered edge. The result is at most twice the minimum
// cardinality cover. Complexity: O(E).
func EdgeBasedTwoApprox(g core.Graph, opts ...Option) (*VertexCover, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	pairs, err := coverEdges(g)
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool)
	for _, p := range pairs {
		if !set[p[0]] && !set[p[1]] {
			set[p[0]] = true
			set[p[1]] = true
		}
	}

	return newCover(set, o), nil
}

// Exact finds a minimum-weight cover by branching on an uncovered edge:
// either endpoint must join the cover. Branches whose weight reaches the
// incumbent are pruned. Complexity: O(2^V) worst case.
func Exact(g core.Graph, opts ...Option) (*VertexCover, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	pairs, err := coverEdges(g)
	if err != nil {
		return nil, err
	}

	// Seed with the 2-approximation as the incumbent upper bound.
	approx, err := EdgeBasedTwoApprox(g, opts...)
	if err != nil {
		return nil, err
	}
	bestSet := approx.set
	bestWeight := approx.weight

	cur := make(map[int64]bool)
	var curWeight float64
	var branch func() error
	branch = func() error {
		if err := o.ctx.Err(); err != nil {
			return err
		}
		if curWeight >= bestWeight {
			return nil
		}
		var open *[2]int64
		for i := range pairs {
			if !cur[pairs[i][0]] && !cur[pairs[i][1]] {
				open = &pairs[i]

				break
			}
		}
		if open == nil {
			bestWeight = curWeight
			bestSet = make(map[int64]bool, len(cur))
			for v := range cur {
				bestSet[v] = true
			}

			return nil
		}
		for _, v := range []int64{open[0], open[1]} {
			if cur[v] {
				continue
			}
			cur[v] = true
			curWeight += o.weightOf(v)
			if err := branch(); err != nil {
				return err
			}
			delete(cur, v)
			curWeight -= o.weightOf(v)
		}

		return nil
	}
	if err := branch(); err != nil {
		return nil, err
	}

	return newCover(bestSet, o), nil
}
