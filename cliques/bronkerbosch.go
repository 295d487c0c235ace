// Package cliques enumerates maximal cliques of an undirected graph with
// the Bron-Kerbosch algorithm.
//
// Enumeration is lazy: BronKerbosch returns an iterator and the search
// advances only as cliques are pulled, holding an explicit frame stack
// instead of recursing. Pivoting prunes the branch fan-out; the optional
// degeneracy preordering bounds the stack depth on sparse graphs.
// WithTimeout budgets the whole enumeration, surfacing ErrTimeout from the
// iterator once the deadline passes.
//
// Cliques are emitted with ascending member ids; the emission order follows
// the search and is deterministic for a given graph.
package cliques

import (
	"fmt"
	"sort"
	"time"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
	"github.com/korifey/grapht/traverse"
)

// Sentinel errors for clique enumeration.
var (
	// ErrDirectedGraph is returned when the input graph is directed.
	ErrDirectedGraph = fmt.Errorf("cliques: clique enumeration requires an undirected graph: %w", status.ErrUnsupportedOperation)

	// ErrTimeout is surfaced by the iterator when the WithTimeout budget
	// is exhausted mid-search.
	ErrTimeout = fmt.Errorf("cliques: enumeration timed out: %w", status.ErrTimeout)
)

// Option configures the enumeration.
type Option func(*options)

type options struct {
	timeout    time.Duration
	degeneracy bool
	now        func() time.Time
}

// WithTimeout bounds the total search time. A zero or negative duration
// means no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithDegeneracyOrdering roots the search in degeneracy order, keeping the
// recursion width at the graph's degeneracy. Recommended for sparse graphs.
func WithDegeneracyOrdering() Option {
	return func(o *options) { o.degeneracy = true }
}

// frame is one suspended Bron-Kerbosch call: the growing clique r, the
// candidate set p, the exclusion set x, and the pivot-pruned expansion
// order.
type frame struct {
	r    []int64
	p, x map[int64]struct{}
	cand []int64
	i    int
	emit bool
}

// enumerator is the resumable search state.
type enumerator struct {
	adj      map[int64]map[int64]struct{}
	stack    []*frame
	roots    []int64 // degeneracy roots not yet expanded, nil without the option
	rootPos  int
	rank     map[int64]int // position in degeneracy order
	deadline time.Time
	now      func() time.Time
}

// BronKerbosch returns a lazy iterator over all maximal cliques of g.
// Complexity: O(3^(V/3)) worst case; with degeneracy ordering
// O(d * V * 3^(d/3)) for degeneracy d.
func BronKerbosch(g core.Graph, opts ...Option) (iterate.Iterator[[]int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.Type().Directed {
		return nil, ErrDirectedGraph
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	adj, vertices, err := neighborSets(g)
	if err != nil {
		return nil, err
	}

	en := &enumerator{adj: adj, now: o.now}
	if o.timeout > 0 {
		en.deadline = o.now().Add(o.timeout)
	}

	if o.degeneracy {
		it, err := traverse.DegeneracyOrdering(g)
		if err != nil {
			return nil, err
		}
		en.roots, err = iterate.Collect(it)
		if err != nil {
			return nil, err
		}
		en.rank = make(map[int64]int, len(en.roots))
		for i, v := range en.roots {
			en.rank[v] = i
		}
	} else {
		p := make(map[int64]struct{}, len(vertices))
		for _, v := range vertices {
			p[v] = struct{}{}
		}
		en.push(nil, p, make(map[int64]struct{}))
	}

	return iterate.FromFunc(en.produce), nil
}

func neighborSets(g core.Graph) (map[int64]map[int64]struct{}, []int64, error) {
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
		if u != v {
			adj[u][v] = struct{}{}
			adj[v][u] = struct{}{}
		}
	}

	return adj, vertices, nil
}

// push prepares a frame for (r, p, x): either a clique report when both
// sets are empty, or a pivot-pruned candidate list.
func (en *enumerator) push(r []int64, p, x map[int64]struct{}) {
	f := &frame{r: r, p: p, x: x}
	if len(p) == 0 {
		f.emit = len(x) == 0 && len(r) > 0
	} else {
		f.cand = en.pivotCandidates(p, x)
	}
	en.stack = append(en.stack, f)
}

// pivotCandidates picks the pivot u from p∪x with the most candidates in
// its neighborhood and returns p minus u's neighbors, ascending.
func (en *enumerator) pivotCandidates(p, x map[int64]struct{}) []int64 {
	pivot, best, found := int64(0), -1, false
	consider := func(u int64) {
		cnt := 0
		for v := range en.adj[u] {
			if _, ok := p[v]; ok {
				cnt++
			}
		}
		if cnt > best || (cnt == best && (!found || u < pivot)) {
			pivot, best, found = u, cnt, true
		}
	}
	for u := range p {
		consider(u)
	}
	for u := range x {
		consider(u)
	}

	var cand []int64
	for v := range p {
		if _, ok := en.adj[pivot][v]; !ok {
			cand = append(cand, v)
		}
	}
	sort.Slice(cand, func(i, j int) bool { return cand[i] < cand[j] })

	return cand
}

// produce resumes the search until the next maximal clique, exhaustion or
// the deadline.
func (en *enumerator) produce() ([]int64, bool, error) {
	for {
		if !en.deadline.IsZero() && en.now().After(en.deadline) {
			return nil, false, ErrTimeout
		}
		if len(en.stack) == 0 {
			if !en.nextRoot() {
				return nil, false, nil
			}

			continue
		}

		f := en.stack[len(en.stack)-1]
		if f.emit {
			f.emit = false
			clique := append([]int64(nil), f.r...)
			sort.Slice(clique, func(i, j int) bool { return clique[i] < clique[j] })
			en.stack = en.stack[:len(en.stack)-1]

			return clique, true, nil
		}
		if f.i >= len(f.cand) {
			en.stack = en.stack[:len(en.stack)-1]

			continue
		}

		v := f.cand[f.i]
		f.i++
		if _, still := f.p[v]; !still {
			continue
		}
		childP := make(map[int64]struct{})
		childX := make(map[int64]struct{})
		for n := range en.adj[v] {
			if _, ok := f.p[n]; ok {
				childP[n] = struct{}{}
			}
			if _, ok := f.x[n]; ok {
				childX[n] = struct{}{}
			}
		}
		delete(f.p, v)
		f.x[v] = struct{}{}
		en.push(append(append([]int64(nil), f.r...), v), childP, childX)
	}
}

// nextRoot seeds the stack with the next degeneracy-order root: the clique
// seed {v} with later neighbors as candidates and earlier ones excluded.
func (en *enumerator) nextRoot() bool {
	if en.roots == nil || en.rootPos >= len(en.roots) {
		return false
	}
	v := en.roots[en.rootPos]
	en.rootPos++

	p := make(map[int64]struct{})
	x := make(map[int64]struct{})
	for n := range en.adj[v] {
		if en.rank[n] > en.rank[v] {
			p[n] = struct{}{}
		} else {
			x[n] = struct{}{}
		}
	}
	en.push([]int64{v}, p, x)

	return true
}
