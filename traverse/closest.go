// Closest-first (uniform-cost) iterator: vertices in nondecreasing weighted
// distance from the start, the traversal order behind Dijkstra-class search.
package traverse

import (
	"container/heap"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

// distEntry and distHeap implement the lazy-deletion (distance, id) min-heap.
type distEntry struct {
	v    int64
	dist float64
}

type distHeap []distEntry

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].v < h[j].v
}
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distEntry)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

type closestFirstIterator struct {
	g       core.Graph
	snap    snapshot
	opts    options
	heap    *distHeap
	dist    map[int64]float64
	settled map[int64]struct{}
}

// ClosestFirst returns an iterator yielding vertices reachable from start in
// nondecreasing distance, where distance accumulates edge weights. With
// WithRadius only vertices within the radius are produced.
// Complexity: O((V + E) log V) over a full drain.
func ClosestFirst(g core.Graph, start int64, opts ...Option) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	it := &closestFirstIterator{
		g:       g,
		snap:    snap(g),
		opts:    buildOptions(opts),
		heap:    &distHeap{},
		dist:    map[int64]float64{start: 0},
		settled: make(map[int64]struct{}),
	}
	heap.Push(it.heap, distEntry{v: start, dist: 0})

	return it, nil
}

func (it *closestFirstIterator) HasNext() bool {
	it.skipStale()
	return it.heap.Len() > 0
}

// skipStale discards heap entries that are settled, superseded, or beyond
// the radius bound.
func (it *closestFirstIterator) skipStale() {
	for it.heap.Len() > 0 {
		top := (*it.heap)[0]
		if _, done := it.settled[top.v]; done || top.dist != it.dist[top.v] {
			heap.Pop(it.heap)
			continue
		}
		if it.opts.hasRadius && top.dist > it.opts.radius {
			// Everything remaining is at least this far away.
			*it.heap = (*it.heap)[:0]
		}

		return
	}
}

func (it *closestFirstIterator) Next() (int64, error) {
	if it.snap.changed(it.g) {
		return 0, core.ErrConcurrentMutation
	}
	it.skipStale()
	if it.heap.Len() == 0 {
		return 0, iterate.ErrExhausted
	}
	top := heap.Pop(it.heap).(distEntry)
	it.settled[top.v] = struct{}{}

	edges, err := it.g.OutgoingEdgesOf(top.v)
	if err != nil {
		return 0, err
	}
	for edges.HasNext() {
		e, err := edges.Next()
		if err != nil {
			return 0, err
		}
		s, _ := it.g.EdgeSource(e)
		t, _ := it.g.EdgeTarget(e)
		n := t
		if s != top.v {
			n = s
		}
		if _, done := it.settled[n]; done {
			continue
		}
		w, err := it.g.EdgeWeight(e)
		if err != nil {
			return 0, err
		}
		alt := top.dist + w
		if cur, seen := it.dist[n]; !seen || alt < cur {
			it.dist[n] = alt
			heap.Push(it.heap, distEntry{v: n, dist: alt})
		}
	}

	return top.v, nil
}
