// Dijkstra single-pair and single-source shortest paths.
package sp

import (
	"container/heap"

	"github.com/korifey/grapht/core"
)

// pqEntry and pathPQ implement the lazy-deletion (distance, id) min-heap
// shared by the Dijkstra-class algorithms.
type pqEntry struct {
	v    int64
	dist float64
}

type pathPQ []pqEntry

func (h pathPQ) Len() int { return len(h) }
func (h pathPQ) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].v < h[j].v
}
func (h pathPQ) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pathPQ) Push(x interface{}) { *h = append(*h, x.(pqEntry)) }
func (h *pathPQ) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// Dijkstra computes the shortest path from source to target. Fails with
// ErrNegativeWeight if any edge weight is negative and ErrNoPath when target
// is unreachable. Complexity: O((V + E) log V).
func Dijkstra(g core.Graph, source, target int64) (*Path, error) {
	tree, err := dijkstraTree(g, source, target, true)
	if err != nil {
		return nil, err
	}

	return tree.PathTo(target)
}

// DijkstraFrom computes the whole shortest-path tree from source.
// Complexity: O((V + E) log V).
func DijkstraFrom(g core.Graph, source int64) (*Tree, error) {
	return dijkstraTree(g, source, 0, false)
}

// dijkstraTree runs the relaxation loop, optionally stopping early once the
// target is settled.
func dijkstraTree(g core.Graph, source, target int64, earlyStop bool) (*Tree, error) {
	endpoints := []int64{source}
	if earlyStop {
		endpoints = append(endpoints, target)
	}
	if err := checkEndpoints(g, endpoints...); err != nil {
		return nil, err
	}
	// Negative weights invalidate the greedy settle; detect them up front
	// rather than returning silently wrong distances.
	_, minWeight, err := collectArcs(g)
	if err != nil {
		return nil, err
	}
	if minWeight < 0 {
		return nil, ErrNegativeWeight
	}

	t := &Tree{
		source:     source,
		dist:       map[int64]float64{source: 0},
		predEdge:   make(map[int64]int64),
		predVertex: make(map[int64]int64),
	}
	settled := make(map[int64]struct{})
	pq := &pathPQ{{v: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqEntry)
		if _, done := settled[top.v]; done || top.dist != t.dist[top.v] {
			continue
		}
		settled[top.v] = struct{}{}
		if earlyStop && top.v == target {
			break
		}
		if err := relaxFrom(g, t, pq, settled, top.v, top.dist); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// relaxFrom relaxes every edge leaving v at distance d.
func relaxFrom(g core.Graph, t *Tree, pq *pathPQ, settled map[int64]struct{}, v int64, d float64) error {
	edges, err := g.OutgoingEdgesOf(v)
	if err != nil {
		return err
	}
	for edges.HasNext() {
		e, err := edges.Next()
		if err != nil {
			return err
		}
		s, err := g.EdgeSource(e)
		if err != nil {
			return err
		}
		to, err := g.EdgeTarget(e)
		if err != nil {
			return err
		}
		if s != v {
			to = s // undirected incidence, walk the edge backwards
		}
		if _, done := settled[to]; done {
			continue
		}
		w, err := g.EdgeWeight(e)
		if err != nil {
			return err
		}
		alt := d + w
		if cur, seen := t.dist[to]; !seen || alt < cur {
			t.dist[to] = alt
			t.predEdge[to] = e
			t.predVertex[to] = v
			heap.Push(pq, pqEntry{v: to, dist: alt})
		}
	}

	return nil
}
