// A* single-pair shortest path with pluggable admissible heuristics,
// including the ALT (A*, landmarks, triangle inequality) lower bound.
package sp

import (
	"container/heap"

	"github.com/korifey/grapht/core"
)

// Heuristic estimates the remaining distance from v to target. It must be
// admissible (never overestimate) for A* to return exact shortest paths.
type Heuristic func(v, target int64) float64

// NullHeuristic degrades A* to plain Dijkstra.
func NullHeuristic(_, _ int64) float64 { return 0 }

// AStar computes the shortest path from source to target guided by h.
// Negative edge weights fail with ErrNegativeWeight. Complexity:
// O((V + E) log V), typically far fewer expansions with a tight heuristic.
func AStar(g core.Graph, source, target int64, h Heuristic) (*Path, error) {
	if err := checkEndpoints(g, source, target); err != nil {
		return nil, err
	}
	if h == nil {
		h = NullHeuristic
	}
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
	// The heap is ordered by f = g + h; t.dist keeps the true g values, so
	// the stale-entry check compares f against the recomputed bound.
	fscore := map[int64]float64{source: h(source, target)}
	pq := &pathPQ{{v: source, dist: fscore[source]}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqEntry)
		if _, done := settled[top.v]; done || top.dist != fscore[top.v] {
			continue
		}
		settled[top.v] = struct{}{}
		if top.v == target {
			break
		}

		edges, err := g.OutgoingEdgesOf(top.v)
		if err != nil {
			return nil, err
		}
		for edges.HasNext() {
			e, err := edges.Next()
			if err != nil {
				return nil, err
			}
			s, _ := g.EdgeSource(e)
			to, _ := g.EdgeTarget(e)
			if s != top.v {
				to = s
			}
			if _, done := settled[to]; done {
				continue
			}
			w, err := g.EdgeWeight(e)
			if err != nil {
				return nil, err
			}
			alt := t.dist[top.v] + w
			if cur, seen := t.dist[to]; !seen || alt < cur {
				t.dist[to] = alt
				t.predEdge[to] = e
				t.predVertex[to] = top.v
				fscore[to] = alt + h(to, target)
				heap.Push(pq, pqEntry{v: to, dist: fscore[to]})
			}
		}
	}
	if _, ok := settled[target]; !ok {
		return nil, ErrNoPath
	}

	return t.PathTo(target)
}

// NewALTHeuristic precomputes landmark distances over g and returns the ALT
// lower bound h(v) = max over landmarks of the triangle-inequality slack.
// For directed graphs distances to a landmark come from the edge-reversed
// view. Preprocessing runs one Dijkstra per landmark (two when directed);
// each estimate is O(len(landmarks)).
func NewALTHeuristic(g core.Graph, landmarks ...int64) (Heuristic, error) {
	if err := checkEndpoints(g, landmarks...); err != nil {
		return nil, err
	}
	if len(landmarks) == 0 {
		return nil, ErrNoLandmarks
	}

	distFrom := make([]map[int64]float64, len(landmarks)) // landmark -> v
	distTo := make([]map[int64]float64, len(landmarks))   // v -> landmark
	directed := g.Type().Directed
	var reversed core.Graph
	if directed {
		reversed = core.AsEdgeReversed(g)
	}
	for i, l := range landmarks {
		tree, err := DijkstraFrom(g, l)
		if err != nil {
			return nil, err
		}
		distFrom[i] = tree.dist
		if directed {
			rtree, err := DijkstraFrom(reversed, l)
			if err != nil {
				return nil, err
			}
			distTo[i] = rtree.dist
		} else {
			distTo[i] = tree.dist
		}
	}

	return func(v, target int64) float64 {
		best := 0.0
		for i := range landmarks {
			if lf, ok := distFrom[i][target]; ok {
				if lv, ok := distFrom[i][v]; ok {
					if b := lf - lv; b > best {
						best = b
					}
				}
			}
			if tv, ok := distTo[i][v]; ok {
				if tt, ok := distTo[i][target]; ok {
					if b := tv - tt; b > best {
						best = b
					}
				}
			}
		}

		return best
	}, nil
}
