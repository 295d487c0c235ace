// Bellman-Ford single-source shortest paths with negative-cycle detection.
package sp

import "github.com/korifey/grapht/core"

// BellmanFordFrom computes the shortest-path tree from source, tolerating
// negative edge weights. A negative-weight cycle reachable from source fails
// with ErrNegativeCycle. Note an undirected negative edge is itself such a
// cycle. Complexity: O(V * E).
func BellmanFordFrom(g core.Graph, source int64) (*Tree, error) {
	if err := checkEndpoints(g, source); err != nil {
		return nil, err
	}
	arcs, _, err := collectArcs(g)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		source:     source,
		dist:       map[int64]float64{source: 0},
		predEdge:   make(map[int64]int64),
		predVertex: make(map[int64]int64),
	}

	// V-1 relaxation rounds, stopping early once a round changes nothing.
	rounds := g.VertexCount() - 1
	for i := 0; i < rounds; i++ {
		changed := false
		for _, a := range arcs {
			df, ok := t.dist[a.from]
			if !ok {
				continue
			}
			alt := df + a.weight
			if cur, seen := t.dist[a.to]; !seen || alt < cur {
				t.dist[a.to] = alt
				t.predEdge[a.to] = a.edge
				t.predVertex[a.to] = a.from
				changed = true
			}
		}
		if !changed {
			return t, nil
		}
	}

	// One more round: any further improvement proves a negative cycle.
	for _, a := range arcs {
		df, ok := t.dist[a.from]
		if !ok {
			continue
		}
		if cur, seen := t.dist[a.to]; seen && df+a.weight < cur {
			return nil, ErrNegativeCycle
		}
	}

	return t, nil
}
