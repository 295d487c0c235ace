// Package matching_test checks matching validity (vertex-disjointness),
// the greedy and path-growing guarantees on small graphs, and the
// result-accessor contracts.
package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/matching"
	"github.com/korifey/grapht/status"
)

func undirected(t *testing.T, n int, edges [][3]int64) (*core.Store, []int64) {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		id, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
		require.NoError(t, g.SetEdgeWeight(id, float64(e[2])))
		ids = append(ids, id)
	}

	return g, ids
}

// requireValidMatching asserts no vertex is covered twice.
func requireValidMatching(t *testing.T, g *core.Store, m *matching.Matching) {
	t.Helper()
	seen := make(map[int64]bool)
	for _, e := range m.EdgeList() {
		u, err := g.EdgeSource(e)
		require.NoError(t, err)
		v, err := g.EdgeTarget(e)
		require.NoError(t, err)
		require.False(t, seen[u], "vertex %d matched twice", u)
		require.False(t, seen[v], "vertex %d matched twice", v)
		seen[u], seen[v] = true, true
	}
}

func TestGreedyMaxCardinality_Path(t *testing.T) {
	// Path 0-1-2-3: greedy takes (0,1) then (2,3), a perfect matching.
	g, ids := undirected(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})

	m, err := matching.GreedyMaxCardinality(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[0], ids[2]}, m.EdgeList())
	require.Equal(t, 2, m.Len())
	requireValidMatching(t, g, m)

	require.True(t, m.IsMatched(0))
	p, err := m.PartnerOf(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), p)
}

func TestGreedyMaxCardinality_ExposedVertex(t *testing.T) {
	// Triangle: one vertex always stays exposed.
	g, _ := undirected(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}})

	m, err := matching.GreedyMaxCardinality(g)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	exposed := 0
	for v := int64(0); v < 3; v++ {
		if !m.IsMatched(v) {
			exposed++
			_, err := m.PartnerOf(v)
			require.ErrorIs(t, err, status.ErrNoSuchElement)
		}
	}
	require.Equal(t, 1, exposed)
}

func TestPathGrowing_PrefersHeavyMiddle(t *testing.T) {
	// Path 0-1-2-3 with a heavy middle edge: the heavy edge alone beats
	// the two light ones combined.
	g, ids := undirected(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 10}, {2, 3, 1}})

	m, err := matching.PathGrowingMaxWeight(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[1]}, m.EdgeList())
	require.InDelta(t, 10.0, m.Weight(), 1e-9)
	requireValidMatching(t, g, m)
}

func TestPathGrowing_StarPicksHeaviest(t *testing.T) {
	g, ids := undirected(t, 4, [][3]int64{{0, 1, 2}, {0, 2, 5}, {0, 3, 3}})

	m, err := matching.PathGrowingMaxWeight(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[1]}, m.EdgeList())
	require.InDelta(t, 5.0, m.Weight(), 1e-9)
}

func TestPathGrowing_CycleStaysValid(t *testing.T) {
	// Even cycle with equal weights: result must be a valid matching of
	// at least half the optimum (optimum 2 edges of weight 2).
	g, _ := undirected(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}})

	m, err := matching.PathGrowingMaxWeight(g)
	require.NoError(t, err)
	requireValidMatching(t, g, m)
	require.GreaterOrEqual(t, m.Weight(), 1.0)
}

func TestMatching_EmptyGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	m, err := matching.GreedyMaxCardinality(g)
	require.NoError(t, err)
	require.Zero(t, m.Len())
	require.Zero(t, m.Weight())
	require.False(t, m.IsMatched(0))
}

func TestMatching_RejectsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected())

	_, err := matching.GreedyMaxCardinality(g)
	require.ErrorIs(t, err, matching.ErrDirectedGraph)
	require.ErrorIs(t, err, status.ErrUnsupportedOperation)

	_, err = matching.PathGrowingMaxWeight(g)
	require.ErrorIs(t, err, matching.ErrDirectedGraph)
}

func TestMatching_EdgesIterator(t *testing.T) {
	g, ids := undirected(t, 4, [][3]int64{{0, 1, 1}, {2, 3, 1}})

	m, err := matching.GreedyMaxCardinality(g)
	require.NoError(t, err)

	it := m.Edges()
	var got []int64
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e)
	}
	require.Equal(t, ids, got)
	_, err = it.Next()
	require.ErrorIs(t, err, status.ErrNoSuchElement)
}
