// Package cycles_test validates Eulerian circuits edge-by-edge, checks the
// cycle-basis dimension and membership, and enumerates simple cycles on
// known digraphs.
package cycles_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/cycles"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

func build(t *testing.T, directed bool, n int, edges [][2]int64, extra ...core.Option) (*core.Store, []int64) {
	t.Helper()
	var opts []core.Option
	if directed {
		opts = append(opts, core.WithDirected())
	}
	g := core.NewGraph(append(opts, extra...)...)
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		id, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
		ids = append(ids, id)
	}

	return g, ids
}

// requireCircuitValid walks the circuit and checks every edge id is used
// once and connects consecutive vertices.
func requireCircuitValid(t *testing.T, g *core.Store, c *cycles.Circuit) {
	t.Helper()
	verts, edges := c.VertexList(), c.EdgeList()
	require.Len(t, verts, len(edges)+1)
	if len(edges) == 0 {
		return
	}
	require.Equal(t, verts[0], verts[len(verts)-1])

	used := make(map[int64]bool)
	directed := g.Type().Directed
	for i, e := range edges {
		require.False(t, used[e], "edge %d reused", e)
		used[e] = true
		s, err := g.EdgeSource(e)
		require.NoError(t, err)
		d, err := g.EdgeTarget(e)
		require.NoError(t, err)
		if directed {
			require.Equal(t, s, verts[i])
			require.Equal(t, d, verts[i+1])
		} else {
			ok := (s == verts[i] && d == verts[i+1]) || (d == verts[i] && s == verts[i+1])
			require.True(t, ok, "edge %d does not join steps %d,%d", e, i, i+1)
		}
	}
	require.Len(t, used, g.EdgeCount())
}

func TestEulerianCircuit_DirectedTriangle(t *testing.T) {
	g, ids := build(t, true, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}})

	c, err := cycles.EulerianCircuit(g)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 0}, c.VertexList())
	require.Equal(t, ids, c.EdgeList())
	require.Equal(t, 3, c.Len())
}

func TestEulerianCircuit_UndirectedFigureEight(t *testing.T) {
	// Two triangles joined at vertex 0: all degrees even.
	g, _ := build(t, false, 5, [][2]int64{
		{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0},
	})

	c, err := cycles.EulerianCircuit(g)
	require.NoError(t, err)
	requireCircuitValid(t, g, c)
}

func TestEulerianCircuit_OddDegree(t *testing.T) {
	g, _ := build(t, false, 2, [][2]int64{{0, 1}})

	_, err := cycles.EulerianCircuit(g)
	require.ErrorIs(t, err, cycles.ErrNotEulerian)
	require.ErrorIs(t, err, status.ErrUnsupportedOperation)
}

func TestEulerianCircuit_UnbalancedDirected(t *testing.T) {
	g, _ := build(t, true, 2, [][2]int64{{0, 1}})

	_, err := cycles.EulerianCircuit(g)
	require.ErrorIs(t, err, cycles.ErrNotEulerian)
}

func TestEulerianCircuit_DisconnectedEdges(t *testing.T) {
	// Two vertex-disjoint directed loops cannot share a circuit.
	g, _ := build(t, true, 4, [][2]int64{{0, 1}, {1, 0}, {2, 3}, {3, 2}})

	_, err := cycles.EulerianCircuit(g)
	require.ErrorIs(t, err, cycles.ErrNotEulerian)
}

func TestEulerianCircuit_EdgelessGraph(t *testing.T) {
	g, _ := build(t, false, 3, nil)

	c, err := cycles.EulerianCircuit(g)
	require.NoError(t, err)
	require.Zero(t, c.Len())
}

func TestFundamentalCycleBasis_Dimension(t *testing.T) {
	// Square with diagonal: E - V + C = 5 - 4 + 1 = 2 cycles.
	g, _ := build(t, false, 4, [][2]int64{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2},
	})

	basis, err := cycles.FundamentalCycleBasis(g)
	require.NoError(t, err)
	require.Len(t, basis, 2)
	for _, c := range basis {
		verts := c.VertexList()
		require.Equal(t, verts[0], verts[len(verts)-1])
		require.GreaterOrEqual(t, c.Len(), 3)
	}
}

func TestFundamentalCycleBasis_TreeHasNone(t *testing.T) {
	g, _ := build(t, false, 4, [][2]int64{{0, 1}, {1, 2}, {1, 3}})

	basis, err := cycles.FundamentalCycleBasis(g)
	require.NoError(t, err)
	require.Empty(t, basis)
}

func TestFundamentalCycleBasis_LoopAndParallel(t *testing.T) {
	g, _ := build(t, false, 2, [][2]int64{{0, 1}, {0, 1}, {1, 1}},
		core.WithSelfLoops(), core.WithMultiEdges())

	basis, err := cycles.FundamentalCycleBasis(g)
	require.NoError(t, err)
	require.Len(t, basis, 2)

	// Parallel edge closes a 2-cycle, the loop a 1-cycle.
	lens := []int{basis[0].Len(), basis[1].Len()}
	sort.Ints(lens)
	require.Equal(t, []int{1, 2}, lens)
}

func TestFundamentalCycleBasis_RejectsDirected(t *testing.T) {
	g, _ := build(t, true, 2, [][2]int64{{0, 1}})

	_, err := cycles.FundamentalCycleBasis(g)
	require.ErrorIs(t, err, cycles.ErrDirectedGraph)
}

func TestSimpleCycles_TwoCycles(t *testing.T) {
	// 0->1->2->0 and the chord 1->0 forming 0->1->0.
	g, _ := build(t, true, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}, {1, 0}})

	it, err := cycles.SimpleCycles(g)
	require.NoError(t, err)
	got, err := iterate.Collect(it)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0, 1}, {0, 1, 2}}, got)
}

func TestSimpleCycles_SelfLoop(t *testing.T) {
	g, _ := build(t, true, 2, [][2]int64{{0, 0}, {0, 1}}, core.WithSelfLoops())

	it, err := cycles.SimpleCycles(g)
	require.NoError(t, err)
	got, err := iterate.Collect(it)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0}}, got)
}

func TestSimpleCycles_Acyclic(t *testing.T) {
	g, _ := build(t, true, 3, [][2]int64{{0, 1}, {0, 2}, {1, 2}})

	it, err := cycles.SimpleCycles(g)
	require.NoError(t, err)
	require.False(t, it.HasNext())
}

func TestSimpleCycles_RejectsUndirected(t *testing.T) {
	g, _ := build(t, false, 2, [][2]int64{{0, 1}})

	_, err := cycles.SimpleCycles(g)
	require.ErrorIs(t, err, cycles.ErrUndirectedGraph)
}

func TestSimpleCycles_Timeout(t *testing.T) {
	g, _ := build(t, true, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}})

	it, err := cycles.SimpleCycles(g, cycles.WithTimeout(time.Nanosecond))
	require.NoError(t, err)
	time.Sleep(time.Microsecond)
	require.True(t, it.HasNext())
	_, err = it.Next()
	require.ErrorIs(t, err, cycles.ErrTimeout)
}
