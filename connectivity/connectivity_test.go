// Package connectivity_test checks component partitions on known graphs,
// the cluster accessor contracts, and clustering determinism.
package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/connectivity"
	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

func build(t *testing.T, directed bool, n int, edges [][2]int64) *core.Store {
	t.Helper()
	var opts []core.Option
	if directed {
		opts = append(opts, core.WithDirected())
	}
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func clusterSets(t *testing.T, c *connectivity.Components) [][]int64 {
	t.Helper()
	out := make([][]int64, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		members, err := c.Component(i)
		require.NoError(t, err)
		out = append(out, members)
	}

	return out
}

func TestWeakComponents_TwoIslands(t *testing.T) {
	g := build(t, false, 5, [][2]int64{{0, 1}, {1, 2}, {3, 4}})

	c, err := connectivity.WeakComponents(g)
	require.NoError(t, err)
	require.Equal(t, 2, c.Count())
	require.Equal(t, [][]int64{{0, 1, 2}, {3, 4}}, clusterSets(t, c))

	require.True(t, c.SameComponent(0, 2))
	require.False(t, c.SameComponent(2, 3))

	i, err := c.ComponentOf(4)
	require.NoError(t, err)
	require.Equal(t, 1, i)
}

func TestWeakComponents_DirectionIgnored(t *testing.T) {
	g := build(t, true, 3, [][2]int64{{1, 0}, {1, 2}})

	c, err := connectivity.WeakComponents(g)
	require.NoError(t, err)
	require.Equal(t, 1, c.Count())
}

func TestStrongComponents_CycleAndTail(t *testing.T) {
	// SCCs: {0,1,2} (cycle), {3}, {4}.
	g := build(t, true, 5, [][2]int64{
		{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4},
	})

	c, err := connectivity.StrongComponents(g)
	require.NoError(t, err)
	require.Equal(t, 3, c.Count())
	require.Equal(t, [][]int64{{0, 1, 2}, {3}, {4}}, clusterSets(t, c))
}

func TestStrongComponents_TwoCycles(t *testing.T) {
	g := build(t, true, 4, [][2]int64{
		{0, 1}, {1, 0}, {2, 3}, {3, 2}, {1, 2},
	})

	c, err := connectivity.StrongComponents(g)
	require.NoError(t, err)
	require.Equal(t, 2, c.Count())
	require.True(t, c.SameComponent(0, 1))
	require.True(t, c.SameComponent(2, 3))
	require.False(t, c.SameComponent(1, 2))
}

func TestStrongComponents_UndirectedFallsBack(t *testing.T) {
	g := build(t, false, 3, [][2]int64{{0, 1}})

	c, err := connectivity.StrongComponents(g)
	require.NoError(t, err)
	require.Equal(t, 2, c.Count())
}

func TestComponents_AccessorErrors(t *testing.T) {
	g := build(t, false, 2, [][2]int64{{0, 1}})

	c, err := connectivity.WeakComponents(g)
	require.NoError(t, err)

	_, err = c.Component(5)
	require.ErrorIs(t, err, connectivity.ErrClusterIndex)
	require.ErrorIs(t, err, status.ErrIndexOutOfBounds)

	_, err = c.ComponentOf(99)
	require.ErrorIs(t, err, status.ErrIllegalArgument)

	it, err := c.ComponentVertices(0)
	require.NoError(t, err)
	got, err := iterate.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, got)
}

func TestLabelPropagation_SeparatesCliques(t *testing.T) {
	// Two triangles joined by one bridge edge.
	g := build(t, false, 6, [][2]int64{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	})

	c, err := connectivity.LabelPropagation(g, 1)
	require.NoError(t, err)
	// Every vertex ends in the same cluster as its triangle mates.
	require.True(t, c.SameComponent(0, 1))
	require.True(t, c.SameComponent(1, 2))
	require.True(t, c.SameComponent(3, 4))
	require.True(t, c.SameComponent(4, 5))
}

func TestLabelPropagation_SeedDeterminism(t *testing.T) {
	g := build(t, false, 6, [][2]int64{
		{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {2, 3},
	})

	a, err := connectivity.LabelPropagation(g, 7)
	require.NoError(t, err)
	b, err := connectivity.LabelPropagation(g, 7)
	require.NoError(t, err)
	require.Equal(t, clusterSets(t, a), clusterSets(t, b))
}

func TestKSpanningTree_SplitsAtHeaviestEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	// Chain 0-1-2-3 with a heavy middle edge.
	for _, e := range []struct {
		u, v int64
		w    float64
	}{{0, 1, 1}, {1, 2, 10}, {2, 3, 1}} {
		id, err := g.AddEdge(e.u, e.v)
		require.NoError(t, err)
		require.NoError(t, g.SetEdgeWeight(id, e.w))
	}

	c, err := connectivity.KSpanningTree(g, 2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Count())
	require.Equal(t, [][]int64{{0, 1}, {2, 3}}, clusterSets(t, c))
}

func TestKSpanningTree_KEqualsOneKeepsComponents(t *testing.T) {
	g := build(t, false, 3, [][2]int64{{0, 1}, {1, 2}})

	c, err := connectivity.KSpanningTree(g, 1)
	require.NoError(t, err)
	require.Equal(t, 1, c.Count())
}

func TestKSpanningTree_InvalidK(t *testing.T) {
	g := build(t, false, 3, [][2]int64{{0, 1}})

	_, err := connectivity.KSpanningTree(g, 0)
	require.ErrorIs(t, err, connectivity.ErrInvalidK)

	_, err = connectivity.KSpanningTree(g, 4)
	require.ErrorIs(t, err, connectivity.ErrInvalidK)
}

func TestClustering_RejectDirected(t *testing.T) {
	g := build(t, true, 2, [][2]int64{{0, 1}})

	_, err := connectivity.LabelPropagation(g, 1)
	require.ErrorIs(t, err, connectivity.ErrDirectedGraph)

	_, err = connectivity.KSpanningTree(g, 1)
	require.ErrorIs(t, err, connectivity.ErrDirectedGraph)
}
