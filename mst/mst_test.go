// Package mst_test checks Kruskal and Prim against hand-computed trees,
// forest behavior on disconnected graphs, and the union-find contracts.
package mst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/mst"
	"github.com/korifey/grapht/status"
)

// weighted builds an undirected weighted graph with n vertices and the
// given (u, v, w) edges, returning edge ids in input order.
func weighted(t *testing.T, n int, edges [][3]int64, extra ...core.Option) (*core.Store, []int64) {
	t.Helper()
	g := core.NewGraph(append([]core.Option{core.WithWeighted()}, extra...)...)
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

// square with one diagonal: MST must drop the two heaviest edges.
func squareGraph(t *testing.T) (*core.Store, []int64) {
	t.Helper()
	return weighted(t, 4, [][3]int64{
		{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 0, 4}, {0, 2, 5},
	})
}

func TestKruskal_SquareWithDiagonal(t *testing.T) {
	g, ids := squareGraph(t)

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[0], ids[1], ids[2]}, tree.EdgeList())
	require.InDelta(t, 6.0, tree.Weight(), 1e-9)
	require.Equal(t, 3, tree.Len())
}

func TestPrim_MatchesKruskal(t *testing.T) {
	g, _ := squareGraph(t)

	k, err := mst.Kruskal(g)
	require.NoError(t, err)
	p, err := mst.Prim(g)
	require.NoError(t, err)
	require.Equal(t, k.EdgeList(), p.EdgeList())
	require.InDelta(t, k.Weight(), p.Weight(), 1e-9)
}

func TestPrim_RootChoiceDoesNotChangeWeight(t *testing.T) {
	g, _ := squareGraph(t)

	for _, root := range []int64{0, 1, 2, 3} {
		tree, err := mst.Prim(g, mst.WithRoot(root))
		require.NoError(t, err)
		require.InDelta(t, 6.0, tree.Weight(), 1e-9)
	}
}

func TestPrim_MissingRoot(t *testing.T) {
	g, _ := squareGraph(t)

	_, err := mst.Prim(g, mst.WithRoot(42))
	require.ErrorIs(t, err, mst.ErrRootNotFound)
	require.ErrorIs(t, err, status.ErrIllegalArgument)
}

func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	// Two components: triangle 0-1-2 and edge 3-4.
	g, ids := weighted(t, 5, [][3]int64{
		{0, 1, 1}, {1, 2, 2}, {0, 2, 3}, {3, 4, 7},
	})

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[0], ids[1], ids[3]}, tree.EdgeList())
	require.InDelta(t, 10.0, tree.Weight(), 1e-9)
}

func TestPrim_DisconnectedYieldsForest(t *testing.T) {
	g, _ := weighted(t, 5, [][3]int64{
		{0, 1, 1}, {1, 2, 2}, {0, 2, 3}, {3, 4, 7},
	})

	tree, err := mst.Prim(g)
	require.NoError(t, err)
	require.Equal(t, 3, tree.Len())
	require.InDelta(t, 10.0, tree.Weight(), 1e-9)
}

func TestKruskal_EqualWeightsPreferLowerEdgeID(t *testing.T) {
	// Triangle with all weights equal: the first two inserted edges win.
	g, ids := weighted(t, 3, [][3]int64{{0, 1, 5}, {1, 2, 5}, {0, 2, 5}})

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[0], ids[1]}, tree.EdgeList())
}

func TestKruskal_SelfLoopsIgnored(t *testing.T) {
	g, ids := weighted(t, 2, [][3]int64{{0, 0, 1}, {0, 1, 2}}, core.WithSelfLoops())

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[1]}, tree.EdgeList())
}

func TestKruskal_UnweightedUsesDefaultWeight(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {0, 2}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
	require.InDelta(t, 2*core.DefaultEdgeWeight, tree.Weight(), 1e-9)
}

func TestMST_RejectsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())

	_, err := mst.Kruskal(g)
	require.ErrorIs(t, err, mst.ErrDirectedGraph)
	require.ErrorIs(t, err, status.ErrUnsupportedOperation)

	_, err = mst.Prim(g)
	require.ErrorIs(t, err, mst.ErrDirectedGraph)
}

func TestMST_EmptyAndSingleton(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	tree, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Zero(t, tree.Len())
	require.Zero(t, tree.Weight())

	_, err = g.AddVertex()
	require.NoError(t, err)
	tree, err = mst.Prim(g)
	require.NoError(t, err)
	require.Zero(t, tree.Len())
}

func TestUnionFind_Basics(t *testing.T) {
	uf := mst.NewUnionFind(1, 2, 3, 4)
	require.Equal(t, 4, uf.Count())

	require.True(t, uf.Union(1, 2))
	require.False(t, uf.Union(2, 1))
	require.True(t, uf.Union(3, 4))
	require.Equal(t, 2, uf.Count())

	require.True(t, uf.Connected(1, 2))
	require.False(t, uf.Connected(1, 3))

	require.True(t, uf.Union(2, 3))
	require.True(t, uf.Connected(1, 4))
	require.Equal(t, 1, uf.Count())
}

func TestUnionFind_ImplicitAdd(t *testing.T) {
	uf := mst.NewUnionFind()
	require.Equal(t, int64(9), uf.Find(9))
	require.Equal(t, 1, uf.Count())
}
