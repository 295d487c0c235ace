package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

func buildDirectedTriangle(t *testing.T) (*core.Store, [3]int64, [3]int64) {
	t.Helper()
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	a, _ := g.AddVertex()
	b, _ := g.AddVertex()
	c, _ := g.AddVertex()
	ab, err := g.AddEdge(a, b)
	require.NoError(t, err)
	bc, err := g.AddEdge(b, c)
	require.NoError(t, err)
	ca, err := g.AddEdge(c, a)
	require.NoError(t, err)

	return g, [3]int64{a, b, c}, [3]int64{ab, bc, ca}
}

func TestAsUnmodifiable_RejectsAllMutation(t *testing.T) {
	g, vs, es := buildDirectedTriangle(t)
	view := core.AsUnmodifiable(g)
	require.False(t, view.Type().Modifiable)

	_, err := view.AddVertex()
	require.ErrorIs(t, err, core.ErrUnmodifiable)
	require.ErrorIs(t, view.AddVertexWithID(9), core.ErrUnmodifiable)
	_, err = view.AddEdge(vs[0], vs[1])
	require.ErrorIs(t, err, core.ErrUnmodifiable)
	require.ErrorIs(t, view.AddEdgeWithID(vs[0], vs[1], 9), core.ErrUnmodifiable)
	_, err = view.RemoveVertex(vs[0])
	require.ErrorIs(t, err, core.ErrUnmodifiable)
	_, err = view.RemoveEdge(es[0])
	require.ErrorIs(t, err, core.ErrUnmodifiable)
	err = view.SetEdgeWeight(es[0], 2)
	require.ErrorIs(t, err, status.ErrUnsupportedOperation)

	// Base is untouched and reads stay live.
	require.Equal(t, 3, view.VertexCount())
	d, _ := g.AddVertex()
	require.True(t, view.ContainsVertex(d), "base mutations are visible through the view")
}

func TestAsUnweighted_MasksWeights(t *testing.T) {
	g, _, es := buildDirectedTriangle(t)
	require.NoError(t, g.SetEdgeWeight(es[0], 5.5))

	view := core.AsUnweighted(g)
	require.False(t, view.Type().Weighted)

	w, err := view.EdgeWeight(es[0])
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	require.ErrorIs(t, view.SetEdgeWeight(es[0], 2), core.ErrUnweightedGraph)

	// The base keeps its real weight.
	w, _ = g.EdgeWeight(es[0])
	require.Equal(t, 5.5, w)

	_, err = view.EdgeWeight(404)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestAsEdgeReversed_SwapsOrientation(t *testing.T) {
	g, vs, es := buildDirectedTriangle(t)
	view := core.AsEdgeReversed(g)

	src, _ := view.EdgeSource(es[0])
	tgt, _ := view.EdgeTarget(es[0])
	require.Equal(t, vs[1], src)
	require.Equal(t, vs[0], tgt)

	require.True(t, view.ContainsEdgeBetween(vs[1], vs[0]))
	require.False(t, view.ContainsEdgeBetween(vs[0], vs[1]))

	in, _ := view.InDegreeOf(vs[0])
	out, _ := view.OutDegreeOf(vs[0])
	baseIn, _ := g.InDegreeOf(vs[0])
	baseOut, _ := g.OutDegreeOf(vs[0])
	require.Equal(t, baseOut, in)
	require.Equal(t, baseIn, out)

	// Adding through the view stores the swapped orientation in the base.
	d, _ := view.AddVertex()
	e, err := view.AddEdge(vs[0], d)
	require.NoError(t, err)
	baseSrc, _ := g.EdgeSource(e)
	require.Equal(t, d, baseSrc)
}

func TestAsUndirected_SymmetricReads(t *testing.T) {
	g, vs, _ := buildDirectedTriangle(t)
	view := core.AsUndirected(g)
	require.False(t, view.Type().Directed)

	require.True(t, view.ContainsEdgeBetween(vs[0], vs[1]))
	require.True(t, view.ContainsEdgeBetween(vs[1], vs[0]))

	deg, err := view.DegreeOf(vs[0])
	require.NoError(t, err)
	require.Equal(t, 2, deg)
	in, _ := view.InDegreeOf(vs[0])
	require.Equal(t, deg, in)

	_, err = view.AddEdge(vs[0], vs[2])
	require.ErrorIs(t, err, core.ErrViewMutation)
	require.ErrorIs(t, err, status.ErrUnsupportedOperation)

	got, err := iterate.Collect(view.EdgesBetween(vs[2], vs[0]))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestViews_Stack(t *testing.T) {
	g, vs, es := buildDirectedTriangle(t)
	view := core.AsUnmodifiable(core.AsUndirected(core.AsUnweighted(g)))

	tp := view.Type()
	require.False(t, tp.Modifiable)
	require.False(t, tp.Directed)
	require.False(t, tp.Weighted)

	w, err := view.EdgeWeight(es[0])
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
	require.True(t, view.ContainsEdgeBetween(vs[1], vs[0]))
	_, err = view.AddVertex()
	require.ErrorIs(t, err, core.ErrUnmodifiable)
}
