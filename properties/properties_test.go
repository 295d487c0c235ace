// Package properties_test covers each predicate with a positive and a
// negative graph and pins the metric values of small known graphs.
package properties_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/properties"
	"github.com/korifey/grapht/status"
)

func build(t *testing.T, n int, edges [][2]int64, opts ...core.Option) *core.Store {
	t.Helper()
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

func triangle(t *testing.T) *core.Store {
	t.Helper()
	return build(t, 3, [][2]int64{{0, 1}, {1, 2}, {0, 2}})
}

func TestPredicates_Triangle(t *testing.T) {
	g := triangle(t)

	for name, check := range map[string]func(core.Graph) (bool, error){
		"IsSimple":    properties.IsSimple,
		"IsComplete":  properties.IsComplete,
		"IsConnected": properties.IsConnected,
		"IsEulerian":  properties.IsEulerian,
		"IsChordal":   properties.IsChordal,
	} {
		ok, err := check(g)
		require.NoError(t, err, name)
		require.True(t, ok, name)
	}
	for name, check := range map[string]func(core.Graph) (bool, error){
		"IsEmpty":          properties.IsEmpty,
		"HasSelfLoops":     properties.HasSelfLoops,
		"HasMultipleEdges": properties.HasMultipleEdges,
		"IsTree":           properties.IsTree,
		"IsForest":         properties.IsForest,
		"IsBipartite":      properties.IsBipartite,
		"IsTriangleFree":   properties.IsTriangleFree,
	} {
		ok, err := check(g)
		require.NoError(t, err, name)
		require.False(t, ok, name)
	}
}

func TestMetrics_Triangle(t *testing.T) {
	g := triangle(t)

	n, err := properties.Triangles(g)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	girth, err := properties.Girth(g)
	require.NoError(t, err)
	require.Equal(t, 3.0, girth)

	diameter, err := properties.Diameter(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, diameter)
}

func TestPredicates_PathIsTree(t *testing.T) {
	g := build(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}})

	ok, err := properties.IsTree(g)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = properties.IsForest(g)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = properties.IsBipartite(g)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = properties.IsTriangleFree(g)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = properties.IsEulerian(g)
	require.NoError(t, err)
	require.False(t, ok) // odd-degree endpoints
}

func TestPredicates_ForestNotTree(t *testing.T) {
	g := build(t, 4, [][2]int64{{0, 1}, {2, 3}})

	ok, err := properties.IsForest(g)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = properties.IsTree(g)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = properties.IsConnected(g)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPredicates_LoopsAndMulti(t *testing.T) {
	g := build(t, 2, [][2]int64{{0, 1}, {0, 1}, {1, 1}},
		core.WithSelfLoops(), core.WithMultiEdges())

	loops, err := properties.HasSelfLoops(g)
	require.NoError(t, err)
	require.True(t, loops)
	multi, err := properties.HasMultipleEdges(g)
	require.NoError(t, err)
	require.True(t, multi)
	simple, err := properties.IsSimple(g)
	require.NoError(t, err)
	require.False(t, simple)
	bip, err := properties.IsBipartite(g)
	require.NoError(t, err)
	require.False(t, bip) // the self-loop

	girth, err := properties.Girth(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, girth)
}

func TestIsStronglyConnected(t *testing.T) {
	cycle := build(t, 3, [][2]int64{{0, 1}, {1, 2}, {2, 0}}, core.WithDirected())
	ok, err := properties.IsStronglyConnected(cycle)
	require.NoError(t, err)
	require.True(t, ok)

	chain := build(t, 3, [][2]int64{{0, 1}, {1, 2}}, core.WithDirected())
	ok, err = properties.IsStronglyConnected(chain)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = properties.IsWeaklyConnected(chain)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsChordal(t *testing.T) {
	// 4-cycle without chord is not chordal; with the chord it is.
	hole := build(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	ok, err := properties.IsChordal(hole)
	require.NoError(t, err)
	require.False(t, ok)

	chorded := build(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
	ok, err = properties.IsChordal(chorded)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMetrics_Square(t *testing.T) {
	g := build(t, 4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	girth, err := properties.Girth(g)
	require.NoError(t, err)
	require.Equal(t, 4.0, girth)

	diameter, err := properties.Diameter(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, diameter)

	radius, err := properties.Radius(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, radius)

	ecc, err := properties.Eccentricity(g, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, ecc)
}

func TestMetrics_StarRadiusOne(t *testing.T) {
	g := build(t, 4, [][2]int64{{0, 1}, {0, 2}, {0, 3}})

	radius, err := properties.Radius(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, radius)
	diameter, err := properties.Diameter(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, diameter)
}

func TestMetrics_DisconnectedInfinite(t *testing.T) {
	g := build(t, 3, [][2]int64{{0, 1}})

	d, err := properties.Diameter(g)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))

	ecc, err := properties.Eccentricity(g, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(ecc, 1))

	girth, err := properties.Girth(g)
	require.NoError(t, err)
	require.True(t, math.IsInf(girth, 1)) // acyclic

	_, err = properties.Eccentricity(g, 42)
	require.ErrorIs(t, err, properties.ErrVertexNotFound)
	require.ErrorIs(t, err, status.ErrIllegalArgument)
}

func TestGirth_DirectedTwoCycle(t *testing.T) {
	g := build(t, 2, [][2]int64{{0, 1}, {1, 0}}, core.WithDirected())

	girth, err := properties.Girth(g)
	require.NoError(t, err)
	require.Equal(t, 2.0, girth)
}
