// Package coloring_test asserts propriety (no edge joins same-colored
// endpoints) for every heuristic, plus exact color counts on graphs whose
// chromatic number is known.
package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/coloring"
	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/status"
)

func build(t *testing.T, n int, edges [][2]int64) *core.Store {
	t.Helper()
	g := core.NewGraph()
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

// requireProper asserts no edge connects two vertices of one color.
func requireProper(t *testing.T, g *core.Store, c *coloring.Coloring) {
	t.Helper()
	it := g.Edges()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		u, err := g.EdgeSource(e)
		require.NoError(t, err)
		v, err := g.EdgeTarget(e)
		require.NoError(t, err)
		if u == v {
			continue
		}
		cu, err := c.ColorOf(u)
		require.NoError(t, err)
		cv, err := c.ColorOf(v)
		require.NoError(t, err)
		require.NotEqual(t, cu, cv, "edge %d joins color %d twice", e, cu)
	}
}

// k4 plus a pendant: chromatic number 4.
func k4Pendant(t *testing.T) *core.Store {
	t.Helper()
	return build(t, 5, [][2]int64{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {3, 4},
	})
}

type algorithm struct {
	name string
	run  func(core.Graph) (*coloring.Coloring, error)
}

func algorithms() []algorithm {
	return []algorithm{
		{"Greedy", coloring.Greedy},
		{"DSatur", coloring.DSatur},
		{"LargestDegreeFirst", coloring.LargestDegreeFirst},
		{"SmallestDegreeLast", coloring.SmallestDegreeLast},
		{"RandomOrder", func(g core.Graph) (*coloring.Coloring, error) {
			return coloring.RandomOrder(g, 42)
		}},
	}
}

func TestColoring_ProperOnK4Pendant(t *testing.T) {
	for _, alg := range algorithms() {
		t.Run(alg.name, func(t *testing.T) {
			g := k4Pendant(t)
			c, err := alg.run(g)
			require.NoError(t, err)
			requireProper(t, g, c)
			require.GreaterOrEqual(t, c.NumColors(), 4) // K4 needs 4
			require.LessOrEqual(t, c.NumColors(), 5)
		})
	}
}

func TestColoring_BipartiteTwoColors(t *testing.T) {
	// Even cycle: 2-colorable, and DSatur/degeneracy orders achieve it.
	g := build(t, 6, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})

	for _, alg := range []algorithm{
		{"Greedy", coloring.Greedy},
		{"DSatur", coloring.DSatur},
		{"SmallestDegreeLast", coloring.SmallestDegreeLast},
	} {
		t.Run(alg.name, func(t *testing.T) {
			c, err := alg.run(g)
			require.NoError(t, err)
			requireProper(t, g, c)
			require.Equal(t, 2, c.NumColors())
		})
	}
}

func TestDSatur_WheelNeedsFour(t *testing.T) {
	// Odd wheel: hub 0 over a 5-cycle, chromatic number 4.
	g := build(t, 6, [][2]int64{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
	})

	c, err := coloring.DSatur(g)
	require.NoError(t, err)
	requireProper(t, g, c)
	require.Equal(t, 4, c.NumColors())

	hub, err := c.ColorOf(0)
	require.NoError(t, err)
	for v := int64(1); v <= 5; v++ {
		cv, err := c.ColorOf(v)
		require.NoError(t, err)
		require.NotEqual(t, hub, cv)
	}
}

func TestColoring_SelfLoopDoesNotConstrain(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops())
	_, err := g.AddVertex()
	require.NoError(t, err)
	_, err = g.AddEdge(0, 0)
	require.NoError(t, err)

	c, err := coloring.Greedy(g)
	require.NoError(t, err)
	require.Equal(t, 1, c.NumColors())
}

func TestColoring_DirectedEdgesColorBothEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	for i := 0; i < 2; i++ {
		_, err := g.AddVertex()
		require.NoError(t, err)
	}
	_, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	c, err := coloring.Greedy(g)
	require.NoError(t, err)
	require.Equal(t, 2, c.NumColors())
}

func TestRandomOrder_SeedDeterminism(t *testing.T) {
	g := k4Pendant(t)

	a, err := coloring.RandomOrder(g, 7)
	require.NoError(t, err)
	b, err := coloring.RandomOrder(g, 7)
	require.NoError(t, err)
	require.Equal(t, a.Colors(), b.Colors())
}

func TestColoring_EmptyGraphAndMisses(t *testing.T) {
	g := core.NewGraph()

	c, err := coloring.Greedy(g)
	require.NoError(t, err)
	require.Zero(t, c.NumColors())

	_, err = c.ColorOf(3)
	require.ErrorIs(t, err, coloring.ErrVertexNotFound)
	require.ErrorIs(t, err, status.ErrIllegalArgument)
}
