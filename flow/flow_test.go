// Package flow_test exercises Dinic max-flow values, per-edge flows,
// min-cut partitions and the argument-validation taxonomy.
package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/flow"
	"github.com/korifey/grapht/status"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

// digraph builds a directed weighted graph with n vertices and capacitated
// edges, returning edge ids in input order.
func (s *DinicSuite) digraph(n int, edges [][3]int64, extra ...core.Option) (*core.Store, []int64) {
	opts := append([]core.Option{core.WithDirected(), core.WithWeighted()}, extra...)
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddVertex()
		require.NoError(s.T(), err)
	}
	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		id, err := g.AddEdge(e[0], e[1])
		require.NoError(s.T(), err)
		require.NoError(s.T(), g.SetEdgeWeight(id, float64(e[2])))
		ids = append(ids, id)
	}

	return g, ids
}

// TestSingleEdge verifies that one edge yields flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	g, ids := s.digraph(2, [][3]int64{{0, 1, 7}})

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, mf.Value())

	f, err := mf.FlowOn(ids[0])
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, f)
	require.Equal(s.T(), []int64{ids[0]}, mf.MinCutEdges())
	require.Equal(s.T(), []int64{0}, mf.SourcePartition())
}

// TestMultiPath verifies max flow over two partially disjoint paths.
func (s *DinicSuite) TestMultiPath() {
	g, _ := s.digraph(3, [][3]int64{{0, 1, 5}, {0, 2, 4}, {2, 1, 3}})

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8.0, mf.Value()) // 5 direct + 3 via vertex 2
}

// TestBottleneck verifies the classic diamond where the middle edge caps
// the total.
func (s *DinicSuite) TestBottleneck() {
	// 0->1 (10), 0->2 (10), 1->3 (4), 2->3 (9), 1->2 (2)
	g, _ := s.digraph(4, [][3]int64{
		{0, 1, 10}, {0, 2, 10}, {1, 3, 4}, {2, 3, 9}, {1, 2, 2},
	})

	mf, err := flow.Dinic(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 13.0, mf.Value())
}

// TestParallelEdgesEachCarryOwnFlow checks per-edge flows on a multigraph.
func (s *DinicSuite) TestParallelEdgesEachCarryOwnFlow() {
	g, ids := s.digraph(2, [][3]int64{{0, 1, 2}, {0, 1, 5}}, core.WithMultiEdges())

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, mf.Value())

	f0, err := mf.FlowOn(ids[0])
	require.NoError(s.T(), err)
	f1, err := mf.FlowOn(ids[1])
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, f0)
	require.Equal(s.T(), 5.0, f1)
}

// TestUndirectedPath verifies undirected edges carry flow either way.
func (s *DinicSuite) TestUndirectedPath() {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 3; i++ {
		_, err := g.AddVertex()
		require.NoError(s.T(), err)
	}
	e0, err := g.AddEdge(0, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetEdgeWeight(e0, 3))
	// Inserted as (2, 1): flow toward 2 runs against the stored orientation.
	e1, err := g.AddEdge(2, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetEdgeWeight(e1, 5))

	mf, err := flow.Dinic(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, mf.Value())

	f1, err := mf.FlowOn(e1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), -3.0, f1)
}

// TestUnweightedUnitCapacities verifies defaulted weights act as unit
// capacities, so the value counts edge-disjoint paths.
func (s *DinicSuite) TestUnweightedUnitCapacities() {
	g := core.NewGraph(core.WithDirected())
	for i := 0; i < 4; i++ {
		_, err := g.AddVertex()
		require.NoError(s.T(), err)
	}
	for _, e := range [][2]int64{{0, 1}, {1, 3}, {0, 2}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(s.T(), err)
	}

	mf, err := flow.Dinic(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, mf.Value())
}

// TestZeroCapacity ensures a zero-capacity edge yields zero flow but still
// answers FlowOn.
func (s *DinicSuite) TestZeroCapacity() {
	g, ids := s.digraph(2, [][3]int64{{0, 1, 0}})

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf.Value())

	f, err := mf.FlowOn(ids[0])
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, f)
}

// TestSelfLoopIgnored ensures loops never carry flow.
func (s *DinicSuite) TestSelfLoopIgnored() {
	g, ids := s.digraph(2, [][3]int64{{0, 0, 9}, {0, 1, 4}}, core.WithSelfLoops())

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, mf.Value())

	f, err := mf.FlowOn(ids[0])
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, f)
}

// TestMinCutSeparates verifies the cut crosses the bottleneck, not the
// wide entry edges.
func (s *DinicSuite) TestMinCutSeparates() {
	// Wide entry 0->1 (100), bottleneck 1->2 (1), wide exit 2->3 (100).
	g, ids := s.digraph(4, [][3]int64{{0, 1, 100}, {1, 2, 1}, {2, 3, 100}})

	value, cut, err := flow.MinCut(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, value)
	require.Equal(s.T(), []int64{ids[1]}, cut)

	mf, err := flow.Dinic(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int64{0, 1}, mf.SourcePartition())
	require.True(s.T(), mf.InSourcePartition(1))
	require.False(s.T(), mf.InSourcePartition(2))
}

// TestDisconnectedSink yields zero flow and a source-only partition.
func (s *DinicSuite) TestDisconnectedSink() {
	g, _ := s.digraph(3, [][3]int64{{0, 1, 5}})
	_, err := g.AddVertex() // vertex 3, never connected
	require.NoError(s.T(), err)

	mf, err := flow.Dinic(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, mf.Value())
	require.Empty(s.T(), mf.MinCutEdges())
}

// TestValidation covers the argument taxonomy.
func (s *DinicSuite) TestValidation() {
	g, _ := s.digraph(2, [][3]int64{{0, 1, 3}})

	_, err := flow.Dinic(g, 9, 1)
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
	require.ErrorIs(s.T(), err, status.ErrIllegalArgument)

	_, err = flow.Dinic(g, 0, 9)
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.Dinic(g, 0, 0)
	require.ErrorIs(s.T(), err, flow.ErrSourceEqualsSink)
}

// TestNegativeCapacity rejects negative edge weights.
func (s *DinicSuite) TestNegativeCapacity() {
	g, _ := s.digraph(2, [][3]int64{{0, 1, -4}})

	_, err := flow.Dinic(g, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrNegativeCapacity)
}

// TestFlowOnUnknownEdge rejects ids outside the graph.
func (s *DinicSuite) TestFlowOnUnknownEdge() {
	g, _ := s.digraph(2, [][3]int64{{0, 1, 3}})

	mf, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	_, err = mf.FlowOn(77)
	require.ErrorIs(s.T(), err, flow.ErrEdgeNotFound)
}

// TestContextCancellation aborts before any augmentation.
func (s *DinicSuite) TestContextCancellation() {
	g, _ := s.digraph(2, [][3]int64{{0, 1, 3}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.Dinic(g, 0, 1, flow.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
