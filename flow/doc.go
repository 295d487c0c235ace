// Package flow computes maximum flows and minimum cuts over a core.Graph
// using Dinic's level-graph algorithm.
//
// Edge weights act as capacities. Directed edges carry flow source-to-sink
// only; undirected edges admit flow in either direction up to their
// capacity. Self-loops never carry flow and parallel edges each carry their
// own share, so per-edge flows remain addressable by edge id.
//
// The result object is immutable: Value reports the flow total, FlowOn the
// signed per-edge flow, SourcePartition the source side of a minimum cut
// (vertices still reachable in the residual network) and MinCutEdges the
// saturated edges crossing it.
//
// Long computations honor context cancellation via WithContext.
package flow
