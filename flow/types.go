package flow

import (
	"context"
	"fmt"

	"github.com/korifey/grapht/status"
)

// Sentinel errors for max-flow execution.
var (
	// ErrSourceNotFound is returned when the source vertex is missing.
	ErrSourceNotFound = fmt.Errorf("flow: source vertex not found: %w", status.ErrIllegalArgument)

	// ErrSinkNotFound is returned when the sink vertex is missing.
	ErrSinkNotFound = fmt.Errorf("flow: sink vertex not found: %w", status.ErrIllegalArgument)

	// ErrSourceEqualsSink is returned when source and sink coincide.
	ErrSourceEqualsSink = fmt.Errorf("flow: source equals sink: %w", status.ErrIllegalArgument)

	// ErrNegativeCapacity is returned when an edge weight is below zero.
	ErrNegativeCapacity = fmt.Errorf("flow: negative edge capacity: %w", status.ErrIllegalArgument)

	// ErrEdgeNotFound is returned by FlowOn for an edge id the computation
	// never saw.
	ErrEdgeNotFound = fmt.Errorf("flow: edge not found: %w", status.ErrIllegalArgument)
)

// defaultEpsilon is the capacity resolution: residuals at or below it are
// treated as zero.
const defaultEpsilon = 1e-9

// Option configures a max-flow run.
type Option func(*options)

type options struct {
	ctx     context.Context
	epsilon float64
}

// WithContext attaches a context checked between augmentation phases.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithEpsilon overrides the capacity resolution.
func WithEpsilon(eps float64) Option {
	return func(o *options) { o.epsilon = eps }
}

func newOptions(opts ...Option) options {
	o := options{ctx: context.Background(), epsilon: defaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	if o.epsilon <= 0 {
		o.epsilon = defaultEpsilon
	}

	return o
}

// MaxFlow is an immutable max-flow/min-cut result.
type MaxFlow struct {
	source, sink int64
	value        float64
	flow         map[int64]float64
	sourceSide   map[int64]struct{}
	cutEdges     []int64
}

// Value returns the total flow from source to sink.
func (m *MaxFlow) Value() float64 { return m.value }

// Source returns the source vertex.
func (m *MaxFlow) Source() int64 { return m.source }

// Sink returns the sink vertex.
func (m *MaxFlow) Sink() int64 { return m.sink }

// FlowOn returns the flow assigned to edge e in its source-to-target
// orientation. Undirected edges report a negative value when the flow runs
// target-to-source.
func (m *MaxFlow) FlowOn(e int64) (float64, error) {
	f, ok := m.flow[e]
	if !ok {
		return 0, fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}

	return f, nil
}

// Flow returns a copy of the per-edge flow map.
func (m *MaxFlow) Flow() map[int64]float64 {
	out := make(map[int64]float64, len(m.flow))
	for e, f := range m.flow {
		out[e] = f
	}

	return out
}

// InSourcePartition reports whether v lies on the source side of the
// minimum cut.
func (m *MaxFlow) InSourcePartition(v int64) bool {
	_, ok := m.sourceSide[v]

	return ok
}

// SourcePartition returns the source side of the minimum cut in ascending
// vertex order.
func (m *MaxFlow) SourcePartition() []int64 {
	out := make([]int64, 0, len(m.sourceSide))
	for v := range m.sourceSide {
		out = append(out, v)
	}
	sortInt64s(out)

	return out
}

// MinCutEdges returns the saturated edges crossing the cut, ascending by id.
// Their capacities sum to Value.
func (m *MaxFlow) MinCutEdges() []int64 {
	return append([]int64(nil), m.cutEdges...)
}
