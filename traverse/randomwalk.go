// Random-walk iterator: a pull-driven, possibly infinite vertex sequence.
package traverse

import (
	"math/rand"
	"time"

	"github.com/korifey/grapht/core"
	"github.com/korifey/grapht/iterate"
)

type randomWalkIterator struct {
	g       core.Graph
	snap    snapshot
	rng     *rand.Rand
	current int64
	steps   int64
	bound   int64
	bounded bool
	stuck   bool
}

// RandomWalk returns an iterator performing a uniform random walk from
// start; the first element produced is start itself, followed by up to
// MaxSteps random moves when bounded. With WithSeed the walk replays
// deterministically. An unbounded walk is infinite until it reaches a vertex
// with no outgoing edges — the walk is pull-driven, no background work
// happens, so the caller cancels simply by ceasing to call Next.
func RandomWalk(g core.Graph, start int64, opts ...Option) (iterate.Iterator[int64], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if !g.ContainsVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	o := buildOptions(opts)
	if o.bounded && o.maxSteps < 0 {
		return nil, ErrNegativeSteps
	}
	seed := o.seed
	if !o.hasSeed {
		seed = time.Now().UnixNano()
	}

	return &randomWalkIterator{
		g:       g,
		snap:    snap(g),
		rng:     rand.New(rand.NewSource(seed)),
		current: start,
		bound:   o.maxSteps,
		bounded: o.bounded,
	}, nil
}

func (it *randomWalkIterator) HasNext() bool {
	if it.stuck {
		return false
	}
	if it.bounded && it.steps > it.bound {
		return false
	}

	return true
}

func (it *randomWalkIterator) Next() (int64, error) {
	if it.snap.changed(it.g) {
		return 0, core.ErrConcurrentMutation
	}
	if !it.HasNext() {
		return 0, iterate.ErrExhausted
	}
	v := it.current
	it.steps++

	next, err := successors(it.g, v)
	if err != nil {
		return 0, err
	}
	if len(next) == 0 {
		// Dead end: the walk terminates after emitting v.
		it.stuck = true
	} else {
		it.current = next[it.rng.Intn(len(next))]
	}

	return v, nil
}
