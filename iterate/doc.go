// Package iterate defines the two-method pull iterator protocol used by every
// vertex, edge, and result sequence in grapht.
//
// State machine: a fresh iterator yields elements while HasNext reports true;
// once HasNext reports false the iterator is exhausted and every further Next
// call fails with ErrExhausted. Iterators are single-consumer and never spawn
// goroutines: an infinite iterator (random walk) is cancelled simply by the
// caller ceasing to call Next.
package iterate
