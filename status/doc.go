// Package status defines the closed error taxonomy shared by every grapht
// package, together with the numeric status codes a C-compatible boundary
// layer reports instead of errors.
//
// Every sentinel error exported by the engine wraps exactly one of the kinds
// declared here, so callers classify failures with errors.Is against a single
// closed set, and CodeOf maps any engine error onto the numeric codes.
//
// Canonical mapping per failure condition:
//
//	malformed parameter (negative k, bad probability)  → ErrIllegalArgument
//	operation vs. graph policy (unweighted+SetWeight,
//	unmodifiable+mutate, loop/multi-edge violation)    → ErrUnsupportedOperation
//	positional access beyond collection size           → ErrIndexOutOfBounds
//	iterator exhausted, lookup miss                    → ErrNoSuchElement
//	stale, unknown, or double-released handle          → ErrInvalidHandle
//	wrong expected kind from a polymorphic container   → ErrClassCast
//	negative cycle reachable during relaxation         → ErrNegativeCycle
//	enumeration exceeded the caller's time budget      → ErrTimeout
//	concurrent mutation, cancellation, everything else → Error (generic)
//
// ErrInvalidHandle and ErrTimeout have no dedicated code in the closed numeric
// set and map to IllegalArgument and Error respectively.
package status
