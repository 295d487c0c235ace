package status

import "errors"

// Taxonomy kinds. Package-level sentinels elsewhere in the module wrap exactly
// one of these via fmt.Errorf("pkg: ...: %w", kind).
var (
	// ErrIllegalArgument indicates a malformed or out-of-domain parameter.
	ErrIllegalArgument = errors.New("status: illegal argument")

	// ErrUnsupportedOperation indicates an operation incompatible with the
	// current graph policy flags or view restrictions.
	ErrUnsupportedOperation = errors.New("status: unsupported operation")

	// ErrIndexOutOfBounds indicates positional access beyond a collection size.
	ErrIndexOutOfBounds = errors.New("status: index out of bounds")

	// ErrNoSuchElement indicates an exhausted iterator or a lookup miss.
	ErrNoSuchElement = errors.New("status: no such element")

	// ErrNilPointer indicates a nil graph, iterator, or result was supplied.
	ErrNilPointer = errors.New("status: nil pointer")

	// ErrClassCast indicates a value was retrieved with the wrong expected
	// kind from a polymorphic container.
	ErrClassCast = errors.New("status: class cast")

	// ErrNegativeCycle indicates a shortest-path computation detected a
	// negative-weight cycle and cannot proceed.
	ErrNegativeCycle = errors.New("status: negative cycle detected")

	// ErrTimeout indicates an enumeration exceeded its caller-supplied budget.
	ErrTimeout = errors.New("status: timeout")

	// ErrInvalidHandle indicates a stale, unknown, or double-released handle.
	ErrInvalidHandle = errors.New("status: invalid handle")
)

// Code is the numeric status a foreign-call boundary reports. Success is 0;
// every nonzero value belongs to the closed set below.
type Code int32

const (
	Success Code = iota
	Error
	IllegalArgument
	UnsupportedOperation
	IndexOutOfBounds
	NoSuchElement
	NullPointer
	ClassCast
	IOError
	ExportError
	ImportError
	NegativeCycleDetected
)

// String returns the boundary-level name of the code.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case Error:
		return "ERROR"
	case IllegalArgument:
		return "ILLEGAL_ARGUMENT"
	case UnsupportedOperation:
		return "UNSUPPORTED_OPERATION"
	case IndexOutOfBounds:
		return "INDEX_OUT_OF_BOUNDS"
	case NoSuchElement:
		return "NO_SUCH_ELEMENT"
	case NullPointer:
		return "NULL_POINTER"
	case ClassCast:
		return "CLASS_CAST"
	case IOError:
		return "IO_ERROR"
	case ExportError:
		return "EXPORT_ERROR"
	case ImportError:
		return "IMPORT_ERROR"
	case NegativeCycleDetected:
		return "NEGATIVE_CYCLE_DETECTED"
	}

	return "UNKNOWN"
}

// CodeOf maps err onto the closed numeric set. A nil error is Success; an
// error wrapping none of the taxonomy kinds is the generic Error.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrIllegalArgument), errors.Is(err, ErrInvalidHandle):
		return IllegalArgument
	case errors.Is(err, ErrUnsupportedOperation):
		return UnsupportedOperation
	case errors.Is(err, ErrIndexOutOfBounds):
		return IndexOutOfBounds
	case errors.Is(err, ErrNoSuchElement):
		return NoSuchElement
	case errors.Is(err, ErrNilPointer):
		return NullPointer
	case errors.Is(err, ErrClassCast):
		return ClassCast
	case errors.Is(err, ErrNegativeCycle):
		return NegativeCycleDetected
	default:
		return Error
	}
}
