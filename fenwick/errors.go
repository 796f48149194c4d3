package fenwick

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
	// ErrNotInvertible indicates an operation that needs Op.Inverse on
	// an operator without one.
	ErrNotInvertible = errors.New("fenwick: operator has no inverse")
	// ErrSizeMismatch indicates a negative size or a rebuild with the
	// wrong number of values.
	ErrSizeMismatch = errors.New("fenwick: size mismatch")
)
