package operator

import "errors"

// Domain errors for operator construction. All are deterministic functions
// of the inputs; none is retryable.
var (
	// ErrUnsupportedRole indicates a (kind, role) pair with no defined
	// elementary operator, e.g. a ladder operator on a two-level system.
	ErrUnsupportedRole = errors.New("operator: unsupported operator role for subsystem kind")

	// ErrUnknownSubsystem indicates a term factor naming a subsystem that
	// is not part of the target shape. Always a model-definition bug.
	ErrUnknownSubsystem = errors.New("operator: term references unknown subsystem")

	// ErrShapeMismatch indicates an elementwise combination of operators
	// with differing dimensions.
	ErrShapeMismatch = errors.New("operator: operator shapes do not match")

	// ErrDimensionMismatch indicates a local factor whose dimension
	// disagrees with its subsystem's declared local dimension.
	ErrDimensionMismatch = errors.New("operator: local operator dimension does not match subsystem")

	// ErrBadDimension indicates a requested local dimension below the
	// minimum for the operator's kind.
	ErrBadDimension = errors.New("operator: invalid local dimension")

	// ErrEmptySum indicates a summation over zero operators.
	ErrEmptySum = errors.New("operator: empty operator sum")
)
