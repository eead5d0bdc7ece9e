// Package dense: sentinel error set shared by the dispatch layer and the
// kernel realizations. Routines return these sentinels (possibly wrapped
// with fmt.Errorf("...: %w", Err)) and callers match them with errors.Is.
// Nothing in the library panics on a caller-triggered condition.
package dense

import "errors"

var (
	// ErrPolicyConflict is returned when the execution-policy tags of the
	// argument containers cannot be combined, or when an output container
	// lives in a different memory space than the resolved policy.
	ErrPolicyConflict = errors.New("dense: incompatible execution policies")

	// ErrTypeMismatch is returned when a requested result type does not
	// match the type the trait layer derives for the operands, e.g. asking
	// for a float64 norm of a []complex64.
	ErrTypeMismatch = errors.New("dense: element type mismatch")

	// ErrDimensionMismatch indicates non-conformant operand dimensions:
	// unequal vector lengths, or matrix shapes whose inner dimensions
	// differ. Detected by the kernel layer, never masked by dispatch.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a triangular routine received a
	// non-square triangular operand.
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrSingular signals a zero diagonal element in a triangular solve.
	ErrSingular = errors.New("dense: triangular matrix is singular")

	// ErrNilContainer indicates a nil vector or matrix argument. Nil is
	// the only way to reach an Unspecified tag, so every untagged operand
	// is reported under this sentinel regardless of argument position.
	ErrNilContainer = errors.New("dense: nil container")
)
