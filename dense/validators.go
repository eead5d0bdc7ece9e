package dense

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/scalar"
)

// Shape validators shared by the kernel realizations. The facade never
// shape-checks; each kernel validates at entry with these helpers so every
// policy reports the same error for the same malformed call.

// CheckVectors rejects nil vectors.
func CheckVectors[T scalar.Scalar](vs ...*Vector[T]) error {
	for _, v := range vs {
		if v == nil {
			return ErrNilContainer
		}
	}
	return nil
}

// CheckSameLen rejects nil vectors and unequal lengths.
func CheckSameLen[T scalar.Scalar](vs ...*Vector[T]) error {
	if err := CheckVectors(vs...); err != nil {
		return err
	}
	n := vs[0].Len()
	for _, v := range vs[1:] {
		if v.Len() != n {
			return fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, n, v.Len())
		}
	}
	return nil
}

// CheckGemv validates y = A*x shapes.
func CheckGemv[T scalar.Scalar](a *Matrix[T], x, y *Vector[T]) error {
	if a == nil {
		return ErrNilContainer
	}
	if err := CheckVectors(x, y); err != nil {
		return err
	}
	if a.Cols() != x.Len() || a.Rows() != y.Len() {
		return fmt.Errorf("%w: A is %dx%d, x has %d, y has %d",
			ErrDimensionMismatch, a.Rows(), a.Cols(), x.Len(), y.Len())
	}
	return nil
}

// CheckGer validates A += x*y^T shapes.
func CheckGer[T scalar.Scalar](x, y *Vector[T], a *Matrix[T]) error {
	if a == nil {
		return ErrNilContainer
	}
	if err := CheckVectors(x, y); err != nil {
		return err
	}
	if a.Rows() != x.Len() || a.Cols() != y.Len() {
		return fmt.Errorf("%w: A is %dx%d, x has %d, y has %d",
			ErrDimensionMismatch, a.Rows(), a.Cols(), x.Len(), y.Len())
	}
	return nil
}

// CheckSquare rejects non-square triangular operands.
func CheckSquare[T scalar.Scalar](a *Matrix[T]) error {
	if a == nil {
		return ErrNilContainer
	}
	if a.Rows() != a.Cols() {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, a.Rows(), a.Cols())
	}
	return nil
}

// CheckTrv validates an in-place triangular matrix-vector shape.
func CheckTrv[T scalar.Scalar](a *Matrix[T], x *Vector[T]) error {
	if err := CheckSquare(a); err != nil {
		return err
	}
	if err := CheckVectors(x); err != nil {
		return err
	}
	if a.Rows() != x.Len() {
		return fmt.Errorf("%w: A is %dx%d, x has %d", ErrDimensionMismatch, a.Rows(), a.Cols(), x.Len())
	}
	return nil
}

// CheckGemm validates C = A*B shapes.
func CheckGemm[T scalar.Scalar](a, b, c *Matrix[T]) error {
	if a == nil || b == nil || c == nil {
		return ErrNilContainer
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%w: inner dimensions %d and %d", ErrDimensionMismatch, a.Cols(), b.Rows())
	}
	if c.Rows() != a.Rows() || c.Cols() != b.Cols() {
		return fmt.Errorf("%w: C is %dx%d, want %dx%d",
			ErrDimensionMismatch, c.Rows(), c.Cols(), a.Rows(), b.Cols())
	}
	return nil
}

// CheckSameShape rejects nil matrices and differing shapes.
func CheckSameShape[T scalar.Scalar](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilContainer
		}
	}
	r, c := ms[0].Rows(), ms[0].Cols()
	for _, m := range ms[1:] {
		if m.Rows() != r || m.Cols() != c {
			return fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, r, c, m.Rows(), m.Cols())
		}
	}
	return nil
}

// CheckTrm validates C = op(A)*B shapes for a triangular A.
func CheckTrm[T scalar.Scalar](a, b, c *Matrix[T]) error {
	if err := CheckSquare(a); err != nil {
		return err
	}
	if b == nil || c == nil {
		return ErrNilContainer
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%w: A is %dx%d, B has %d rows", ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows())
	}
	return CheckSameShape(b, c)
}
