package seq

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

func (Backend[T]) Gemm(a, b, c *dense.Matrix[T]) error {
	if err := dense.CheckGemm(a, b, c); err != nil {
		return err
	}
	GemmRange(a, b, c, 0, a.Rows())
	return nil
}

// GemmRange computes C[i,:] = A[i,:]*B for rows [lo, hi) with an ikj loop
// so the inner updates run over contiguous rows of B and C.
func GemmRange[T scalar.Scalar](a, b, c *dense.Matrix[T], lo, hi int) {
	k := a.Cols()
	for i := lo; i < hi; i++ {
		arow := a.Row(i)
		crow := c.Row(i)
		for j := range crow {
			crow[j] = 0
		}
		for p := 0; p < k; p++ {
			AxpyRange(b.Row(p), crow, arow[p], 0, len(crow))
		}
	}
}

func (b Backend[T]) Symm(am, bm, c *dense.Matrix[T]) error {
	if err := dense.CheckSquare(am); err != nil {
		return err
	}
	// Full-stored symmetric A; plain product applies.
	return b.Gemm(am, bm, c)
}

func (Backend[T]) Syrk(a, c *dense.Matrix[T]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return fmt.Errorf("%w: C is %dx%d, want %dx%d",
			dense.ErrDimensionMismatch, c.Rows(), c.Cols(), a.Rows(), a.Rows())
	}
	SyrkRange(a, c, 0, a.Rows())
	return nil
}

// SyrkRange computes C[i,j] = A[i,:]*A[j,:] for rows [lo, hi) of C.
func SyrkRange[T scalar.Scalar](a, c *dense.Matrix[T], lo, hi int) {
	k := a.Cols()
	for i := lo; i < hi; i++ {
		arow := a.Row(i)
		crow := c.Row(i)
		for j := range crow {
			crow[j] = DotRange(arow, a.Row(j), 0, k)
		}
	}
}

func (Backend[T]) Syr2k(a, b, c *dense.Matrix[T]) error {
	if err := dense.CheckSameShape(a, b); err != nil {
		return err
	}
	if c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return fmt.Errorf("%w: C is %dx%d, want %dx%d",
			dense.ErrDimensionMismatch, c.Rows(), c.Cols(), a.Rows(), a.Rows())
	}
	Syr2kRange(a, b, c, 0, a.Rows())
	return nil
}

// Syr2kRange computes C[i,j] = A[i,:]*B[j,:] + B[i,:]*A[j,:] for rows
// [lo, hi) of C.
func Syr2kRange[T scalar.Scalar](a, b, c *dense.Matrix[T], lo, hi int) {
	k := a.Cols()
	for i := lo; i < hi; i++ {
		arow := a.Row(i)
		brow := b.Row(i)
		crow := c.Row(i)
		for j := range crow {
			crow[j] = DotRange(arow, b.Row(j), 0, k) + DotRange(brow, a.Row(j), 0, k)
		}
	}
}

func (Backend[T]) Trmm(a, b, c *dense.Matrix[T]) error {
	if err := dense.CheckTrm(a, b, c); err != nil {
		return err
	}
	n := a.Rows()
	for i := 0; i < n; i++ {
		arow := a.Row(i)
		crow := c.Row(i)
		for j := range crow {
			crow[j] = 0
		}
		for p := i; p < n; p++ {
			AxpyRange(b.Row(p), crow, arow[p], 0, len(crow))
		}
	}
	return nil
}

func (Backend[T]) Trsm(a, b, x *dense.Matrix[T]) error {
	if err := dense.CheckTrm(a, b, x); err != nil {
		return err
	}
	n := a.Rows()
	for i := 0; i < n; i++ {
		if a.At(i, i) == 0 {
			return fmt.Errorf("%w: zero diagonal at %d", dense.ErrSingular, i)
		}
	}
	TrsmCols(a, b, x, 0, b.Cols())
	return nil
}

// TrsmCols back-substitutes U*X = B for columns [lo, hi) of B. Columns are
// independent, which is what the parallel realization chunks over.
func TrsmCols[T scalar.Scalar](a, b, x *dense.Matrix[T], lo, hi int) {
	n := a.Rows()
	for j := lo; j < hi; j++ {
		for i := n - 1; i >= 0; i-- {
			row := a.Row(i)
			s := b.At(i, j)
			for p := i + 1; p < n; p++ {
				s -= row[p] * x.At(p, j)
			}
			x.Set(i, j, s/row[i])
		}
	}
}
