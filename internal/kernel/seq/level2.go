package seq

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

func (Backend[T]) Gemv(a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	GemvRange(a, x.Data(), y.Data(), 0, a.Rows())
	return nil
}

// GemvRange computes ys[i] = A[i,:]*xs for rows [lo, hi).
func GemvRange[T scalar.Scalar](a *dense.Matrix[T], xs, ys []T, lo, hi int) {
	for i := lo; i < hi; i++ {
		row := a.Row(i)
		ys[i] = DotRange(row, xs, 0, len(row))
	}
}

func (Backend[T]) Ger(x, y *dense.Vector[T], a *dense.Matrix[T]) error {
	if err := dense.CheckGer(x, y, a); err != nil {
		return err
	}
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		AxpyRange(ys, a.Row(i), xs[i], 0, len(ys))
	}
	return nil
}

func (b Backend[T]) Symv(a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	if err := dense.CheckSquare(a); err != nil {
		return err
	}
	// A is full-stored; symmetry is the caller's contract.
	return b.Gemv(a, x, y)
}

func (Backend[T]) Syr(x *dense.Vector[T], a *dense.Matrix[T]) error {
	if err := dense.CheckGer(x, x, a); err != nil {
		return err
	}
	xs := x.Data()
	for i := range xs {
		AxpyRange(xs, a.Row(i), xs[i], 0, len(xs))
	}
	return nil
}

func (Backend[T]) Trmv(a *dense.Matrix[T], x *dense.Vector[T]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	// Ascending rows only read x[j] with j >= i, none of which have been
	// overwritten yet, so the update is safely in place.
	n := x.Len()
	xs := x.Data()
	for i := 0; i < n; i++ {
		row := a.Row(i)
		xs[i] = DotRange(row[i:], xs[i:], 0, n-i)
	}
	return nil
}

func (Backend[T]) Trsv(a *dense.Matrix[T], x *dense.Vector[T]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	n := x.Len()
	xs := x.Data()
	for i := n - 1; i >= 0; i-- {
		row := a.Row(i)
		if row[i] == 0 {
			return fmt.Errorf("%w: zero diagonal at %d", dense.ErrSingular, i)
		}
		s := xs[i]
		for j := i + 1; j < n; j++ {
			s -= row[j] * xs[j]
		}
		xs[i] = s / row[i]
	}
	return nil
}
