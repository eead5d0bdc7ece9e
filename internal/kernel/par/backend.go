package par

import (
	"math"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Backend implements the parallel-host realization set. Routines without
// an override here run on the embedded sequential realization.
type Backend[T scalar.Scalar] struct {
	seq.Backend[T]
}

func (b Backend[T]) Axpy(x, y *dense.Vector[T], alpha T) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Axpy(x, y, alpha)
	}
	xs, ys := x.Data(), y.Data()
	parallelRange(n, func(lo, hi int) {
		seq.AxpyRange(xs, ys, alpha, lo, hi)
	})
	return nil
}

func (b Backend[T]) Axpby(x, y, out *dense.Vector[T], alpha, beta T) error {
	if err := dense.CheckSameLen(x, y, out); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Axpby(x, y, out, alpha, beta)
	}
	xs, ys, os := x.Data(), y.Data(), out.Data()
	parallelRange(n, func(lo, hi int) {
		seq.AxpbyRange(xs, ys, os, alpha, beta, lo, hi)
	})
	return nil
}

func (b Backend[T]) Axpbypcz(x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error {
	if err := dense.CheckSameLen(x, y, z, out); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Axpbypcz(x, y, z, out, alpha, beta, gamma)
	}
	xs, ys, zs, os := x.Data(), y.Data(), z.Data(), out.Data()
	parallelRange(n, func(lo, hi int) {
		seq.AxpbypczRange(xs, ys, zs, os, alpha, beta, gamma, lo, hi)
	})
	return nil
}

func (b Backend[T]) Xmy(x, y, out *dense.Vector[T]) error {
	if err := dense.CheckSameLen(x, y, out); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Xmy(x, y, out)
	}
	xs, ys, os := x.Data(), y.Data(), out.Data()
	parallelRange(n, func(lo, hi int) {
		seq.XmyRange(xs, ys, os, lo, hi)
	})
	return nil
}

func (b Backend[T]) Copy(x, y *dense.Vector[T]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Copy(x, y)
	}
	xs, ys := x.Data(), y.Data()
	parallelRange(n, func(lo, hi int) {
		copy(ys[lo:hi], xs[lo:hi])
	})
	return nil
}

func (b Backend[T]) Fill(x *dense.Vector[T], alpha T) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Fill(x, alpha)
	}
	xs := x.Data()
	parallelRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			xs[i] = alpha
		}
	})
	return nil
}

func (b Backend[T]) Scal(x *dense.Vector[T], alpha T) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Scal(x, alpha)
	}
	xs := x.Data()
	parallelRange(n, func(lo, hi int) {
		seq.ScalRange(xs, alpha, lo, hi)
	})
	return nil
}

func (b Backend[T]) Dot(x, y *dense.Vector[T]) (T, error) {
	var zero T
	if err := dense.CheckSameLen(x, y); err != nil {
		return zero, err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Dot(x, y)
	}
	xs, ys := x.Data(), y.Data()
	parts := parallelPartials(n, func(lo, hi int) T {
		return seq.DotRange(xs, ys, lo, hi)
	})
	var sum T
	for _, p := range parts {
		sum += p
	}
	return sum, nil
}

func (b Backend[T]) Dotc(x, y *dense.Vector[T]) (T, error) {
	var zero T
	if err := dense.CheckSameLen(x, y); err != nil {
		return zero, err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Dotc(x, y)
	}
	xs, ys := x.Data(), y.Data()
	parts := parallelPartials(n, func(lo, hi int) T {
		return seq.DotcRange(xs, ys, lo, hi)
	})
	var sum T
	for _, p := range parts {
		sum += p
	}
	return sum, nil
}

func (b Backend[T]) Nrm2(x *dense.Vector[T]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	n := x.Len()
	if n < minParallelLen {
		return b.Backend.Nrm2(x)
	}
	xs := x.Data()
	parts := parallelPartials(n, func(lo, hi int) float64 {
		return seq.Nrm2SqRange(xs, lo, hi)
	})
	var sum float64
	for _, p := range parts {
		sum += p
	}
	return math.Sqrt(sum), nil
}

func (b Backend[T]) Gemv(a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	if a.Rows()*a.Cols() < minParallelLen {
		return b.Backend.Gemv(a, x, y)
	}
	xs, ys := x.Data(), y.Data()
	parallelRange(a.Rows(), func(lo, hi int) {
		seq.GemvRange(a, xs, ys, lo, hi)
	})
	return nil
}

func (b Backend[T]) Gemm(am, bm, c *dense.Matrix[T]) error {
	if err := dense.CheckGemm(am, bm, c); err != nil {
		return err
	}
	if am.Rows() < 2 || am.Rows()*bm.Cols() < minParallelLen {
		return b.Backend.Gemm(am, bm, c)
	}
	parallelRange(am.Rows(), func(lo, hi int) {
		seq.GemmRange(am, bm, c, lo, hi)
	})
	return nil
}

func (b Backend[T]) Symm(am, bm, c *dense.Matrix[T]) error {
	if err := dense.CheckSquare(am); err != nil {
		return err
	}
	return b.Gemm(am, bm, c)
}

func (b Backend[T]) Syrk(a, c *dense.Matrix[T]) error {
	if err := b.checkRankK(a, nil, c); err != nil {
		return err
	}
	if a.Rows() < 2 || a.Rows()*a.Rows() < minParallelLen {
		return b.Backend.Syrk(a, c)
	}
	parallelRange(a.Rows(), func(lo, hi int) {
		seq.SyrkRange(a, c, lo, hi)
	})
	return nil
}

func (b Backend[T]) Syr2k(a, bm, c *dense.Matrix[T]) error {
	if err := b.checkRankK(a, bm, c); err != nil {
		return err
	}
	if a.Rows() < 2 || a.Rows()*a.Rows() < minParallelLen {
		return b.Backend.Syr2k(a, bm, c)
	}
	parallelRange(a.Rows(), func(lo, hi int) {
		seq.Syr2kRange(a, bm, c, lo, hi)
	})
	return nil
}

func (b Backend[T]) Trsm(a, bm, x *dense.Matrix[T]) error {
	if err := dense.CheckTrm(a, bm, x); err != nil {
		return err
	}
	if bm.Cols() < 2 || a.Rows()*bm.Cols() < minParallelLen {
		return b.Backend.Trsm(a, bm, x)
	}
	for i := 0; i < a.Rows(); i++ {
		if a.At(i, i) == 0 {
			return b.Backend.Trsm(a, bm, x) // surface the singular diagnostic
		}
	}
	// Columns of the solve are independent.
	parallelRange(bm.Cols(), func(lo, hi int) {
		seq.TrsmCols(a, bm, x, lo, hi)
	})
	return nil
}

// checkRankK validates the rank-k update shapes. bm is nil for syrk.
func (b Backend[T]) checkRankK(a, bm, c *dense.Matrix[T]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if bm != nil {
		if err := dense.CheckSameShape(a, bm); err != nil {
			return err
		}
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	return nil
}
