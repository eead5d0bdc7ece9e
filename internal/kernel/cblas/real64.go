package cblas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

type backend64 struct {
	seq.Backend[float64]
	impl blas.Float64
}

func newBackend64() *backend64 {
	return &backend64{impl: blas64.Implementation()}
}

func (b *backend64) Amax(x *dense.Vector[float64]) (int, error) {
	if err := dense.CheckVectors(x); err != nil {
		return -1, err
	}
	if x.Len() == 0 {
		return -1, nil
	}
	return b.impl.Idamax(x.Len(), x.Data(), 1), nil
}

func (b *backend64) Asum(x *dense.Vector[float64]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return b.impl.Dasum(x.Len(), x.Data(), 1), nil
}

func (b *backend64) Axpy(x, y *dense.Vector[float64], alpha float64) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Daxpy(x.Len(), alpha, x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backend64) Copy(x, y *dense.Vector[float64]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Dcopy(x.Len(), x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backend64) Dot(x, y *dense.Vector[float64]) (float64, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Ddot(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backend64) Dotc(x, y *dense.Vector[float64]) (float64, error) {
	return b.Dot(x, y)
}

func (b *backend64) Nrm1(x *dense.Vector[float64]) (float64, error) {
	return b.Asum(x)
}

func (b *backend64) Nrm2(x *dense.Vector[float64]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return b.impl.Dnrm2(x.Len(), x.Data(), 1), nil
}

func (b *backend64) Scal(x *dense.Vector[float64], alpha float64) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	b.impl.Dscal(x.Len(), alpha, x.Data(), 1)
	return nil
}

func (b *backend64) Gemv(a *dense.Matrix[float64], x, y *dense.Vector[float64]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Dgemv(blas.NoTrans, a.Rows(), a.Cols(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backend64) Ger(x, y *dense.Vector[float64], a *dense.Matrix[float64]) error {
	if err := dense.CheckGer(x, y, a); err != nil {
		return err
	}
	b.impl.Dger(a.Rows(), a.Cols(), 1, x.Data(), 1, y.Data(), 1, a.Data(), a.Cols())
	return nil
}

func (b *backend64) Symv(a *dense.Matrix[float64], x, y *dense.Vector[float64]) error {
	if err := dense.CheckSquare(a); err != nil {
		return err
	}
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Dsymv(blas.Upper, a.Rows(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backend64) Trmv(a *dense.Matrix[float64], x *dense.Vector[float64]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	b.impl.Dtrmv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backend64) Trsv(a *dense.Matrix[float64], x *dense.Vector[float64]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	b.impl.Dtrsv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backend64) Gemm(a, bm, c *dense.Matrix[float64]) error {
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Dgemm(blas.NoTrans, blas.NoTrans, a.Rows(), bm.Cols(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend64) Symm(a, bm, c *dense.Matrix[float64]) error {
	if err := dense.CheckSquare(a); err != nil {
		return err
	}
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Dsymm(blas.Left, blas.Upper, c.Rows(), c.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend64) Syrk(a, c *dense.Matrix[float64]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	// A*A^T through gemm so the full C is produced, not one triangle.
	b.impl.Dgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), a.Data(), a.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend64) Syr2k(a, bm, c *dense.Matrix[float64]) error {
	if err := dense.CheckSameShape(a, bm); err != nil {
		return err
	}
	if c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Dgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	b.impl.Dgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, bm.Data(), bm.Cols(), a.Data(), a.Cols(), 1, c.Data(), c.Cols())
	return nil
}

func (b *backend64) Trmm(a, bm, c *dense.Matrix[float64]) error {
	if err := dense.CheckTrm(a, bm, c); err != nil {
		return err
	}
	copy(c.Data(), bm.Data())
	b.impl.Dtrmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		c.Rows(), c.Cols(), 1, a.Data(), a.Cols(), c.Data(), c.Cols())
	return nil
}

func (b *backend64) Trsm(a, bm, x *dense.Matrix[float64]) error {
	if err := dense.CheckTrm(a, bm, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	copy(x.Data(), bm.Data())
	b.impl.Dtrsm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		x.Rows(), x.Cols(), 1, a.Data(), a.Cols(), x.Data(), x.Cols())
	return nil
}
