package cblas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas64"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

type backendC struct {
	seq.Backend[complex64]
	impl blas.Complex64
}

func newBackendC() *backendC {
	return &backendC{impl: cblas64.Implementation()}
}

func (b *backendC) Amax(x *dense.Vector[complex64]) (int, error) {
	if err := dense.CheckVectors(x); err != nil {
		return -1, err
	}
	if x.Len() == 0 {
		return -1, nil
	}
	return b.impl.Icamax(x.Len(), x.Data(), 1), nil
}

func (b *backendC) Asum(x *dense.Vector[complex64]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return float64(b.impl.Scasum(x.Len(), x.Data(), 1)), nil
}

func (b *backendC) Axpy(x, y *dense.Vector[complex64], alpha complex64) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Caxpy(x.Len(), alpha, x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backendC) Copy(x, y *dense.Vector[complex64]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Ccopy(x.Len(), x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backendC) Dot(x, y *dense.Vector[complex64]) (complex64, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Cdotu(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backendC) Dotc(x, y *dense.Vector[complex64]) (complex64, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Cdotc(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backendC) Nrm2(x *dense.Vector[complex64]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return float64(b.impl.Scnrm2(x.Len(), x.Data(), 1)), nil
}

func (b *backendC) Scal(x *dense.Vector[complex64], alpha complex64) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	b.impl.Cscal(x.Len(), alpha, x.Data(), 1)
	return nil
}

func (b *backendC) Gemv(a *dense.Matrix[complex64], x, y *dense.Vector[complex64]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Cgemv(blas.NoTrans, a.Rows(), a.Cols(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backendC) Ger(x, y *dense.Vector[complex64], a *dense.Matrix[complex64]) error {
	if err := dense.CheckGer(x, y, a); err != nil {
		return err
	}
	b.impl.Cgeru(a.Rows(), a.Cols(), 1, x.Data(), 1, y.Data(), 1, a.Data(), a.Cols())
	return nil
}

func (b *backendC) Trmv(a *dense.Matrix[complex64], x *dense.Vector[complex64]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	b.impl.Ctrmv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backendC) Trsv(a *dense.Matrix[complex64], x *dense.Vector[complex64]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	b.impl.Ctrsv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backendC) Gemm(a, bm, c *dense.Matrix[complex64]) error {
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Cgemm(blas.NoTrans, blas.NoTrans, a.Rows(), bm.Cols(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backendC) Syrk(a, c *dense.Matrix[complex64]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Cgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), a.Data(), a.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backendC) Syr2k(a, bm, c *dense.Matrix[complex64]) error {
	if err := dense.CheckSameShape(a, bm); err != nil {
		return err
	}
	if c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Cgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	b.impl.Cgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, bm.Data(), bm.Cols(), a.Data(), a.Cols(), 1, c.Data(), c.Cols())
	return nil
}

func (b *backendC) Trmm(a, bm, c *dense.Matrix[complex64]) error {
	if err := dense.CheckTrm(a, bm, c); err != nil {
		return err
	}
	copy(c.Data(), bm.Data())
	b.impl.Ctrmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		c.Rows(), c.Cols(), 1, a.Data(), a.Cols(), c.Data(), c.Cols())
	return nil
}

func (b *backendC) Trsm(a, bm, x *dense.Matrix[complex64]) error {
	if err := dense.CheckTrm(a, bm, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	copy(x.Data(), bm.Data())
	b.impl.Ctrsm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		x.Rows(), x.Cols(), 1, a.Data(), a.Cols(), x.Data(), x.Cols())
	return nil
}
