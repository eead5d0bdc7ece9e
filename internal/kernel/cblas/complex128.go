package cblas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

// backendZ is the complex128 vendor realization. Symv, symm and syr have
// no complex counterpart in standard BLAS over full-stored matrices; the
// embedded sequential realization serves them.
type backendZ struct {
	seq.Backend[complex128]
	impl blas.Complex128
}

func newBackendZ() *backendZ {
	return &backendZ{impl: cblas128.Implementation()}
}

func (b *backendZ) Amax(x *dense.Vector[complex128]) (int, error) {
	if err := dense.CheckVectors(x); err != nil {
		return -1, err
	}
	if x.Len() == 0 {
		return -1, nil
	}
	return b.impl.Izamax(x.Len(), x.Data(), 1), nil
}

func (b *backendZ) Asum(x *dense.Vector[complex128]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return b.impl.Dzasum(x.Len(), x.Data(), 1), nil
}

func (b *backendZ) Axpy(x, y *dense.Vector[complex128], alpha complex128) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Zaxpy(x.Len(), alpha, x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backendZ) Copy(x, y *dense.Vector[complex128]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Zcopy(x.Len(), x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backendZ) Dot(x, y *dense.Vector[complex128]) (complex128, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Zdotu(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backendZ) Dotc(x, y *dense.Vector[complex128]) (complex128, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Zdotc(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backendZ) Nrm2(x *dense.Vector[complex128]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return b.impl.Dznrm2(x.Len(), x.Data(), 1), nil
}

func (b *backendZ) Scal(x *dense.Vector[complex128], alpha complex128) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	b.impl.Zscal(x.Len(), alpha, x.Data(), 1)
	return nil
}

func (b *backendZ) Gemv(a *dense.Matrix[complex128], x, y *dense.Vector[complex128]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Zgemv(blas.NoTrans, a.Rows(), a.Cols(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backendZ) Ger(x, y *dense.Vector[complex128], a *dense.Matrix[complex128]) error {
	if err := dense.CheckGer(x, y, a); err != nil {
		return err
	}
	b.impl.Zgeru(a.Rows(), a.Cols(), 1, x.Data(), 1, y.Data(), 1, a.Data(), a.Cols())
	return nil
}

func (b *backendZ) Trmv(a *dense.Matrix[complex128], x *dense.Vector[complex128]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	b.impl.Ztrmv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backendZ) Trsv(a *dense.Matrix[complex128], x *dense.Vector[complex128]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	b.impl.Ztrsv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backendZ) Gemm(a, bm, c *dense.Matrix[complex128]) error {
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Zgemm(blas.NoTrans, blas.NoTrans, a.Rows(), bm.Cols(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backendZ) Syrk(a, c *dense.Matrix[complex128]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Zgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), a.Data(), a.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backendZ) Syr2k(a, bm, c *dense.Matrix[complex128]) error {
	if err := dense.CheckSameShape(a, bm); err != nil {
		return err
	}
	if c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Zgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	b.impl.Zgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, bm.Data(), bm.Cols(), a.Data(), a.Cols(), 1, c.Data(), c.Cols())
	return nil
}

func (b *backendZ) Trmm(a, bm, c *dense.Matrix[complex128]) error {
	if err := dense.CheckTrm(a, bm, c); err != nil {
		return err
	}
	copy(c.Data(), bm.Data())
	b.impl.Ztrmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		c.Rows(), c.Cols(), 1, a.Data(), a.Cols(), c.Data(), c.Cols())
	return nil
}

func (b *backendZ) Trsm(a, bm, x *dense.Matrix[complex128]) error {
	if err := dense.CheckTrm(a, bm, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	copy(x.Data(), bm.Data())
	b.impl.Ztrsm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		x.Rows(), x.Cols(), 1, a.Data(), a.Cols(), x.Data(), x.Cols())
	return nil
}
