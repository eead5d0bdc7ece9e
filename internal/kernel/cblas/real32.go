package cblas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

type backend32 struct {
	seq.Backend[float32]
	impl blas.Float32
}

func newBackend32() *backend32 {
	return &backend32{impl: blas32.Implementation()}
}

func (b *backend32) Amax(x *dense.Vector[float32]) (int, error) {
	if err := dense.CheckVectors(x); err != nil {
		return -1, err
	}
	if x.Len() == 0 {
		return -1, nil
	}
	return b.impl.Isamax(x.Len(), x.Data(), 1), nil
}

func (b *backend32) Asum(x *dense.Vector[float32]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return float64(b.impl.Sasum(x.Len(), x.Data(), 1)), nil
}

func (b *backend32) Axpy(x, y *dense.Vector[float32], alpha float32) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Saxpy(x.Len(), alpha, x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backend32) Copy(x, y *dense.Vector[float32]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	b.impl.Scopy(x.Len(), x.Data(), 1, y.Data(), 1)
	return nil
}

func (b *backend32) Dot(x, y *dense.Vector[float32]) (float32, error) {
	if err := dense.CheckSameLen(x, y); err != nil {
		return 0, err
	}
	return b.impl.Sdot(x.Len(), x.Data(), 1, y.Data(), 1), nil
}

func (b *backend32) Dotc(x, y *dense.Vector[float32]) (float32, error) {
	return b.Dot(x, y)
}

func (b *backend32) Nrm1(x *dense.Vector[float32]) (float64, error) {
	return b.Asum(x)
}

func (b *backend32) Nrm2(x *dense.Vector[float32]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return float64(b.impl.Snrm2(x.Len(), x.Data(), 1)), nil
}

func (b *backend32) Scal(x *dense.Vector[float32], alpha float32) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	b.impl.Sscal(x.Len(), alpha, x.Data(), 1)
	return nil
}

func (b *backend32) Gemv(a *dense.Matrix[float32], x, y *dense.Vector[float32]) error {
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Sgemv(blas.NoTrans, a.Rows(), a.Cols(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backend32) Ger(x, y *dense.Vector[float32], a *dense.Matrix[float32]) error {
	if err := dense.CheckGer(x, y, a); err != nil {
		return err
	}
	b.impl.Sger(a.Rows(), a.Cols(), 1, x.Data(), 1, y.Data(), 1, a.Data(), a.Cols())
	return nil
}

func (b *backend32) Symv(a *dense.Matrix[float32], x, y *dense.Vector[float32]) error {
	if err := dense.CheckSquare(a); err != nil {
		return err
	}
	if err := dense.CheckGemv(a, x, y); err != nil {
		return err
	}
	b.impl.Ssymv(blas.Upper, a.Rows(), 1, a.Data(), a.Cols(), x.Data(), 1, 0, y.Data(), 1)
	return nil
}

func (b *backend32) Trmv(a *dense.Matrix[float32], x *dense.Vector[float32]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	b.impl.Strmv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backend32) Trsv(a *dense.Matrix[float32], x *dense.Vector[float32]) error {
	if err := dense.CheckTrv(a, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	b.impl.Strsv(blas.Upper, blas.NoTrans, blas.NonUnit, a.Rows(), a.Data(), a.Cols(), x.Data(), 1)
	return nil
}

func (b *backend32) Gemm(a, bm, c *dense.Matrix[float32]) error {
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Sgemm(blas.NoTrans, blas.NoTrans, a.Rows(), bm.Cols(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend32) Symm(a, bm, c *dense.Matrix[float32]) error {
	if err := dense.CheckSquare(a); err != nil {
		return err
	}
	if err := dense.CheckGemm(a, bm, c); err != nil {
		return err
	}
	b.impl.Ssymm(blas.Left, blas.Upper, c.Rows(), c.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend32) Syrk(a, c *dense.Matrix[float32]) error {
	if a == nil || c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Sgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), a.Data(), a.Cols(), 0, c.Data(), c.Cols())
	return nil
}

func (b *backend32) Syr2k(a, bm, c *dense.Matrix[float32]) error {
	if err := dense.CheckSameShape(a, bm); err != nil {
		return err
	}
	if c == nil {
		return dense.ErrNilContainer
	}
	if c.Rows() != a.Rows() || c.Cols() != a.Rows() {
		return dense.ErrDimensionMismatch
	}
	b.impl.Sgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, a.Data(), a.Cols(), bm.Data(), bm.Cols(), 0, c.Data(), c.Cols())
	b.impl.Sgemm(blas.NoTrans, blas.Trans, a.Rows(), a.Rows(), a.Cols(),
		1, bm.Data(), bm.Cols(), a.Data(), a.Cols(), 1, c.Data(), c.Cols())
	return nil
}

func (b *backend32) Trmm(a, bm, c *dense.Matrix[float32]) error {
	if err := dense.CheckTrm(a, bm, c); err != nil {
		return err
	}
	copy(c.Data(), bm.Data())
	b.impl.Strmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		c.Rows(), c.Cols(), 1, a.Data(), a.Cols(), c.Data(), c.Cols())
	return nil
}

func (b *backend32) Trsm(a, bm, x *dense.Matrix[float32]) error {
	if err := dense.CheckTrm(a, bm, x); err != nil {
		return err
	}
	if err := checkDiag(a); err != nil {
		return err
	}
	copy(x.Data(), bm.Data())
	b.impl.Strsm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit,
		x.Rows(), x.Cols(), 1, a.Data(), a.Cols(), x.Data(), x.Cols())
	return nil
}
