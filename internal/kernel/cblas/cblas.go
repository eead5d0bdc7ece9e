// Package cblas is the vendor-accelerated kernel realization. It routes
// the BLAS-standard routines to the implementation registered with gonum's
// blas32/blas64/cblas64/cblas128 packages (gonum's native Go BLAS by
// default, the system BLAS through netlib when built with cgo) and keeps
// the sequential realization for the routines vendor BLAS does not define
// (axpby family, xmy, fill, nrmmax, complex nrm1/symv/symm, syr).
//
// Containers are row-major with stride equal to the column count, which is
// the convention gonum's BLAS interfaces use, so matrices pass straight
// through with lda = cols.
package cblas

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// checkDiag rejects a zero diagonal before a triangular solve is handed to
// the vendor library, which would silently produce Inf/NaN instead of the
// ErrSingular the other realizations report.
func checkDiag[T scalar.Scalar](a *dense.Matrix[T]) error {
	for i := 0; i < a.Rows(); i++ {
		if a.At(i, i) == 0 {
			return fmt.Errorf("%w: zero diagonal at %d", dense.ErrSingular, i)
		}
	}
	return nil
}
