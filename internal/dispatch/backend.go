// Package dispatch is the routing table of the call surface: it maps a
// resolved (execution policy, element kind) pair to the kernel realization
// registered for it. The Backend interface has one method per routine, so
// a policy cannot be registered with a partial realization set; the
// compiler enforces operation totality, the registry enforces policy
// totality.
package dispatch

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Op names one routine of the call surface. Used as the operation half of
// dispatch-miss diagnostics and metric labels.
type Op string

const (
	OpAmax     Op = "amax"
	OpAsum     Op = "asum"
	OpAxpy     Op = "axpy"
	OpAxpby    Op = "axpby"
	OpAxpbypcz Op = "axpbypcz"
	OpXmy      Op = "xmy"
	OpCopy     Op = "copy"
	OpDot      Op = "dot"
	OpDotc     Op = "dotc"
	OpFill     Op = "fill"
	OpNrm1     Op = "nrm1"
	OpNrm2     Op = "nrm2"
	OpNrmmax   Op = "nrmmax"
	OpScal     Op = "scal"
	OpGemv     Op = "gemv"
	OpGer      Op = "ger"
	OpSymv     Op = "symv"
	OpSyr      Op = "syr"
	OpTrmv     Op = "trmv"
	OpTrsv     Op = "trsv"
	OpGemm     Op = "gemm"
	OpSymm     Op = "symm"
	OpSyrk     Op = "syrk"
	OpSyr2k    Op = "syr2k"
	OpTrmm     Op = "trmm"
	OpTrsm     Op = "trsm"
)

// Ops lists every routine of the call surface.
var Ops = []Op{
	OpAmax, OpAsum, OpAxpy, OpAxpby, OpAxpbypcz, OpXmy, OpCopy, OpDot,
	OpDotc, OpFill, OpNrm1, OpNrm2, OpNrmmax, OpScal, OpGemv, OpGer,
	OpSymv, OpSyr, OpTrmv, OpTrsv, OpGemm, OpSymm, OpSyrk, OpSyr2k,
	OpTrmm, OpTrsm,
}

// Backend is one kernel realization set: every routine of the surface for
// one policy over one element type. Magnitude results are produced as
// float64 accumulator values; the facade narrows them to the trait-derived
// norm type.
//
// Synchronous backends return after the kernel completes. Asynchronous
// backends may enqueue mutating routines against their stream and return
// before completion; value-returning routines always complete before
// returning. Shape violations are reported here, not by the facade.
type Backend[T scalar.Scalar] interface {
	// Amax returns the index of the element with the largest BLAS
	// magnitude (|re|+|im|), or -1 for an empty vector.
	Amax(x *dense.Vector[T]) (int, error)
	// Asum returns the sum of BLAS magnitudes of the elements.
	Asum(x *dense.Vector[T]) (float64, error)
	// Axpy computes y = alpha*x + y.
	Axpy(x, y *dense.Vector[T], alpha T) error
	// Axpby computes out = alpha*x + beta*y.
	Axpby(x, y, out *dense.Vector[T], alpha, beta T) error
	// Axpbypcz computes out = alpha*x + beta*y + gamma*z.
	Axpbypcz(x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error
	// Xmy computes out[i] = x[i]*y[i].
	Xmy(x, y, out *dense.Vector[T]) error
	// Copy computes y = x.
	Copy(x, y *dense.Vector[T]) error
	// Dot returns x^T * y.
	Dot(x, y *dense.Vector[T]) (T, error)
	// Dotc returns conj(x)^T * y.
	Dotc(x, y *dense.Vector[T]) (T, error)
	// Fill sets every element of x to alpha.
	Fill(x *dense.Vector[T], alpha T) error
	// Nrm1 returns the sum of element moduli.
	Nrm1(x *dense.Vector[T]) (float64, error)
	// Nrm2 returns the Euclidean norm.
	Nrm2(x *dense.Vector[T]) (float64, error)
	// Nrmmax returns the largest element modulus.
	Nrmmax(x *dense.Vector[T]) (float64, error)
	// Scal computes x = alpha*x.
	Scal(x *dense.Vector[T], alpha T) error
	// Gemv computes y = A*x.
	Gemv(a *dense.Matrix[T], x, y *dense.Vector[T]) error
	// Ger computes A += x*y^T (unconjugated).
	Ger(x, y *dense.Vector[T], a *dense.Matrix[T]) error
	// Symv computes y = A*x for a full-stored symmetric A.
	Symv(a *dense.Matrix[T], x, y *dense.Vector[T]) error
	// Syr computes A += x*x^T.
	Syr(x *dense.Vector[T], a *dense.Matrix[T]) error
	// Trmv computes x = U*x where U is the upper triangle of A.
	Trmv(a *dense.Matrix[T], x *dense.Vector[T]) error
	// Trsv solves U*x = b in place, b arriving in x.
	Trsv(a *dense.Matrix[T], x *dense.Vector[T]) error
	// Gemm computes C = A*B.
	Gemm(a, b, c *dense.Matrix[T]) error
	// Symm computes C = A*B for a full-stored symmetric A.
	Symm(a, b, c *dense.Matrix[T]) error
	// Syrk computes C = A*A^T.
	Syrk(a, c *dense.Matrix[T]) error
	// Syr2k computes C = A*B^T + B*A^T.
	Syr2k(a, b, c *dense.Matrix[T]) error
	// Trmm computes C = U*B where U is the upper triangle of A.
	Trmm(a, b, c *dense.Matrix[T]) error
	// Trsm solves U*X = B, writing the solution to x.
	Trsm(a, b, x *dense.Matrix[T]) error
}
