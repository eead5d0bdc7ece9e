package blas

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Gemm computes C = A*B.
func Gemm[T scalar.Scalar](a, b, c *dense.Matrix[T]) error {
	p, err := resolve(a, b)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, c); err != nil {
		return err
	}
	return GemmOn(p, a, b, c)
}

// GemmOn is Gemm under an explicit execution policy.
func GemmOn[T scalar.Scalar](p dense.Policy, a, b, c *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpGemm, p)
	if err != nil {
		return err
	}
	return bk.Gemm(a, b, c)
}

// Symm computes C = A*B for a full-stored symmetric A.
func Symm[T scalar.Scalar](a, b, c *dense.Matrix[T]) error {
	p, err := resolve(a, b)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, c); err != nil {
		return err
	}
	return SymmOn(p, a, b, c)
}

// SymmOn is Symm under an explicit execution policy.
func SymmOn[T scalar.Scalar](p dense.Policy, a, b, c *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpSymm, p)
	if err != nil {
		return err
	}
	return bk.Symm(a, b, c)
}

// Syrk computes the rank-k update C = A*A^T.
func Syrk[T scalar.Scalar](a, c *dense.Matrix[T]) error {
	p, err := resolve(a)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, c); err != nil {
		return err
	}
	return SyrkOn(p, a, c)
}

// SyrkOn is Syrk under an explicit execution policy.
func SyrkOn[T scalar.Scalar](p dense.Policy, a, c *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpSyrk, p)
	if err != nil {
		return err
	}
	return bk.Syrk(a, c)
}

// Syr2k computes the rank-2k update C = A*B^T + B*A^T.
func Syr2k[T scalar.Scalar](a, b, c *dense.Matrix[T]) error {
	p, err := resolve(a, b)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, c); err != nil {
		return err
	}
	return Syr2kOn(p, a, b, c)
}

// Syr2kOn is Syr2k under an explicit execution policy.
func Syr2kOn[T scalar.Scalar](p dense.Policy, a, b, c *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpSyr2k, p)
	if err != nil {
		return err
	}
	return bk.Syr2k(a, b, c)
}

// Trmm computes C = U*B, where U is the upper triangle of A.
func Trmm[T scalar.Scalar](a, b, c *dense.Matrix[T]) error {
	p, err := resolve(a, b)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, c); err != nil {
		return err
	}
	return TrmmOn(p, a, b, c)
}

// TrmmOn is Trmm under an explicit execution policy.
func TrmmOn[T scalar.Scalar](p dense.Policy, a, b, c *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpTrmm, p)
	if err != nil {
		return err
	}
	return bk.Trmm(a, b, c)
}

// Trsm solves U*X = B for X, where U is the upper triangle of A.
func Trsm[T scalar.Scalar](a, b, x *dense.Matrix[T]) error {
	p, err := resolve(a, b)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, x); err != nil {
		return err
	}
	return TrsmOn(p, a, b, x)
}

// TrsmOn is Trsm under an explicit execution policy.
func TrsmOn[T scalar.Scalar](p dense.Policy, a, b, x *dense.Matrix[T]) error {
	bk, err := dispatch.Lookup[T](dispatch.OpTrsm, p)
	if err != nil {
		return err
	}
	return bk.Trsm(a, b, x)
}
