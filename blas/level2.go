package blas

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Gemv computes y = A*x.
func Gemv[T scalar.Scalar](a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	p, err := resolve(a, x)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, y); err != nil {
		return err
	}
	return GemvOn(p, a, x, y)
}

// GemvOn is Gemv under an explicit execution policy.
func GemvOn[T scalar.Scalar](p dense.Policy, a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpGemv, p)
	if err != nil {
		return err
	}
	return b.Gemv(a, x, y)
}

// Ger computes the unconjugated rank-1 update A += x*y^T. A is read and
// written, so it participates in resolution.
func Ger[T scalar.Scalar](x, y *dense.Vector[T], a *dense.Matrix[T]) error {
	p, err := resolve(x, y, a)
	if err != nil {
		return err
	}
	return GerOn(p, x, y, a)
}

// GerOn is Ger under an explicit execution policy.
func GerOn[T scalar.Scalar](p dense.Policy, x, y *dense.Vector[T], a *dense.Matrix[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpGer, p)
	if err != nil {
		return err
	}
	return b.Ger(x, y, a)
}

// Symv computes y = A*x for a full-stored symmetric A.
func Symv[T scalar.Scalar](a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	p, err := resolve(a, x)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, y); err != nil {
		return err
	}
	return SymvOn(p, a, x, y)
}

// SymvOn is Symv under an explicit execution policy.
func SymvOn[T scalar.Scalar](p dense.Policy, a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpSymv, p)
	if err != nil {
		return err
	}
	return b.Symv(a, x, y)
}

// Syr computes the symmetric rank-1 update A += x*x^T.
func Syr[T scalar.Scalar](x *dense.Vector[T], a *dense.Matrix[T]) error {
	p, err := resolve(x, a)
	if err != nil {
		return err
	}
	return SyrOn(p, x, a)
}

// SyrOn is Syr under an explicit execution policy.
func SyrOn[T scalar.Scalar](p dense.Policy, x *dense.Vector[T], a *dense.Matrix[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpSyr, p)
	if err != nil {
		return err
	}
	return b.Syr(x, a)
}

// Trmv computes x = U*x in place, where U is the upper triangle of A.
func Trmv[T scalar.Scalar](a *dense.Matrix[T], x *dense.Vector[T]) error {
	p, err := resolve(a, x)
	if err != nil {
		return err
	}
	return TrmvOn(p, a, x)
}

// TrmvOn is Trmv under an explicit execution policy.
func TrmvOn[T scalar.Scalar](p dense.Policy, a *dense.Matrix[T], x *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpTrmv, p)
	if err != nil {
		return err
	}
	return b.Trmv(a, x)
}

// Trsv solves U*x = b in place, where U is the upper triangle of A and b
// arrives in x.
func Trsv[T scalar.Scalar](a *dense.Matrix[T], x *dense.Vector[T]) error {
	p, err := resolve(a, x)
	if err != nil {
		return err
	}
	return TrsvOn(p, a, x)
}

// TrsvOn is Trsv under an explicit execution policy.
func TrsvOn[T scalar.Scalar](p dense.Policy, a *dense.Matrix[T], x *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpTrsv, p)
	if err != nil {
		return err
	}
	return b.Trsv(a, x)
}
