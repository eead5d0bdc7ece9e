package blas

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Amax returns the index of the element of x with the largest magnitude
// (|re|+|im| for complex elements), -1 for an empty vector.
func Amax[T scalar.Scalar](x *dense.Vector[T]) (int, error) {
	p, err := resolve(x)
	if err != nil {
		return -1, err
	}
	return AmaxOn(p, x)
}

// AmaxOn is Amax under an explicit execution policy.
func AmaxOn[T scalar.Scalar](p dense.Policy, x *dense.Vector[T]) (int, error) {
	b, err := dispatch.Lookup[T](dispatch.OpAmax, p)
	if err != nil {
		return -1, err
	}
	return b.Amax(x)
}

// Asum returns the sum of element magnitudes (|re|+|im| for complex
// elements) of x. R must be the norm type of T: T itself for real element
// types, the underlying real type for complex ones.
func Asum[R scalar.Real, T scalar.Scalar](x *dense.Vector[T]) (R, error) {
	var zero R
	p, err := resolve(x)
	if err != nil {
		return zero, err
	}
	return AsumOn[R](p, x)
}

// AsumOn is Asum under an explicit execution policy.
func AsumOn[R scalar.Real, T scalar.Scalar](p dense.Policy, x *dense.Vector[T]) (R, error) {
	var zero R
	if err := normKindCheck[R, T](dispatch.OpAsum); err != nil {
		return zero, err
	}
	b, err := dispatch.Lookup[T](dispatch.OpAsum, p)
	if err != nil {
		return zero, err
	}
	v, err := b.Asum(x)
	return R(v), err
}

// Axpy computes y = alpha*x + y.
func Axpy[T scalar.Scalar](x, y *dense.Vector[T], alpha T) error {
	p, err := resolve(x, y)
	if err != nil {
		return err
	}
	return AxpyOn(p, x, y, alpha)
}

// AxpyOn is Axpy under an explicit execution policy.
func AxpyOn[T scalar.Scalar](p dense.Policy, x, y *dense.Vector[T], alpha T) error {
	b, err := dispatch.Lookup[T](dispatch.OpAxpy, p)
	if err != nil {
		return err
	}
	return b.Axpy(x, y, alpha)
}

// Axpby computes out = alpha*x + beta*y. out is write-only: it does not
// drive resolution, only gets validated against the resolved policy.
func Axpby[T scalar.Scalar](x, y, out *dense.Vector[T], alpha, beta T) error {
	p, err := resolve(x, y)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, out); err != nil {
		return err
	}
	return AxpbyOn(p, x, y, out, alpha, beta)
}

// AxpbyOn is Axpby under an explicit execution policy.
func AxpbyOn[T scalar.Scalar](p dense.Policy, x, y, out *dense.Vector[T], alpha, beta T) error {
	b, err := dispatch.Lookup[T](dispatch.OpAxpby, p)
	if err != nil {
		return err
	}
	return b.Axpby(x, y, out, alpha, beta)
}

// Axpbypcz computes out = alpha*x + beta*y + gamma*z.
func Axpbypcz[T scalar.Scalar](x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error {
	p, err := resolve(x, y, z)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, out); err != nil {
		return err
	}
	return AxpbypczOn(p, x, y, z, out, alpha, beta, gamma)
}

// AxpbypczOn is Axpbypcz under an explicit execution policy.
func AxpbypczOn[T scalar.Scalar](p dense.Policy, x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error {
	b, err := dispatch.Lookup[T](dispatch.OpAxpbypcz, p)
	if err != nil {
		return err
	}
	return b.Axpbypcz(x, y, z, out, alpha, beta, gamma)
}

// Xmy computes the elementwise product out[i] = x[i]*y[i].
func Xmy[T scalar.Scalar](x, y, out *dense.Vector[T]) error {
	p, err := resolve(x, y)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, out); err != nil {
		return err
	}
	return XmyOn(p, x, y, out)
}

// XmyOn is Xmy under an explicit execution policy.
func XmyOn[T scalar.Scalar](p dense.Policy, x, y, out *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpXmy, p)
	if err != nil {
		return err
	}
	return b.Xmy(x, y, out)
}

// Copy computes y = x.
func Copy[T scalar.Scalar](x, y *dense.Vector[T]) error {
	p, err := resolve(x)
	if err != nil {
		return err
	}
	if err := validateOutputs(p, y); err != nil {
		return err
	}
	return CopyOn(p, x, y)
}

// CopyOn is Copy under an explicit execution policy.
func CopyOn[T scalar.Scalar](p dense.Policy, x, y *dense.Vector[T]) error {
	b, err := dispatch.Lookup[T](dispatch.OpCopy, p)
	if err != nil {
		return err
	}
	return b.Copy(x, y)
}

// Dot returns the unconjugated dot product x^T * y. The result has the
// left operand's element type.
func Dot[T scalar.Scalar](x, y *dense.Vector[T]) (T, error) {
	var zero T
	p, err := resolve(x, y)
	if err != nil {
		return zero, err
	}
	return DotOn(p, x, y)
}

// DotOn is Dot under an explicit execution policy.
func DotOn[T scalar.Scalar](p dense.Policy, x, y *dense.Vector[T]) (T, error) {
	var zero T
	b, err := dispatch.Lookup[T](dispatch.OpDot, p)
	if err != nil {
		return zero, err
	}
	return b.Dot(x, y)
}

// Dotc returns the conjugated dot product conj(x)^T * y. For real element
// types this is identical to Dot.
func Dotc[T scalar.Scalar](x, y *dense.Vector[T]) (T, error) {
	var zero T
	p, err := resolve(x, y)
	if err != nil {
		return zero, err
	}
	return DotcOn(p, x, y)
}

// DotcOn is Dotc under an explicit execution policy.
func DotcOn[T scalar.Scalar](p dense.Policy, x, y *dense.Vector[T]) (T, error) {
	var zero T
	b, err := dispatch.Lookup[T](dispatch.OpDotc, p)
	if err != nil {
		return zero, err
	}
	return b.Dotc(x, y)
}

// Fill sets every element of x to alpha. x is the only container of the
// call, so its own tag resolves the policy.
func Fill[T scalar.Scalar](x *dense.Vector[T], alpha T) error {
	p, err := resolve(x)
	if err != nil {
		return err
	}
	return FillOn(p, x, alpha)
}

// FillOn is Fill under an explicit execution policy.
func FillOn[T scalar.Scalar](p dense.Policy, x *dense.Vector[T], alpha T) error {
	b, err := dispatch.Lookup[T](dispatch.OpFill, p)
	if err != nil {
		return err
	}
	return b.Fill(x, alpha)
}

// Nrm1 returns the 1-norm of x, the sum of element moduli. R must be the
// norm type of T.
func Nrm1[R scalar.Real, T scalar.Scalar](x *dense.Vector[T]) (R, error) {
	var zero R
	p, err := resolve(x)
	if err != nil {
		return zero, err
	}
	return Nrm1On[R](p, x)
}

// Nrm1On is Nrm1 under an explicit execution policy.
func Nrm1On[R scalar.Real, T scalar.Scalar](p dense.Policy, x *dense.Vector[T]) (R, error) {
	var zero R
	if err := normKindCheck[R, T](dispatch.OpNrm1); err != nil {
		return zero, err
	}
	b, err := dispatch.Lookup[T](dispatch.OpNrm1, p)
	if err != nil {
		return zero, err
	}
	v, err := b.Nrm1(x)
	return R(v), err
}

// Nrm2 returns the Euclidean norm of x. R must be the norm type of T, so
// the norm of a []complex64 is a float32.
func Nrm2[R scalar.Real, T scalar.Scalar](x *dense.Vector[T]) (R, error) {
	var zero R
	p, err := resolve(x)
	if err != nil {
		return zero, err
	}
	return Nrm2On[R](p, x)
}

// Nrm2On is Nrm2 under an explicit execution policy.
func Nrm2On[R scalar.Real, T scalar.Scalar](p dense.Policy, x *dense.Vector[T]) (R, error) {
	var zero R
	if err := normKindCheck[R, T](dispatch.OpNrm2); err != nil {
		return zero, err
	}
	b, err := dispatch.Lookup[T](dispatch.OpNrm2, p)
	if err != nil {
		return zero, err
	}
	v, err := b.Nrm2(x)
	return R(v), err
}

// Nrmmax returns the infinity norm of x, the largest element modulus. R
// must be the norm type of T.
func Nrmmax[R scalar.Real, T scalar.Scalar](x *dense.Vector[T]) (R, error) {
	var zero R
	p, err := resolve(x)
	if err != nil {
		return zero, err
	}
	return NrmmaxOn[R](p, x)
}

// NrmmaxOn is Nrmmax under an explicit execution policy.
func NrmmaxOn[R scalar.Real, T scalar.Scalar](p dense.Policy, x *dense.Vector[T]) (R, error) {
	var zero R
	if err := normKindCheck[R, T](dispatch.OpNrmmax); err != nil {
		return zero, err
	}
	b, err := dispatch.Lookup[T](dispatch.OpNrmmax, p)
	if err != nil {
		return zero, err
	}
	v, err := b.Nrmmax(x)
	return R(v), err
}

// Scal computes x = alpha*x.
func Scal[T scalar.Scalar](x *dense.Vector[T], alpha T) error {
	p, err := resolve(x)
	if err != nil {
		return err
	}
	return ScalOn(p, x, alpha)
}

// ScalOn is Scal under an explicit execution policy.
func ScalOn[T scalar.Scalar](p dense.Policy, x *dense.Vector[T], alpha T) error {
	b, err := dispatch.Lookup[T](dispatch.OpScal, p)
	if err != nil {
		return err
	}
	return b.Scal(x, alpha)
}
