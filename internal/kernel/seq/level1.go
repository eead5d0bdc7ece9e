// Package seq is the sequential-host kernel realization: plain loop
// kernels for every routine of the surface, generic over the element type.
// Magnitude reductions accumulate in float64. The parallel, device and
// vendor realizations delegate here for the routines they do not override.
package seq

import (
	"math"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Backend implements the full realization set sequentially.
type Backend[T scalar.Scalar] struct{}

func (Backend[T]) Amax(x *dense.Vector[T]) (int, error) {
	if err := dense.CheckVectors(x); err != nil {
		return -1, err
	}
	xs := x.Data()
	if len(xs) == 0 {
		return -1, nil
	}
	idx, best := 0, scalar.Abs1(xs[0])
	for i := 1; i < len(xs); i++ {
		if m := scalar.Abs1(xs[i]); m > best {
			idx, best = i, m
		}
	}
	return idx, nil
}

func (Backend[T]) Asum(x *dense.Vector[T]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range x.Data() {
		sum += scalar.Abs1(v)
	}
	return sum, nil
}

func (Backend[T]) Axpy(x, y *dense.Vector[T], alpha T) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	AxpyRange(x.Data(), y.Data(), alpha, 0, x.Len())
	return nil
}

// AxpyRange computes ys[i] += alpha*xs[i] over [lo, hi). Unrolled the same
// way for every backend so parallel chunking reproduces sequential results.
func AxpyRange[T scalar.Scalar](xs, ys []T, alpha T, lo, hi int) {
	i := lo
	for ; i <= hi-4; i += 4 {
		ys[i] += alpha * xs[i]
		ys[i+1] += alpha * xs[i+1]
		ys[i+2] += alpha * xs[i+2]
		ys[i+3] += alpha * xs[i+3]
	}
	for ; i < hi; i++ {
		ys[i] += alpha * xs[i]
	}
}

func (Backend[T]) Axpby(x, y, out *dense.Vector[T], alpha, beta T) error {
	if err := dense.CheckSameLen(x, y, out); err != nil {
		return err
	}
	AxpbyRange(x.Data(), y.Data(), out.Data(), alpha, beta, 0, x.Len())
	return nil
}

// AxpbyRange computes os[i] = alpha*xs[i] + beta*ys[i] over [lo, hi).
func AxpbyRange[T scalar.Scalar](xs, ys, os []T, alpha, beta T, lo, hi int) {
	for i := lo; i < hi; i++ {
		os[i] = alpha*xs[i] + beta*ys[i]
	}
}

func (Backend[T]) Axpbypcz(x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error {
	if err := dense.CheckSameLen(x, y, z, out); err != nil {
		return err
	}
	AxpbypczRange(x.Data(), y.Data(), z.Data(), out.Data(), alpha, beta, gamma, 0, x.Len())
	return nil
}

// AxpbypczRange computes os[i] = alpha*xs[i] + beta*ys[i] + gamma*zs[i].
func AxpbypczRange[T scalar.Scalar](xs, ys, zs, os []T, alpha, beta, gamma T, lo, hi int) {
	for i := lo; i < hi; i++ {
		os[i] = alpha*xs[i] + beta*ys[i] + gamma*zs[i]
	}
}

func (Backend[T]) Xmy(x, y, out *dense.Vector[T]) error {
	if err := dense.CheckSameLen(x, y, out); err != nil {
		return err
	}
	XmyRange(x.Data(), y.Data(), out.Data(), 0, x.Len())
	return nil
}

// XmyRange computes os[i] = xs[i]*ys[i] over [lo, hi).
func XmyRange[T scalar.Scalar](xs, ys, os []T, lo, hi int) {
	for i := lo; i < hi; i++ {
		os[i] = xs[i] * ys[i]
	}
}

func (Backend[T]) Copy(x, y *dense.Vector[T]) error {
	if err := dense.CheckSameLen(x, y); err != nil {
		return err
	}
	copy(y.Data(), x.Data())
	return nil
}

func (Backend[T]) Dot(x, y *dense.Vector[T]) (T, error) {
	var zero T
	if err := dense.CheckSameLen(x, y); err != nil {
		return zero, err
	}
	return DotRange(x.Data(), y.Data(), 0, x.Len()), nil
}

// DotRange computes the unconjugated dot product over [lo, hi), 4x
// unrolled.
func DotRange[T scalar.Scalar](xs, ys []T, lo, hi int) T {
	var sum T
	i := lo
	for ; i <= hi-4; i += 4 {
		sum += xs[i] * ys[i]
		sum += xs[i+1] * ys[i+1]
		sum += xs[i+2] * ys[i+2]
		sum += xs[i+3] * ys[i+3]
	}
	for ; i < hi; i++ {
		sum += xs[i] * ys[i]
	}
	return sum
}

func (Backend[T]) Dotc(x, y *dense.Vector[T]) (T, error) {
	var zero T
	if err := dense.CheckSameLen(x, y); err != nil {
		return zero, err
	}
	return DotcRange(x.Data(), y.Data(), 0, x.Len()), nil
}

// DotcRange computes the conjugated dot product over [lo, hi). For real
// element types Conj is the identity and this matches DotRange.
func DotcRange[T scalar.Scalar](xs, ys []T, lo, hi int) T {
	var sum T
	for i := lo; i < hi; i++ {
		sum += scalar.Conj(xs[i]) * ys[i]
	}
	return sum
}

func (Backend[T]) Fill(x *dense.Vector[T], alpha T) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	xs := x.Data()
	for i := range xs {
		xs[i] = alpha
	}
	return nil
}

func (Backend[T]) Nrm1(x *dense.Vector[T]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range x.Data() {
		sum += scalar.Abs(v)
	}
	return sum, nil
}

func (Backend[T]) Nrm2(x *dense.Vector[T]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	return math.Sqrt(Nrm2SqRange(x.Data(), 0, x.Len())), nil
}

// Nrm2SqRange accumulates the squared moduli over [lo, hi).
func Nrm2SqRange[T scalar.Scalar](xs []T, lo, hi int) float64 {
	var sum float64
	for i := lo; i < hi; i++ {
		m := scalar.Abs(xs[i])
		sum += m * m
	}
	return sum
}

func (Backend[T]) Nrmmax(x *dense.Vector[T]) (float64, error) {
	if err := dense.CheckVectors(x); err != nil {
		return 0, err
	}
	var best float64
	for _, v := range x.Data() {
		if m := scalar.Abs(v); m > best {
			best = m
		}
	}
	return best, nil
}

func (Backend[T]) Scal(x *dense.Vector[T], alpha T) error {
	if err := dense.CheckVectors(x); err != nil {
		return err
	}
	ScalRange(x.Data(), alpha, 0, x.Len())
	return nil
}

// ScalRange computes xs[i] *= alpha over [lo, hi).
func ScalRange[T scalar.Scalar](xs []T, alpha T, lo, hi int) {
	for i := lo; i < hi; i++ {
		xs[i] *= alpha
	}
}
