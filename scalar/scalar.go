// Package scalar classifies the element types accepted by the dispatch
// layer and computes the result types associated with them: the norm type
// of an element type (itself for real types, the underlying real type for
// complex types) and the left-biased result type of a two-operand routine.
package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// Real is the set of real element types.
type Real interface {
	float32 | float64
}

// Complex is the set of complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the full element type set of the dispatch layer.
type Scalar interface {
	Real | Complex
}

// ErrMixedFamily is returned when two element kinds from different numeric
// families (real vs complex) are combined without an explicit conversion.
var ErrMixedFamily = errors.New("scalar: mixed real/complex element families")

// Kind identifies one supported element type at runtime. It is the
// element-type half of the dispatch key.
type Kind uint8

const (
	Invalid Kind = iota
	Float32
	Float64
	Complex64
	Complex128
)

func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	}
	return "invalid"
}

// IsComplex reports whether k belongs to the complex family.
func (k Kind) IsComplex() bool {
	return k == Complex64 || k == Complex128
}

// Bits returns the precision of the real component of k.
func (k Kind) Bits() int {
	switch k {
	case Float32, Complex64:
		return 32
	case Float64, Complex128:
		return 64
	}
	return 0
}

// KindOf returns the Kind of the element type T.
func KindOf[T Scalar]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return Invalid
}

// NormOf maps an element kind to its norm kind: the kind itself for real
// kinds, the underlying real kind for complex kinds. Magnitude-producing
// routines (asum, nrm1, nrm2, nrmmax) return values of the norm kind.
func NormOf(k Kind) Kind {
	switch k {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return k
}

// ResultOf returns the element kind of a two-operand routine whose result
// must be expressible in one operand's type, e.g. dot. The left operand's
// kind wins; this is a deliberate asymmetric tie-break matching BLAS
// calling order. Kinds from different families do not combine.
func ResultOf(left, right Kind) (Kind, error) {
	if left == Invalid || right == Invalid {
		return Invalid, fmt.Errorf("scalar: cannot combine %s and %s", left, right)
	}
	if left.IsComplex() != right.IsComplex() {
		return Invalid, fmt.Errorf("%w: %s and %s", ErrMixedFamily, left, right)
	}
	return left, nil
}

// Abs returns the modulus of v as a float64 accumulator value.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// Abs1 returns the BLAS magnitude of v: |v| for real elements and
// |re(v)|+|im(v)| for complex elements. amax and asum use this convention
// so every backend agrees with vendor izamax/dzasum results.
func Abs1[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return math.Abs(float64(real(x))) + math.Abs(float64(imag(x)))
	case complex128:
		return math.Abs(real(x)) + math.Abs(imag(x))
	}
	return Abs(v)
}

// Conj returns the complex conjugate of v. Real elements pass through.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}
	return v
}

// FromFloat64 converts a float64 accumulator value to the element type T.
func FromFloat64[T Scalar](v float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	case complex128:
		return any(complex(v, 0)).(T)
	}
	return z
}
