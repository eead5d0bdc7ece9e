package scalar

import (
	"errors"
	"math"
	"testing"
)

func TestKindOf(t *testing.T) {
	if k := KindOf[float32](); k != Float32 {
		t.Errorf("KindOf[float32] = %s", k)
	}
	if k := KindOf[float64](); k != Float64 {
		t.Errorf("KindOf[float64] = %s", k)
	}
	if k := KindOf[complex64](); k != Complex64 {
		t.Errorf("KindOf[complex64] = %s", k)
	}
	if k := KindOf[complex128](); k != Complex128 {
		t.Errorf("KindOf[complex128] = %s", k)
	}
}

func TestKindProperties(t *testing.T) {
	cases := []struct {
		k       Kind
		complex bool
		bits    int
		str     string
	}{
		{Float32, false, 32, "float32"},
		{Float64, false, 64, "float64"},
		{Complex64, true, 32, "complex64"},
		{Complex128, true, 64, "complex128"},
		{Invalid, false, 0, "invalid"},
	}
	for _, c := range cases {
		if c.k.IsComplex() != c.complex {
			t.Errorf("%s: IsComplex = %v", c.str, c.k.IsComplex())
		}
		if c.k.Bits() != c.bits {
			t.Errorf("%s: Bits = %d, want %d", c.str, c.k.Bits(), c.bits)
		}
		if c.k.String() != c.str {
			t.Errorf("String = %q, want %q", c.k.String(), c.str)
		}
	}
}

func TestNormOf(t *testing.T) {
	cases := []struct{ in, want Kind }{
		{Float32, Float32},
		{Float64, Float64},
		{Complex64, Float32},
		{Complex128, Float64},
		{Invalid, Invalid},
	}
	for _, c := range cases {
		if got := NormOf(c.in); got != c.want {
			t.Errorf("NormOf(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestResultOf(t *testing.T) {
	// Left operand wins within a family.
	k, err := ResultOf(Float32, Float64)
	if err != nil || k != Float32 {
		t.Errorf("ResultOf(f32, f64) = %s, %v", k, err)
	}
	k, err = ResultOf(Complex128, Complex64)
	if err != nil || k != Complex128 {
		t.Errorf("ResultOf(c128, c64) = %s, %v", k, err)
	}

	if _, err := ResultOf(Float64, Complex128); !errors.Is(err, ErrMixedFamily) {
		t.Errorf("mixed families: err = %v", err)
	}
	if _, err := ResultOf(Invalid, Float64); err == nil {
		t.Error("invalid kind combined without error")
	}
}

func TestAbsConventions(t *testing.T) {
	if got := Abs(-2.5); got != 2.5 {
		t.Errorf("Abs(-2.5) = %v", got)
	}
	// Modulus vs |re|+|im| for the same value.
	if got := Abs(complex128(3 + 4i)); got != 5 {
		t.Errorf("Abs(3+4i) = %v", got)
	}
	if got := Abs1(complex128(3 + 4i)); got != 7 {
		t.Errorf("Abs1(3+4i) = %v", got)
	}
	if got := Abs1(complex64(-1 - 2i)); got != 3 {
		t.Errorf("Abs1(-1-2i) = %v", got)
	}
	// For real elements the two conventions coincide.
	if Abs1(float32(-1.5)) != Abs(float32(-1.5)) {
		t.Error("Abs1 != Abs for real element")
	}
}

func TestConj(t *testing.T) {
	if got := Conj(complex128(1 + 2i)); got != 1-2i {
		t.Errorf("Conj(1+2i) = %v", got)
	}
	if got := Conj(complex64(3 - 4i)); got != 3+4i {
		t.Errorf("Conj(3-4i) = %v", got)
	}
	if got := Conj(float64(-7)); got != -7 {
		t.Errorf("Conj(-7) = %v", got)
	}
}

func TestFromFloat64(t *testing.T) {
	if got := FromFloat64[float32](1.5); got != 1.5 {
		t.Errorf("float32: %v", got)
	}
	if got := FromFloat64[complex128](2); got != 2+0i {
		t.Errorf("complex128: %v", got)
	}
	if got := FromFloat64[complex64](math.Pi); imag(got) != 0 {
		t.Errorf("complex64 imag: %v", got)
	}
}
