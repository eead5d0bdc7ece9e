package dense

import "testing"

func TestRandomVectorDeterministic(t *testing.T) {
	a := RandomVector[float64](Seq, 64, 7)
	b := RandomVector[float64](Seq, 64, 7)
	c := RandomVector[float64](Seq, 64, 8)

	if a.Tag() != Seq || a.Len() != 64 {
		t.Fatalf("tag %s, len %d", a.Tag(), a.Len())
	}
	sameAsC := true
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("seed 7 diverged at %d: %v vs %v", i, a.At(i), b.At(i))
		}
		if a.At(i) != c.At(i) {
			sameAsC = false
		}
		if a.At(i) < 0 || a.At(i) >= 1 {
			t.Fatalf("value %v outside [0, 1)", a.At(i))
		}
	}
	if sameAsC {
		t.Error("seeds 7 and 8 produced identical vectors")
	}
}

func TestRandomVectorComplexParts(t *testing.T) {
	v := RandomVector[complex128](Par, 16, 3)

	anyImag := false
	for i := 0; i < v.Len(); i++ {
		z := v.At(i)
		if real(z) < 0 || real(z) >= 1 || imag(z) < 0 || imag(z) >= 1 {
			t.Fatalf("value %v outside the unit square", z)
		}
		if imag(z) != 0 {
			anyImag = true
		}
	}
	if !anyImag {
		t.Error("imaginary parts all zero")
	}
}

func TestRandomMatrix(t *testing.T) {
	m := RandomMatrix[float32](Vendor, 4, 6, 11)
	n := RandomMatrix[float32](Vendor, 4, 6, 11)

	if m.Tag() != Vendor || m.Rows() != 4 || m.Cols() != 6 {
		t.Fatalf("tag %s, shape %dx%d", m.Tag(), m.Rows(), m.Cols())
	}
	for i := range m.Data() {
		if m.Data()[i] != n.Data()[i] {
			t.Fatalf("seed 11 diverged at %d", i)
		}
	}
}
