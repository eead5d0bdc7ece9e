package dense

import (
	"math/rand"

	"github.com/23skdu/longbow-bowyer/scalar"
)

// RandomVector returns a p-tagged vector of n values drawn uniformly from
// [0, 1), deterministically from seed: the same seed always yields the same
// sequence, so identical operand data can be materialized under different
// policies without copying it between them. Complex kinds draw the real and
// imaginary parts independently.
func RandomVector[T scalar.Scalar](p Policy, n int, seed int64) *Vector[T] {
	v := NewVector[T](p, n)
	fillUniform(v.data, seed)
	return v
}

// RandomMatrix returns a p-tagged r by c matrix filled the same way as
// RandomVector.
func RandomMatrix[T scalar.Scalar](p Policy, r, c int, seed int64) *Matrix[T] {
	m := NewMatrix[T](p, r, c)
	fillUniform(m.data, seed)
	return m
}

func fillUniform[T scalar.Scalar](dst []T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	switch d := any(dst).(type) {
	case []float32:
		for i := range d {
			d[i] = rng.Float32()
		}
	case []float64:
		for i := range d {
			d[i] = rng.Float64()
		}
	case []complex64:
		for i := range d {
			d[i] = complex(rng.Float32(), rng.Float32())
		}
	case []complex128:
		for i := range d {
			d[i] = complex(rng.Float64(), rng.Float64())
		}
	}
}
