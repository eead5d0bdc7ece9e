package dense

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/scalar"
)

// Vector is a backend-tagged sequence of scalars. The dispatch layer only
// ever needs its element type, its length and its policy tag; kernels
// access the storage through Data.
type Vector[T scalar.Scalar] struct {
	data []T
	tag  Policy
}

// NewVector allocates a zeroed vector of length n tagged with p.
func NewVector[T scalar.Scalar](p Policy, n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("dense: negative vector length %d", n))
	}
	return &Vector[T]{data: make([]T, n), tag: p}
}

// VectorOf copies data into a new vector tagged with p.
func VectorOf[T scalar.Scalar](p Policy, data []T) *Vector[T] {
	v := NewVector[T](p, len(data))
	copy(v.data, data)
	return v
}

// Tag returns the canonical execution-policy tag of the vector. A nil
// vector has no tag and never resolves.
func (v *Vector[T]) Tag() Policy {
	if v == nil {
		return Unspecified
	}
	return v.tag
}

func (v *Vector[T]) Len() int { return len(v.data) }

func (v *Vector[T]) At(i int) T { return v.data[i] }

func (v *Vector[T]) Set(i int, x T) { v.data[i] = x }

// Data returns the underlying storage. Kernels mutate vectors through this
// slice; callers that alias it across goroutines are responsible for
// serializing access.
func (v *Vector[T]) Data() []T { return v.data }

// Kind returns the runtime element kind of the vector.
func (v *Vector[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Matrix is a backend-tagged dense 2-D array in row-major order with
// stride equal to the column count.
type Matrix[T scalar.Scalar] struct {
	data []T
	rows int
	cols int
	tag  Policy
}

// NewMatrix allocates a zeroed r by c matrix tagged with p.
func NewMatrix[T scalar.Scalar](p Policy, r, c int) *Matrix[T] {
	if r < 0 || c < 0 {
		panic(fmt.Sprintf("dense: negative matrix shape %dx%d", r, c))
	}
	return &Matrix[T]{data: make([]T, r*c), rows: r, cols: c, tag: p}
}

// MatrixOf copies row-major data into a new r by c matrix tagged with p.
func MatrixOf[T scalar.Scalar](p Policy, r, c int, data []T) *Matrix[T] {
	if len(data) != r*c {
		panic(fmt.Sprintf("dense: %dx%d matrix needs %d elements, got %d", r, c, r*c, len(data)))
	}
	m := NewMatrix[T](p, r, c)
	copy(m.data, data)
	return m
}

// Tag returns the canonical execution-policy tag of the matrix. A nil
// matrix has no tag and never resolves.
func (m *Matrix[T]) Tag() Policy {
	if m == nil {
		return Unspecified
	}
	return m.tag
}

func (m *Matrix[T]) Rows() int { return m.rows }

func (m *Matrix[T]) Cols() int { return m.cols }

func (m *Matrix[T]) At(i, j int) T { return m.data[i*m.cols+j] }

func (m *Matrix[T]) Set(i, j int, x T) { m.data[i*m.cols+j] = x }

// Row returns the i-th row of the underlying storage.
func (m *Matrix[T]) Row(i int) []T { return m.data[i*m.cols : (i+1)*m.cols] }

// Data returns the underlying row-major storage.
func (m *Matrix[T]) Data() []T { return m.data }

// Kind returns the runtime element kind of the matrix.
func (m *Matrix[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Tagged is the view of a container the policy resolver needs.
type Tagged interface {
	Tag() Policy
}
