// Package arrowvec bridges dense containers and Arrow columnar arrays so
// vectors and matrices can cross process boundaries in IPC or Flight
// payloads without a hand-rolled wire format. Conversions copy: the
// resulting container (or array) owns its storage and the source can be
// released immediately.
package arrowvec

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/23skdu/longbow-bowyer/dense"
)

// ErrNulls is returned when a source array carries null slots. Dense
// containers have no null representation.
var ErrNulls = errors.New("arrowvec: source array contains nulls")

// ErrNotFloat is returned when a list array's value type is not the
// expected floating-point primitive.
var ErrNotFloat = errors.New("arrowvec: unexpected value type")

// VectorFromFloat32 copies an Arrow float32 array into a vector tagged
// with p.
func VectorFromFloat32(p dense.Policy, a *array.Float32) (*dense.Vector[float32], error) {
	if a.NullN() > 0 {
		return nil, ErrNulls
	}
	return dense.VectorOf(p, a.Float32Values()), nil
}

// VectorFromFloat64 copies an Arrow float64 array into a vector tagged
// with p.
func VectorFromFloat64(p dense.Policy, a *array.Float64) (*dense.Vector[float64], error) {
	if a.NullN() > 0 {
		return nil, ErrNulls
	}
	return dense.VectorOf(p, a.Float64Values()), nil
}

// Float32FromVector builds an Arrow float32 array from v. The caller owns
// the returned array and must Release it.
func Float32FromVector(mem memory.Allocator, v *dense.Vector[float32]) *array.Float32 {
	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues(v.Data(), nil)
	return b.NewFloat32Array()
}

// Float64FromVector builds an Arrow float64 array from v. The caller owns
// the returned array and must Release it.
func Float64FromVector(mem memory.Allocator, v *dense.Vector[float64]) *array.Float64 {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(v.Data(), nil)
	return b.NewFloat64Array()
}

// MatrixFromFixedSizeList32 copies a fixed_size_list<float32> array into a
// row-major matrix tagged with p: one list element per row, the list size
// as the column count.
func MatrixFromFixedSizeList32(p dense.Policy, a *array.FixedSizeList) (*dense.Matrix[float32], error) {
	if a.NullN() > 0 {
		return nil, ErrNulls
	}
	vals, ok := a.ListValues().(*array.Float32)
	if !ok {
		return nil, fmt.Errorf("%w: want float32 values, got %s", ErrNotFloat, a.ListValues().DataType())
	}
	if vals.NullN() > 0 {
		return nil, ErrNulls
	}
	cols := int(a.DataType().(*arrow.FixedSizeListType).Len())
	rows := a.Len()
	m := dense.NewMatrix[float32](p, rows, cols)
	base := a.Data().Offset() * cols
	copy(m.Data(), vals.Float32Values()[base:base+rows*cols])
	return m, nil
}

// FixedSizeListFromMatrix32 builds a fixed_size_list<float32> array from m,
// one list element per matrix row. The caller owns the returned array and
// must Release it.
func FixedSizeListFromMatrix32(mem memory.Allocator, m *dense.Matrix[float32]) *array.FixedSizeList {
	b := array.NewFixedSizeListBuilder(mem, int32(m.Cols()), arrow.PrimitiveTypes.Float32)
	defer b.Release()
	vb := b.ValueBuilder().(*array.Float32Builder)
	for i := 0; i < m.Rows(); i++ {
		b.Append(true)
		vb.AppendValues(m.Row(i), nil)
	}
	return b.NewListArray()
}
