package arrowvec

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/longbow-bowyer/dense"
)

func TestVectorRoundTrip(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewFloat32Builder(pool)
	defer b.Release()
	b.AppendValues([]float32{1.5, -2, 3}, nil)
	arr := b.NewFloat32Array()
	defer arr.Release()

	v, err := VectorFromFloat32(dense.Par, arr)
	require.NoError(t, err)
	assert.Equal(t, dense.Par, v.Tag())
	assert.Equal(t, []float32{1.5, -2, 3}, v.Data())

	back := Float32FromVector(pool, v)
	defer back.Release()
	assert.Equal(t, arr.Float32Values(), back.Float32Values())
}

func TestVectorFromFloat64(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewFloat64Builder(pool)
	defer b.Release()
	b.AppendValues([]float64{1, 2}, nil)
	arr := b.NewFloat64Array()
	defer arr.Release()

	v, err := VectorFromFloat64(dense.Seq, arr)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, v.Data())
}

func TestNullsRejected(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewFloat32Builder(pool)
	defer b.Release()
	b.Append(1)
	b.AppendNull()
	arr := b.NewFloat32Array()
	defer arr.Release()

	_, err := VectorFromFloat32(dense.Seq, arr)
	assert.ErrorIs(t, err, ErrNulls)
}

func TestMatrixRoundTrip(t *testing.T) {
	pool := memory.NewGoAllocator()

	m := dense.MatrixOf(dense.Vendor, 2, 3, []float32{1, 2, 3, 4, 5, 6})
	lst := FixedSizeListFromMatrix32(pool, m)
	defer lst.Release()

	assert.Equal(t, 2, lst.Len())

	back, err := MatrixFromFixedSizeList32(dense.Vendor, lst)
	require.NoError(t, err)
	assert.Equal(t, 2, back.Rows())
	assert.Equal(t, 3, back.Cols())
	assert.Equal(t, m.Data(), back.Data())
}

func TestMatrixWrongValueType(t *testing.T) {
	pool := memory.NewGoAllocator()

	b := array.NewFixedSizeListBuilder(pool, 2, arrow.PrimitiveTypes.Int32)
	defer b.Release()
	vb := b.ValueBuilder().(*array.Int32Builder)
	b.Append(true)
	vb.AppendValues([]int32{1, 2}, nil)
	lst := b.NewListArray()
	defer lst.Release()

	_, err := MatrixFromFixedSizeList32(dense.Seq, lst)
	assert.ErrorIs(t, err, ErrNotFloat)
}
