package par

import (
	"errors"
	"math"
	"testing"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

// ramp builds a vector long enough to cross the parallel threshold with
// non-uniform values.
func ramp(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i%13) - 6.5
	}
	return xs
}

func TestElementwiseMatchesSeq(t *testing.T) {
	const n = 3 * minParallelLen
	pb := Backend[float64]{}
	sb := seq.Backend[float64]{}

	x := dense.VectorOf(dense.Par, ramp(n))
	yp := dense.VectorOf(dense.Par, ramp(n))
	ys := dense.VectorOf(dense.Seq, ramp(n))

	if err := pb.Axpy(x, yp, 2.5); err != nil {
		t.Fatal(err)
	}
	if err := sb.Axpy(x, ys, 2.5); err != nil {
		t.Fatal(err)
	}
	for i := range yp.Data() {
		if yp.At(i) != ys.At(i) {
			t.Fatalf("axpy diverges at %d: %v vs %v", i, yp.At(i), ys.At(i))
		}
	}

	outp := dense.NewVector[float64](dense.Par, n)
	outs := dense.NewVector[float64](dense.Seq, n)
	if err := pb.Axpby(x, yp, outp, 1.5, -0.5); err != nil {
		t.Fatal(err)
	}
	if err := sb.Axpby(x, yp, outs, 1.5, -0.5); err != nil {
		t.Fatal(err)
	}
	for i := range outp.Data() {
		if outp.At(i) != outs.At(i) {
			t.Fatalf("axpby diverges at %d", i)
		}
	}

	if err := pb.Xmy(x, yp, outp); err != nil {
		t.Fatal(err)
	}
	if err := sb.Xmy(x, yp, outs); err != nil {
		t.Fatal(err)
	}
	for i := range outp.Data() {
		if outp.At(i) != outs.At(i) {
			t.Fatalf("xmy diverges at %d", i)
		}
	}

	if err := pb.Scal(outp, 3); err != nil {
		t.Fatal(err)
	}
	if err := sb.Scal(outs, 3); err != nil {
		t.Fatal(err)
	}
	for i := range outp.Data() {
		if outp.At(i) != outs.At(i) {
			t.Fatalf("scal diverges at %d", i)
		}
	}
}

func TestReductionsMatchSeq(t *testing.T) {
	const n = 3*minParallelLen + 17
	pb := Backend[float64]{}
	sb := seq.Backend[float64]{}

	x := dense.VectorOf(dense.Par, ramp(n))
	y := dense.VectorOf(dense.Par, ramp(n))

	dp, err := pb.Dot(x, y)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := sb.Dot(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// Chunked summation reassociates, so compare with a tolerance.
	if math.Abs(dp-ds) > 1e-9*math.Abs(ds) {
		t.Errorf("dot: par %v vs seq %v", dp, ds)
	}

	np, err := pb.Nrm2(x)
	if err != nil {
		t.Fatal(err)
	}
	ns, err := sb.Nrm2(x)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(np-ns) > 1e-9*ns {
		t.Errorf("nrm2: par %v vs seq %v", np, ns)
	}
}

func TestDotDeterministic(t *testing.T) {
	const n = 2*minParallelLen + 5
	pb := Backend[float64]{}
	x := dense.VectorOf(dense.Par, ramp(n))
	y := dense.VectorOf(dense.Par, ramp(n))

	first, err := pb.Dot(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		again, err := pb.Dot(x, y)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("run %d: %v != %v", i, again, first)
		}
	}
}

func TestGemmMatchesSeq(t *testing.T) {
	const n = 64 // 64*64 crosses the threshold
	pb := Backend[float64]{}
	sb := seq.Backend[float64]{}

	data := ramp(n * n)
	a := dense.MatrixOf(dense.Par, n, n, data)
	b := dense.MatrixOf(dense.Par, n, n, ramp(n*n))
	cp := dense.NewMatrix[float64](dense.Par, n, n)
	cs := dense.NewMatrix[float64](dense.Seq, n, n)

	if err := pb.Gemm(a, b, cp); err != nil {
		t.Fatal(err)
	}
	if err := sb.Gemm(a, b, cs); err != nil {
		t.Fatal(err)
	}
	// Row chunks run the identical per-row kernel, so results are
	// bit-equal.
	for i, v := range cp.Data() {
		if v != cs.Data()[i] {
			t.Fatalf("gemm diverges at %d", i)
		}
	}
}

func TestTrsmMatchesSeq(t *testing.T) {
	const n = 64
	pb := Backend[float64]{}
	sb := seq.Backend[float64]{}

	a := dense.NewMatrix[float64](dense.Par, n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 2)
		for j := i + 1; j < n; j++ {
			a.Set(i, j, float64((i+j)%5)/10)
		}
	}
	b := dense.MatrixOf(dense.Par, n, n, ramp(n*n))
	xp := dense.NewMatrix[float64](dense.Par, n, n)
	xs := dense.NewMatrix[float64](dense.Seq, n, n)

	if err := pb.Trsm(a, b, xp); err != nil {
		t.Fatal(err)
	}
	if err := sb.Trsm(a, b, xs); err != nil {
		t.Fatal(err)
	}
	for i, v := range xp.Data() {
		if v != xs.Data()[i] {
			t.Fatalf("trsm diverges at %d", i)
		}
	}
}

func TestTrsmSingularDiagnostic(t *testing.T) {
	const n = 64
	pb := Backend[float64]{}
	a := dense.NewMatrix[float64](dense.Par, n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	a.Set(n/2, n/2, 0)
	b := dense.NewMatrix[float64](dense.Par, n, n)
	x := dense.NewMatrix[float64](dense.Par, n, n)
	if err := pb.Trsm(a, b, x); !errors.Is(err, dense.ErrSingular) {
		t.Errorf("err = %v", err)
	}
}

func TestSmallOperandsFallThrough(t *testing.T) {
	pb := Backend[float64]{}
	x := dense.VectorOf(dense.Par, []float64{1, 2, 3})
	y := dense.VectorOf(dense.Par, []float64{4, 5, 6})
	if err := pb.Axpy(x, y, 2); err != nil {
		t.Fatal(err)
	}
	want := []float64{6, 9, 12}
	for i, v := range y.Data() {
		if v != want[i] {
			t.Fatalf("y = %v, want %v", y.Data(), want)
		}
	}

	d, err := pb.Dot(x, x)
	if err != nil || d != 14 {
		t.Errorf("dot = %v, %v", d, err)
	}
}

func TestLengthMismatch(t *testing.T) {
	pb := Backend[float64]{}
	x := dense.NewVector[float64](dense.Par, 4)
	y := dense.NewVector[float64](dense.Par, 5)
	if err := pb.Axpy(x, y, 1); !errors.Is(err, dense.ErrDimensionMismatch) {
		t.Errorf("err = %v", err)
	}
}
