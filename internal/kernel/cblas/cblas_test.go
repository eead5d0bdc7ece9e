package cblas

import (
	"errors"
	"math"
	"testing"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

func vendor64(t *testing.T) dispatch.Backend[float64] {
	t.Helper()
	b, err := dispatch.Lookup[float64](dispatch.OpGemm, dense.Vendor)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func ramp(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i%11)/4 - 1
	}
	return xs
}

func near(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol*(1+math.Abs(want[i])) {
			t.Fatalf("element %d: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestLevel1MatchesSeq(t *testing.T) {
	vb := vendor64(t)
	sb := seq.Backend[float64]{}
	const n = 257

	x := dense.VectorOf(dense.Vendor, ramp(n))
	yv := dense.VectorOf(dense.Vendor, ramp(n))
	ys := dense.VectorOf(dense.Seq, ramp(n))

	if err := vb.Axpy(x, yv, 1.75); err != nil {
		t.Fatal(err)
	}
	if err := sb.Axpy(x, ys, 1.75); err != nil {
		t.Fatal(err)
	}
	near(t, yv.Data(), ys.Data(), 1e-12)

	dv, err := vb.Dot(x, yv)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := sb.Dot(x, ys)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dv-ds) > 1e-9*(1+math.Abs(ds)) {
		t.Errorf("dot: %v vs %v", dv, ds)
	}

	nv, err := vb.Nrm2(x)
	if err != nil {
		t.Fatal(err)
	}
	ns, err := sb.Nrm2(x)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(nv-ns) > 1e-9*ns {
		t.Errorf("nrm2: %v vs %v", nv, ns)
	}

	iv, err := vb.Amax(x)
	if err != nil {
		t.Fatal(err)
	}
	is, err := sb.Amax(x)
	if err != nil {
		t.Fatal(err)
	}
	if iv != is {
		t.Errorf("amax: %d vs %d", iv, is)
	}

	av, err := vb.Asum(x)
	if err != nil {
		t.Fatal(err)
	}
	as, err := sb.Asum(x)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(av-as) > 1e-9*as {
		t.Errorf("asum: %v vs %v", av, as)
	}
}

func TestLevel2MatchesSeq(t *testing.T) {
	vb := vendor64(t)
	sb := seq.Backend[float64]{}
	const n = 31

	a := dense.MatrixOf(dense.Vendor, n, n+2, ramp(n*(n+2)))
	x := dense.VectorOf(dense.Vendor, ramp(n+2))
	yv := dense.NewVector[float64](dense.Vendor, n)
	ys := dense.NewVector[float64](dense.Seq, n)

	if err := vb.Gemv(a, x, yv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Gemv(a, x, ys); err != nil {
		t.Fatal(err)
	}
	near(t, yv.Data(), ys.Data(), 1e-10)

	// Symmetric operand for symv.
	s := dense.NewMatrix[float64](dense.Vendor, n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := float64((i*j)%7) - 3
			s.Set(i, j, v)
			s.Set(j, i, v)
		}
	}
	xs := dense.VectorOf(dense.Vendor, ramp(n))
	if err := vb.Symv(s, xs, yv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Symv(s, xs, ys); err != nil {
		t.Fatal(err)
	}
	near(t, yv.Data(), ys.Data(), 1e-10)

	av := dense.NewMatrix[float64](dense.Vendor, n, n)
	as := dense.NewMatrix[float64](dense.Seq, n, n)
	if err := vb.Ger(xs, xs, av); err != nil {
		t.Fatal(err)
	}
	if err := sb.Ger(xs, xs, as); err != nil {
		t.Fatal(err)
	}
	near(t, av.Data(), as.Data(), 1e-12)

	// Triangular routines read only the upper triangle.
	u := dense.NewMatrix[float64](dense.Vendor, n, n)
	for i := 0; i < n; i++ {
		u.Set(i, i, 2+float64(i%3))
		for j := i + 1; j < n; j++ {
			u.Set(i, j, float64((i+j)%5)/8)
		}
		for j := 0; j < i; j++ {
			u.Set(i, j, 99) // must be ignored
		}
	}
	tv := dense.VectorOf(dense.Vendor, ramp(n))
	ts := dense.VectorOf(dense.Seq, ramp(n))
	if err := vb.Trmv(u, tv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Trmv(u, ts); err != nil {
		t.Fatal(err)
	}
	near(t, tv.Data(), ts.Data(), 1e-10)

	if err := vb.Trsv(u, tv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Trsv(u, ts); err != nil {
		t.Fatal(err)
	}
	near(t, tv.Data(), ts.Data(), 1e-9)
}

func TestLevel3MatchesSeq(t *testing.T) {
	vb := vendor64(t)
	sb := seq.Backend[float64]{}
	const n = 24

	a := dense.MatrixOf(dense.Vendor, n, n, ramp(n*n))
	b := dense.MatrixOf(dense.Vendor, n, n, ramp(n*n))
	cv := dense.NewMatrix[float64](dense.Vendor, n, n)
	cs := dense.NewMatrix[float64](dense.Seq, n, n)

	if err := vb.Gemm(a, b, cv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Gemm(a, b, cs); err != nil {
		t.Fatal(err)
	}
	near(t, cv.Data(), cs.Data(), 1e-10)

	if err := vb.Syrk(a, cv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Syrk(a, cs); err != nil {
		t.Fatal(err)
	}
	near(t, cv.Data(), cs.Data(), 1e-10)

	if err := vb.Syr2k(a, b, cv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Syr2k(a, b, cs); err != nil {
		t.Fatal(err)
	}
	near(t, cv.Data(), cs.Data(), 1e-10)

	u := dense.NewMatrix[float64](dense.Vendor, n, n)
	for i := 0; i < n; i++ {
		u.Set(i, i, 3)
		for j := i + 1; j < n; j++ {
			u.Set(i, j, float64((i+2*j)%7)/9)
		}
	}
	if err := vb.Trmm(u, b, cv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Trmm(u, b, cs); err != nil {
		t.Fatal(err)
	}
	near(t, cv.Data(), cs.Data(), 1e-10)

	if err := vb.Trsm(u, b, cv); err != nil {
		t.Fatal(err)
	}
	if err := sb.Trsm(u, b, cs); err != nil {
		t.Fatal(err)
	}
	near(t, cv.Data(), cs.Data(), 1e-9)
}

func TestComplexRoutines(t *testing.T) {
	b, err := dispatch.Lookup[complex128](dispatch.OpDotc, dense.Vendor)
	if err != nil {
		t.Fatal(err)
	}

	x := dense.VectorOf(dense.Vendor, []complex128{1 + 2i, 3})
	y := dense.VectorOf(dense.Vendor, []complex128{3 + 4i, 1i})

	du, err := b.Dot(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if du != -5+13i {
		t.Errorf("dot = %v", du)
	}
	dc, err := b.Dotc(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if dc != 11+1i {
		t.Errorf("dotc = %v", dc)
	}

	// amax follows |re|+|im|.
	idx, err := b.Amax(dense.VectorOf(dense.Vendor, []complex128{3 + 4i, 6}))
	if err != nil || idx != 0 {
		t.Errorf("amax = %d, %v", idx, err)
	}
}

func TestSingularPrecheck(t *testing.T) {
	vb := vendor64(t)
	a := dense.MatrixOf(dense.Vendor, 2, 2, []float64{0, 1, 0, 2})
	x := dense.VectorOf(dense.Vendor, []float64{1, 2})
	if err := vb.Trsv(a, x); !errors.Is(err, dense.ErrSingular) {
		t.Errorf("trsv: err = %v", err)
	}

	b := dense.NewMatrix[float64](dense.Vendor, 2, 2)
	out := dense.NewMatrix[float64](dense.Vendor, 2, 2)
	if err := vb.Trsm(a, b, out); !errors.Is(err, dense.ErrSingular) {
		t.Errorf("trsm: err = %v", err)
	}
}
