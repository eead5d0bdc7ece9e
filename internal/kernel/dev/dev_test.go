package dev

import (
	"errors"
	"testing"

	"github.com/23skdu/longbow-bowyer/dense"
)

func TestStreamOrdering(t *testing.T) {
	s := NewStream()
	defer s.Close()
	b := New[float64](s)

	x := dense.NewVector[float64](dense.Device, 4)
	y := dense.NewVector[float64](dense.Device, 4)

	// Fill, scale, accumulate: each step depends on the one before it.
	if err := b.Fill(x, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Scal(x, 3); err != nil {
		t.Fatal(err)
	}
	if err := b.Axpy(x, y, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Sync(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if y.At(i) != 6 {
			t.Fatalf("y = %v", y.Data())
		}
	}
}

func TestValueOpsSynchronize(t *testing.T) {
	s := NewStream()
	defer s.Close()
	b := New[float64](s)

	x := dense.NewVector[float64](dense.Device, 8)
	if err := b.Fill(x, 2); err != nil {
		t.Fatal(err)
	}
	// Dot waits for the pending fill without an explicit Sync.
	d, err := b.Dot(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if d != 32 {
		t.Errorf("dot = %v", d)
	}
}

func TestStickyErrorPoisonsStream(t *testing.T) {
	s := NewStream()
	defer s.Close()
	b := New[float64](s)

	x := dense.NewVector[float64](dense.Device, 4)
	short := dense.NewVector[float64](dense.Device, 2)

	// Enqueues fine, fails on the stream.
	if err := b.Axpy(x, short, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Sync(); !errors.Is(err, dense.ErrDimensionMismatch) {
		t.Fatalf("sync: err = %v", err)
	}

	// Work after the poison is dropped; the sticky error surfaces.
	if err := b.Fill(x, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Dot(x, x); !errors.Is(err, dense.ErrDimensionMismatch) {
		t.Errorf("poisoned call: err = %v", err)
	}
	if err := s.Err(); !errors.Is(err, dense.ErrDimensionMismatch) {
		t.Errorf("Err: %v", err)
	}

	s.Reset()
	if err := s.Sync(); err != nil {
		t.Errorf("after reset: %v", err)
	}
	if err := b.Fill(x, 5); err != nil {
		t.Fatal(err)
	}
	d, err := b.Dot(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if d != 100 {
		t.Errorf("dot after reset = %v", d)
	}
}

func TestValueOpErrorReturnsDirectly(t *testing.T) {
	s := NewStream()
	defer s.Close()
	b := New[float64](s)

	if _, err := b.Dot(nil, nil); !errors.Is(err, dense.ErrNilContainer) {
		t.Errorf("err = %v", err)
	}
	// The failure is sticky until reset.
	if err := s.Err(); !errors.Is(err, dense.ErrNilContainer) {
		t.Errorf("Err: %v", err)
	}
	s.Reset()
}

func TestStickyRecordedBeforeCallReturns(t *testing.T) {
	s := NewStream()
	defer s.Close()
	b := New[float64](s)

	// The sticky error must already be visible the instant the failed
	// value-returning call unblocks, on every iteration.
	for i := 0; i < 200; i++ {
		if _, err := b.Dot(nil, nil); !errors.Is(err, dense.ErrNilContainer) {
			t.Fatalf("iter %d: err = %v", i, err)
		}
		if err := s.Err(); !errors.Is(err, dense.ErrNilContainer) {
			t.Fatalf("iter %d: Err = %v", i, err)
		}
		s.Reset()
	}
}

func TestDefaultStreamSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default returned distinct streams")
	}
}
