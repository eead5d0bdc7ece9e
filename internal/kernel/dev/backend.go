package dev

import (
	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/kernel/seq"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// Backend issues every routine against a stream. The kernels themselves
// are the sequential realizations running on the stream's goroutine; what
// this backend adds is the asynchronous, order-preserving contract of an
// accelerator-resident policy.
type Backend[T scalar.Scalar] struct {
	stream *Stream
	k      seq.Backend[T]
}

// New returns a realization set issuing against s.
func New[T scalar.Scalar](s *Stream) Backend[T] {
	return Backend[T]{stream: s}
}

// Stream returns the stream this backend issues against.
func (b Backend[T]) Stream() *Stream { return b.stream }

func (b Backend[T]) Amax(x *dense.Vector[T]) (int, error) {
	var res int
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Amax(x)
		return e
	})
	return res, err
}

func (b Backend[T]) Asum(x *dense.Vector[T]) (float64, error) {
	var res float64
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Asum(x)
		return e
	})
	return res, err
}

func (b Backend[T]) Axpy(x, y *dense.Vector[T], alpha T) error {
	b.stream.submit(func() error { return b.k.Axpy(x, y, alpha) })
	return nil
}

func (b Backend[T]) Axpby(x, y, out *dense.Vector[T], alpha, beta T) error {
	b.stream.submit(func() error { return b.k.Axpby(x, y, out, alpha, beta) })
	return nil
}

func (b Backend[T]) Axpbypcz(x, y, z, out *dense.Vector[T], alpha, beta, gamma T) error {
	b.stream.submit(func() error { return b.k.Axpbypcz(x, y, z, out, alpha, beta, gamma) })
	return nil
}

func (b Backend[T]) Xmy(x, y, out *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Xmy(x, y, out) })
	return nil
}

func (b Backend[T]) Copy(x, y *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Copy(x, y) })
	return nil
}

func (b Backend[T]) Dot(x, y *dense.Vector[T]) (T, error) {
	var res T
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Dot(x, y)
		return e
	})
	return res, err
}

func (b Backend[T]) Dotc(x, y *dense.Vector[T]) (T, error) {
	var res T
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Dotc(x, y)
		return e
	})
	return res, err
}

func (b Backend[T]) Fill(x *dense.Vector[T], alpha T) error {
	b.stream.submit(func() error { return b.k.Fill(x, alpha) })
	return nil
}

func (b Backend[T]) Nrm1(x *dense.Vector[T]) (float64, error) {
	var res float64
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Nrm1(x)
		return e
	})
	return res, err
}

func (b Backend[T]) Nrm2(x *dense.Vector[T]) (float64, error) {
	var res float64
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Nrm2(x)
		return e
	})
	return res, err
}

func (b Backend[T]) Nrmmax(x *dense.Vector[T]) (float64, error) {
	var res float64
	err := b.stream.call(func() error {
		var e error
		res, e = b.k.Nrmmax(x)
		return e
	})
	return res, err
}

func (b Backend[T]) Scal(x *dense.Vector[T], alpha T) error {
	b.stream.submit(func() error { return b.k.Scal(x, alpha) })
	return nil
}

func (b Backend[T]) Gemv(a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Gemv(a, x, y) })
	return nil
}

func (b Backend[T]) Ger(x, y *dense.Vector[T], a *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Ger(x, y, a) })
	return nil
}

func (b Backend[T]) Symv(a *dense.Matrix[T], x, y *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Symv(a, x, y) })
	return nil
}

func (b Backend[T]) Syr(x *dense.Vector[T], a *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Syr(x, a) })
	return nil
}

func (b Backend[T]) Trmv(a *dense.Matrix[T], x *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Trmv(a, x) })
	return nil
}

func (b Backend[T]) Trsv(a *dense.Matrix[T], x *dense.Vector[T]) error {
	b.stream.submit(func() error { return b.k.Trsv(a, x) })
	return nil
}

func (b Backend[T]) Gemm(a, bm, c *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Gemm(a, bm, c) })
	return nil
}

func (b Backend[T]) Symm(a, bm, c *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Symm(a, bm, c) })
	return nil
}

func (b Backend[T]) Syrk(a, c *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Syrk(a, c) })
	return nil
}

func (b Backend[T]) Syr2k(a, bm, c *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Syr2k(a, bm, c) })
	return nil
}

func (b Backend[T]) Trmm(a, bm, c *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Trmm(a, bm, c) })
	return nil
}

func (b Backend[T]) Trsm(a, bm, x *dense.Matrix[T]) error {
	b.stream.submit(func() error { return b.k.Trsm(a, bm, x) })
	return nil
}
