// Package dev is the accelerator-resident kernel realization, modeled as a
// stream-ordered asynchronous backend: operations on Device-tagged
// containers are issued in order against a stream and executed by the
// stream's worker goroutine. Mutating routines return as soon as they are
// enqueued; a failed kernel poisons the stream and the error surfaces from
// Sync, the same sticky-error contract accelerator runtimes use.
// Value-returning routines synchronize before returning.
package dev

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const defaultQueueDepth = 1024

// Stream executes enqueued kernels in FIFO order. Data dependencies
// between operations issued on one stream are preserved by construction;
// the dispatch layer never reorders calls.
type Stream struct {
	tasks chan task

	mu     sync.Mutex
	sticky error

	done chan struct{}
}

type task struct {
	fn      func() error
	errc    chan error
	barrier chan struct{}
}

// NewStream starts a stream with its own worker goroutine.
func NewStream() *Stream {
	s := &Stream{
		tasks: make(chan task, defaultQueueDepth),
		done:  make(chan struct{}),
	}
	go s.run()
	log.Debug().Msg("Device stream started")
	return s
}

var (
	defaultStream     *Stream
	defaultStreamOnce sync.Once
)

// Default returns the process-wide stream the registered Device backends
// issue against.
func Default() *Stream {
	defaultStreamOnce.Do(func() {
		defaultStream = NewStream()
	})
	return defaultStream
}

func (s *Stream) run() {
	defer close(s.done)
	for t := range s.tasks {
		if t.barrier != nil {
			close(t.barrier)
			continue
		}
		if err := s.Err(); err != nil {
			// Poisoned stream: drain without executing.
			if t.errc != nil {
				t.errc <- err
			}
			streamDropped.Inc()
			continue
		}
		// The sticky error is recorded before the caller is unblocked,
		// so Err observes the failure as soon as the failed call
		// returns.
		err := t.fn()
		if err != nil {
			s.mu.Lock()
			if s.sticky == nil {
				s.sticky = err
			}
			s.mu.Unlock()
			streamFailures.Inc()
		} else {
			streamCompleted.Inc()
		}
		if t.errc != nil {
			t.errc <- err
		}
	}
}

// submit enqueues a kernel and returns without waiting for it.
func (s *Stream) submit(fn func() error) {
	streamDepth.Set(float64(len(s.tasks)))
	s.tasks <- task{fn: fn}
}

// call enqueues a kernel and waits for it and everything before it to
// complete. Returns the kernel's error, or the stream's sticky error if it
// was already poisoned.
func (s *Stream) call(fn func() error) error {
	errc := make(chan error, 1)
	streamDepth.Set(float64(len(s.tasks)))
	s.tasks <- task{fn: fn, errc: errc}
	return <-errc
}

// Sync blocks until every operation issued so far has completed and
// returns the stream's sticky error, if any.
func (s *Stream) Sync() error {
	barrier := make(chan struct{})
	s.tasks <- task{barrier: barrier}
	<-barrier
	return s.Err()
}

// Err returns the sticky error without synchronizing.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sticky
}

// Reset clears the sticky error after the caller has handled it.
func (s *Stream) Reset() {
	s.mu.Lock()
	s.sticky = nil
	s.mu.Unlock()
}

// Close stops the worker after the queue drains. The default stream is
// never closed.
func (s *Stream) Close() {
	close(s.tasks)
	<-s.done
	log.Debug().Msg("Device stream stopped")
}
