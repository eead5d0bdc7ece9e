// Package par is the parallel-host kernel realization. It embeds the
// sequential realization and overrides the routines where chunking the
// index space over a worker pool pays off; everything else falls through
// to seq. Small operands always run sequentially.
package par

import (
	"runtime"
	"sync"
)

// numWorkers defines the default parallelism for host operations.
var numWorkers = runtime.NumCPU()

// minParallelLen is the vector length below which chunking costs more
// than it saves.
const minParallelLen = 2048

// parallelRange splits [0, n) into one chunk per worker and runs fn on
// each chunk concurrently.
func parallelRange(n int, fn func(lo, hi int)) {
	chunk := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// parallelPartials evaluates fn over per-worker chunks of [0, n) and
// returns the partial results in chunk order, so the caller's final
// combine is deterministic for a fixed worker count.
func parallelPartials[R any](n int, fn func(lo, hi int) R) []R {
	chunk := (n + numWorkers - 1) / numWorkers
	parts := make([]R, 0, numWorkers)
	type span struct{ lo, hi int }
	var spans []span
	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
		var zero R
		parts = append(parts, zero)
	}
	var wg sync.WaitGroup
	for i, s := range spans {
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			parts[i] = fn(lo, hi)
		}(i, s.lo, s.hi)
	}
	wg.Wait()
	return parts
}
