package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/scalar"
)

// ErrNoRealization is the dispatch-miss error: a (routine, policy, kind)
// combination with no registered kernel realization. A miss is a
// build/registration defect and fails loudly; dispatch never falls back to
// another policy, because that could execute a kernel against data in the
// wrong memory space.
var ErrNoRealization = errors.New("dispatch: no kernel realization registered")

type key struct {
	policy dense.Policy
	kind   scalar.Kind
}

var (
	mu    sync.RWMutex
	table = make(map[key]any)
)

// Register installs the realization set b for policy p over element type T.
// Kernel packages call this from init; registering the same (policy, kind)
// twice is a programmer error and panics.
func Register[T scalar.Scalar](p dense.Policy, b Backend[T]) {
	k := key{policy: p, kind: scalar.KindOf[T]()}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := table[k]; dup {
		panic(fmt.Sprintf("dispatch: duplicate realization for policy %s over %s", k.policy, k.kind))
	}
	table[k] = b
	log.Debug().Str("policy", p.String()).Str("kind", k.kind.String()).Msg("Registered kernel realization")
}

// Lookup selects the realization set for op under policy p over element
// type T. Exactly one realization serves each registered pair; a miss is
// reported, never papered over.
func Lookup[T scalar.Scalar](op Op, p dense.Policy) (Backend[T], error) {
	k := key{policy: p, kind: scalar.KindOf[T]()}
	mu.RLock()
	b, ok := table[k]
	mu.RUnlock()
	if !ok {
		dispatchMisses.Inc()
		return nil, fmt.Errorf("%w: %s under policy %s over %s", ErrNoRealization, op, p, k.kind)
	}
	dispatched.WithLabelValues(string(op), p.String()).Inc()
	return b.(Backend[T]), nil
}

// Policies returns the policies with at least one registered realization.
func Policies() []dense.Policy {
	mu.RLock()
	defer mu.RUnlock()
	seen := make(map[dense.Policy]bool)
	var out []dense.Policy
	for k := range table {
		if !seen[k.policy] {
			seen[k.policy] = true
			out = append(out, k.policy)
		}
	}
	return out
}

// Verify checks that every (policy, kind) pair is registered. The facade's
// registry test runs this over the full declared policy and kind sets so a
// dispatch miss surfaces at build time rather than call time.
func Verify(policies []dense.Policy, kinds []scalar.Kind) error {
	mu.RLock()
	defer mu.RUnlock()
	for _, p := range policies {
		for _, kd := range kinds {
			if _, ok := table[key{policy: p, kind: kd}]; !ok {
				return fmt.Errorf("%w: policy %s over %s", ErrNoRealization, p, kd)
			}
		}
	}
	return nil
}
