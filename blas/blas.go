// Package blas is the operation facade of the dispatch layer: one entry
// point per BLAS-like routine, each in two forms. The canonical form
// (XxxOn) takes the execution policy first and forwards straight to the
// registered kernel realization. The convenience form (Xxx) has the same
// signature minus the policy; it derives the policy from the input
// containers' tags, validates any write-only output containers against the
// resolved policy, and re-invokes the canonical form.
//
// The facade performs no numeric work and no shape checking. Dimension
// validation belongs to the kernel realizations and their errors propagate
// unmasked; the facade's own failure modes are policy conflicts, result
// type mismatches and dispatch misses, all surfaced as errors and never
// silently recovered.
package blas

import (
	"fmt"

	"github.com/23skdu/longbow-bowyer/dense"
	"github.com/23skdu/longbow-bowyer/internal/dispatch"
	"github.com/23skdu/longbow-bowyer/internal/kernel/dev"
	"github.com/23skdu/longbow-bowyer/scalar"

	// Kernel realizations register themselves with the dispatch table.
	_ "github.com/23skdu/longbow-bowyer/internal/kernel/cblas"
	_ "github.com/23skdu/longbow-bowyer/internal/kernel/par"
	_ "github.com/23skdu/longbow-bowyer/internal/kernel/seq"
)

// ErrNoRealization is re-exported so callers can match dispatch misses
// without importing internal packages.
var ErrNoRealization = dispatch.ErrNoRealization

// Sync blocks until every Device-policy operation issued so far has
// completed and returns the stream's sticky error, if any. Mutating
// routines under the Device policy return as soon as they are enqueued;
// their results are observable only after a Sync or a value-returning
// routine on the same stream.
func Sync() error {
	return dev.Default().Sync()
}

// ResetDevice clears the device stream's sticky error after the caller has
// handled it. Operations enqueued between the failure and the reset were
// dropped, not executed.
func ResetDevice() {
	dev.Default().Reset()
}

// Policies lists the policy tags with registered kernel realizations.
func Policies() []dense.Policy {
	return dispatch.Policies()
}

// VerifyRegistry reports the first (policy, kind) pair of the declared
// backend set missing a kernel realization. A non-nil result is a build
// defect, not a runtime condition.
func VerifyRegistry() error {
	return dispatch.Verify(
		[]dense.Policy{dense.Seq, dense.Par, dense.Vendor, dense.Device},
		[]scalar.Kind{scalar.Float32, scalar.Float64, scalar.Complex64, scalar.Complex128},
	)
}

// resolve combines the policy tags of a call's input containers. Inputs
// are the resolution basis; write-only outputs are checked separately with
// validateOutputs so an output tag can never downgrade or redirect an
// otherwise-resolved read path.
func resolve(inputs ...dense.Tagged) (dense.Policy, error) {
	p := inputs[0].Tag()
	if p == dense.Unspecified {
		return dense.Unspecified, fmt.Errorf("blas: input container has no policy tag: %w", dense.ErrNilContainer)
	}
	for _, c := range inputs[1:] {
		t := c.Tag()
		if t == dense.Unspecified {
			return dense.Unspecified, fmt.Errorf("blas: input container has no policy tag: %w", dense.ErrNilContainer)
		}
		q, err := dense.Combine(p, t)
		if err != nil {
			dispatch.PolicyConflicts.Inc()
			return dense.Unspecified, err
		}
		p = q
	}
	return p, nil
}

func validateOutputs(p dense.Policy, outs ...dense.Tagged) error {
	for _, o := range outs {
		if err := dense.ValidateOutput(p, o.Tag()); err != nil {
			dispatch.PolicyConflicts.Inc()
			return err
		}
	}
	return nil
}

// normKindCheck verifies that the requested result kind R is the norm kind
// the trait layer derives for the element kind of T.
func normKindCheck[R scalar.Real, T scalar.Scalar](op dispatch.Op) error {
	want := scalar.NormOf(scalar.KindOf[T]())
	if got := scalar.KindOf[R](); got != want {
		return fmt.Errorf("%w: %s over %s returns %s, requested %s",
			dense.ErrTypeMismatch, op, scalar.KindOf[T](), want, got)
	}
	return nil
}
