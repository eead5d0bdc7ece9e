package dense

import "fmt"

// Policy identifies the backend that should execute an operation. Every
// container carries exactly one canonical Policy tag; the resolver combines
// the tags of a call's input containers into the tag that governs the call.
type Policy uint8

const (
	// Unspecified is the zero Policy. It never resolves and is never
	// registered; containers are always constructed with a concrete tag.
	Unspecified Policy = iota

	// Seq executes on the host, sequentially.
	Seq

	// Par executes on the host with a worker pool.
	Par

	// Vendor executes on the host through a vendor BLAS implementation.
	Vendor

	// Device executes on an accelerator stream. Device containers are
	// resident in accelerator-owned memory; operations on them are
	// issued in order against the stream and complete asynchronously.
	Device
)

func (p Policy) String() string {
	switch p {
	case Seq:
		return "seq"
	case Par:
		return "par"
	case Vendor:
		return "vendor"
	case Device:
		return "device"
	}
	return "unspecified"
}

// MemorySpace is the resource domain a Policy's data lives in.
type MemorySpace uint8

const (
	NoSpace MemorySpace = iota
	Host
	Accel
)

func (s MemorySpace) String() string {
	switch s {
	case Host:
		return "host"
	case Accel:
		return "accel"
	}
	return "none"
}

// MemorySpace returns the memory space p's containers are resident in.
func (p Policy) MemorySpace() MemorySpace {
	switch p {
	case Seq, Par, Vendor:
		return Host
	case Device:
		return Accel
	}
	return NoSpace
}

// capability orders the host policies: combining two host tags yields the
// more capable one. Device is not on this chain; it is a separate memory
// space and does not refine or get refined by host tags.
func (p Policy) capability() int {
	switch p {
	case Seq:
		return 1
	case Par:
		return 2
	case Vendor:
		return 3
	}
	return 0
}

// Combine merges the policy tags of two input containers. Identical tags
// combine to themselves. Two host tags combine to the more capable one
// (Seq < Par < Vendor). A host tag and the Device tag never combine:
// silently picking either side would execute a kernel against data in the
// wrong memory space, so the conflict is reported instead. Combine is
// deterministic and commutative.
func Combine(a, b Policy) (Policy, error) {
	if a == Unspecified || b == Unspecified {
		// An Unspecified tag only arises from a nil container; report it
		// as such rather than as a conflict between real policies.
		return Unspecified, fmt.Errorf("%w: operand has no policy tag (%s and %s)", ErrNilContainer, a, b)
	}
	if a == b {
		return a, nil
	}
	if a.MemorySpace() != b.MemorySpace() {
		return Unspecified, fmt.Errorf("%w: %s (%s memory) and %s (%s memory)",
			ErrPolicyConflict, a, a.MemorySpace(), b, b.MemorySpace())
	}
	if a.capability() >= b.capability() {
		return a, nil
	}
	return b, nil
}

// ValidateOutput checks a write-only output container's tag against the
// policy resolved from the input containers. Outputs never drive
// resolution; they only need to be reachable from the resolved policy,
// i.e. live in the same memory space.
func ValidateOutput(resolved, out Policy) error {
	if out == Unspecified {
		return fmt.Errorf("%w: output container has no policy tag", ErrNilContainer)
	}
	if resolved.MemorySpace() != out.MemorySpace() {
		return fmt.Errorf("%w: resolved policy %s (%s memory) cannot write a %s-tagged output (%s memory)",
			ErrPolicyConflict, resolved, resolved.MemorySpace(), out, out.MemorySpace())
	}
	return nil
}

// ParsePolicy converts a tag name ("seq", "par", "vendor", "device") to a
// Policy.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range []Policy{Seq, Par, Vendor, Device} {
		if s == p.String() {
			return p, nil
		}
	}
	return Unspecified, fmt.Errorf("dense: unknown policy %q", s)
}
