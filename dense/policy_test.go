package dense

import (
	"errors"
	"testing"
)

func TestCombineRefinement(t *testing.T) {
	cases := []struct{ a, b, want Policy }{
		{Seq, Seq, Seq},
		{Par, Par, Par},
		{Vendor, Vendor, Vendor},
		{Device, Device, Device},
		{Seq, Par, Par},
		{Seq, Vendor, Vendor},
		{Par, Vendor, Vendor},
	}
	for _, c := range cases {
		got, err := Combine(c.a, c.b)
		if err != nil {
			t.Errorf("Combine(%s, %s): %v", c.a, c.b, err)
			continue
		}
		if got != c.want {
			t.Errorf("Combine(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestCombineCommutative(t *testing.T) {
	all := []Policy{Unspecified, Seq, Par, Vendor, Device}
	for _, a := range all {
		for _, b := range all {
			ab, errAB := Combine(a, b)
			ba, errBA := Combine(b, a)
			if ab != ba || (errAB == nil) != (errBA == nil) {
				t.Errorf("Combine(%s, %s) = (%s, %v) but Combine(%s, %s) = (%s, %v)",
					a, b, ab, errAB, b, a, ba, errBA)
			}
		}
	}
}

func TestCombineConflicts(t *testing.T) {
	for _, host := range []Policy{Seq, Par, Vendor} {
		if _, err := Combine(host, Device); !errors.Is(err, ErrPolicyConflict) {
			t.Errorf("Combine(%s, device): err = %v", host, err)
		}
	}
	// An untagged operand is a nil container, not a conflict between two
	// real policies, so the error class differs.
	for _, pair := range [][2]Policy{{Unspecified, Seq}, {Device, Unspecified}, {Unspecified, Unspecified}} {
		if _, err := Combine(pair[0], pair[1]); !errors.Is(err, ErrNilContainer) {
			t.Errorf("Combine(%s, %s): err = %v", pair[0], pair[1], err)
		}
	}
}

func TestValidateOutput(t *testing.T) {
	// Any host output is reachable from a host-resolved policy.
	if err := ValidateOutput(Vendor, Seq); err != nil {
		t.Errorf("vendor -> seq output: %v", err)
	}
	if err := ValidateOutput(Device, Device); err != nil {
		t.Errorf("device -> device output: %v", err)
	}
	if err := ValidateOutput(Seq, Device); !errors.Is(err, ErrPolicyConflict) {
		t.Errorf("seq -> device output: err = %v", err)
	}
	if err := ValidateOutput(Device, Par); !errors.Is(err, ErrPolicyConflict) {
		t.Errorf("device -> par output: err = %v", err)
	}
	if err := ValidateOutput(Seq, Unspecified); !errors.Is(err, ErrNilContainer) {
		t.Errorf("untagged output: err = %v", err)
	}
}

func TestMemorySpace(t *testing.T) {
	for _, p := range []Policy{Seq, Par, Vendor} {
		if p.MemorySpace() != Host {
			t.Errorf("%s: space %s", p, p.MemorySpace())
		}
	}
	if Device.MemorySpace() != Accel {
		t.Errorf("device: space %s", Device.MemorySpace())
	}
	if Unspecified.MemorySpace() != NoSpace {
		t.Errorf("unspecified: space %s", Unspecified.MemorySpace())
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Seq, Par, Vendor, Device} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %s, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("gpu"); err == nil {
		t.Error("unknown policy name parsed")
	}
}
