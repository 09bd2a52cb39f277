package distance

import "testing"

func TestJaroWinklerKernel_ApplyPair(t *testing.T) {
	k, err := NewJaroWinkler(0.10, 4, DefaultJaroWeights())
	if err != nil {
		t.Fatalf("NewJaroWinkler: %v", err)
	}

	got, err := k.ApplyPair("CASSLKPNTEAFF", "CASSAHIANYGYTF")
	if err != nil {
		t.Fatalf("ApplyPair error: %v", err)
	}
	want := 0.2001
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("ApplyPair = %v, want ~%v", got, want)
	}
}

func TestJaroWinklerKernel_Identical(t *testing.T) {
	k, _ := NewJaroWinkler(0.10, 4, DefaultJaroWeights())
	got, err := k.ApplyPair("CASSLKPNTEAFF", "CASSLKPNTEAFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(got, 0.0, 1e-9) {
		t.Errorf("ApplyPair(identical) = %v, want 0.0", got)
	}
}

func TestNewJaroWinkler_ValidatesPrefixScale(t *testing.T) {
	if _, err := NewJaroWinkler(0.3, 4, DefaultJaroWeights()); err == nil {
		t.Error("expected error for p > 0.25")
	}
	if _, err := NewJaroWinkler(-0.1, 4, DefaultJaroWeights()); err == nil {
		t.Error("expected error for negative p")
	}
}

func TestNewJaroWinkler_ValidatesMaxPrefix(t *testing.T) {
	if _, err := NewJaroWinkler(0.1, -1, DefaultJaroWeights()); err == nil {
		t.Error("expected error for negative max_l")
	}
}

func TestJaroWinklerKernel_Name(t *testing.T) {
	k, _ := NewJaroWinkler(0.1, 4, DefaultJaroWeights())
	if k.Name() != "jaro_winkler" {
		t.Error("unexpected kernel name")
	}
}
