package distance

import "testing"

func TestHammingKernel_ApplyPair(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"fixture pair", "AASQ", "PASQ", 1.0},
		{"identical", "CASSLKPNTEAFF", "CASSLKPNTEAFF", 0.0},
		{"all mismatched", "AAAA", "CCCC", 4.0},
		{"empty", "", "", 0.0},
	}

	k := NewHamming(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := k.ApplyPair(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ApplyPair(%q, %q) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("ApplyPair(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHammingKernel_MismatchScoreScales(t *testing.T) {
	k := NewHamming(2.5)
	got, err := k.ApplyPair("AASQ", "PASQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.5 {
		t.Errorf("ApplyPair = %v, want 2.5", got)
	}
}

func TestHammingKernel_ShapeMismatch(t *testing.T) {
	k := NewHamming(1)
	_, err := k.ApplyPair("AA", "AAA")
	if err == nil {
		t.Fatal("expected an error for unequal-length sequences")
	}
}

func TestHammingKernel_Name(t *testing.T) {
	if (&HammingKernel{}).Name() != "hamming" {
		t.Error("unexpected kernel name")
	}
}
