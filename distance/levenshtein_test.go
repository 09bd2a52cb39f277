package distance

import "testing"

func TestLevenshteinKernel_ApplyPair(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"fixture pair", "AASQ", "PASQ", 1.0},
		{"longer pair", "CASSLKPNTEAFF", "CASSAHIANYGYTF", 8.0},
		{"identical", "kitten", "kitten", 0.0},
		{"empty a", "", "sitting", 7.0},
		{"empty b", "kitten", "", 6.0},
		{"classic", "kitten", "sitting", 3.0},
	}

	k := NewLevenshtein(0)
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

func TestLevenshteinKernel_Batch(t *testing.T) {
	k := NewLevenshtein(0)
	seqs := [][2]string{{"GTA", "HLA"}, {"GTA", "KKR"}, {"HLA", "KKR"}}
	want := []float64{2.0, 3.0, 3.0}

	got, err := Apply(k, seqs)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLevenshteinKernel_ExtraCost(t *testing.T) {
	k := NewLevenshtein(1)
	got, err := k.ApplyPair("AASQ", "PASQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.0 {
		t.Errorf("ApplyPair with extra_cost=1 = %v, want 2.0", got)
	}
}

func TestDistanceAndScore(t *testing.T) {
	if d := Distance("kitten", "sitting"); d != 3 {
		t.Errorf("Distance = %d, want 3", d)
	}
	if s := Score("kitten", "kitten"); s != 1.0 {
		t.Errorf("Score(identical) = %v, want 1.0", s)
	}
	if s := Score("", ""); s != 1.0 {
		t.Errorf("Score(empty, empty) = %v, want 1.0", s)
	}
}
