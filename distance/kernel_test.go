package distance

import "testing"

// allKernels returns one instance of every kernel except the equal-length
// ones (Hamming, TCRdistComponent, checked separately below), for shared
// identity/non-negativity property checks.
func allKernels(t *testing.T) []Kernel {
	t.Helper()

	jaro, err := NewJaro(DefaultJaroWeights())
	if err != nil {
		t.Fatalf("NewJaro: %v", err)
	}
	jw, err := NewJaroWinkler(0.1, 4, DefaultJaroWeights())
	if err != nil {
		t.Fatalf("NewJaroWinkler: %v", err)
	}

	return []Kernel{
		NewLevenshtein(0),
		NewOSA(),
		NewLCS(),
		jaro,
		jw,
		NewCdrDist(blosum45(t), 10, 1),
		NewDamerauLevenshtein(),
	}
}

func TestKernels_IdenticalSequencesScoreZero(t *testing.T) {
	for _, k := range allKernels(t) {
		t.Run(k.Name(), func(t *testing.T) {
			got, err := k.ApplyPair("CASSQDRGEQFF", "CASSQDRGEQFF")
			if err != nil {
				t.Fatalf("ApplyPair(identical) error: %v", err)
			}
			if !approxEqual(got, 0.0, 1e-9) {
				t.Errorf("%s: ApplyPair(identical) = %v, want 0.0", k.Name(), got)
			}
		})
	}
}

func TestKernels_NonNegative(t *testing.T) {
	for _, k := range allKernels(t) {
		t.Run(k.Name(), func(t *testing.T) {
			got, err := k.ApplyPair("CASSQDRGEQFF", "CASGTLNTEAFF")
			if err != nil {
				t.Fatalf("ApplyPair error: %v", err)
			}
			if got < 0 {
				t.Errorf("%s: ApplyPair = %v, want >= 0", k.Name(), got)
			}
		})
	}
}

func TestKernels_EqualLengthRequired(t *testing.T) {
	equalLengthOnly := []Kernel{
		NewHamming(1),
		NewTCRdistComponent(blosum62(t), 4, WithGapSymbol("-"), WithWeight(1)),
	}
	for _, k := range equalLengthOnly {
		t.Run(k.Name(), func(t *testing.T) {
			if _, err := k.ApplyPair("AB", "ABC"); err == nil {
				t.Errorf("%s: expected error for unequal-length sequences", k.Name())
			}
		})
	}
}

func TestApply_PropagatesKernelError(t *testing.T) {
	k := NewHamming(1)
	_, err := Apply(k, [][2]string{{"AA", "AAA"}})
	if err == nil {
		t.Fatal("expected Apply to propagate the kernel error")
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	k := NewLevenshtein(0)
	seqs := [][2]string{{"A", "B"}, {"AA", "AA"}, {"", "XYZ"}}
	got, err := Apply(k, seqs)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	want := []float64{1, 0, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, got[i], want[i])
		}
	}
}
