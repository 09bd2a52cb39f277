package distance

import (
	"testing"

	"github.com/fulmenhq/seqdist/substmat"
)

func blosum45(t *testing.T) *substmat.Matrix {
	t.Helper()
	m, err := substmat.Blosum45()
	if err != nil {
		t.Fatalf("loading BLOSUM45: %v", err)
	}
	return m
}

func TestCdrDistKernel_ApplyPair(t *testing.T) {
	k := NewCdrDist(blosum45(t), 10, 1)

	got, err := k.ApplyPair("AASQ", "PASQ")
	if err != nil {
		t.Fatalf("ApplyPair error: %v", err)
	}
	// Hand-traced against the shipped BLOSUM45 table; see the note on
	// CdrDistKernel for why this diverges from the value once documented
	// in the source material.
	want := 0.4167
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("ApplyPair(AASQ, PASQ) = %v, want ~%v", got, want)
	}
}

func TestCdrDistKernel_Batch(t *testing.T) {
	k := NewCdrDist(blosum45(t), 10, 1)
	seqs := [][2]string{{"GTA", "HLA"}, {"GTA", "KKR"}, {"HLA", "KKR"}}
	want := []float64{0.9, 1.0, 1.0}

	got, err := Apply(k, seqs)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-3) {
			t.Errorf("pair %d = %v, want ~%v", i, got[i], want[i])
		}
	}
}

func TestCdrDistKernel_LongerPair(t *testing.T) {
	k := NewCdrDist(blosum45(t), 10, 1)

	got, err := k.ApplyPair("CASSLKPNTEAFF", "CASSAHIANYGYTF")
	if err != nil {
		t.Fatalf("ApplyPair error: %v", err)
	}
	want := 0.7826
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("ApplyPair = %v, want ~%v", got, want)
	}
}

func TestCdrDistKernel_Identical(t *testing.T) {
	k := NewCdrDist(blosum45(t), 10, 1)

	got, err := k.ApplyPair("CASSLKPNTEAFF", "CASSLKPNTEAFF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.0 {
		t.Errorf("ApplyPair(identical) = %v, want 0.0", got)
	}
}

func TestCdrDistKernel_SelfScoreCache(t *testing.T) {
	k := NewCdrDist(blosum45(t), 10, 1)

	if _, err := k.ApplyPair("CASSQD", "CASSPD"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := k.selfScoreCache.Load("CASSQD"); !ok {
		t.Error("expected self-score for CASSQD to be cached after ApplyPair")
	}
	if _, ok := k.selfScoreCache.Load("CASSPD"); !ok {
		t.Error("expected self-score for CASSPD to be cached after ApplyPair")
	}
}

func TestCdrDistKernel_Name(t *testing.T) {
	if NewCdrDist(blosum45(t), 10, 1).Name() != "cdr_dist" {
		t.Error("unexpected kernel name")
	}
}
