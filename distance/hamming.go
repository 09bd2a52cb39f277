package distance

// HammingKernel computes mismatch_score x the count of differing
// positions between two equal-length sequences.
//
// Examples:
//
//	NewHamming(1).ApplyPair("AASQ", "PASQ") returns 1.0, nil
type HammingKernel struct {
	MismatchScore float64
}

// NewHamming constructs a Hamming kernel with the given per-mismatch
// score.
func NewHamming(mismatchScore float64) *HammingKernel {
	return &HammingKernel{MismatchScore: mismatchScore}
}

func (k *HammingKernel) Name() string { return "hamming" }

func (k *HammingKernel) ApplyPair(a, b string) (float64, error) {
	runesA, runesB := runeSlices(a, b)
	if err := requireEqualLength(k.Name(), runesA, runesB); err != nil {
		return 0, err
	}

	mismatches := 0
	for i := range runesA {
		if runesA[i] != runesB[i] {
			mismatches++
		}
	}
	return k.MismatchScore * float64(mismatches), nil
}
