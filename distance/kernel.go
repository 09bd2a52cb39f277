// Package distance implements the eight pairwise-distance kernels:
// CdrDist, Levenshtein, TCRdistComponent, Hamming, Jaro, JaroWinkler,
// LongestCommonSubstring, and OptimalStringAlignment, plus a ninth,
// DamerauLevenshtein. Each is a goroutine-safe function of two strings and
// a fixed set of parameters; none perform I/O, and the only internal state
// is CdrDist's cache of per-sequence self-alignment scores.
//
// Descended from the teacher's foundry/similarity package (Levenshtein,
// OSA, and the Algorithm-dispatch shape all trace back to distance_v2.go
// and osa.go there), generalized to the full eight-kernel contract and to
// the substmat.Matrix abstraction for the alignment-scoring kernels.
package distance

import "github.com/fulmenhq/seqdist/seqerr"

// SubstitutionMatrix is the small interface the matrix-consuming kernels
// depend on, per the design note that kernels should see a lookup
// interface rather than a concrete layout — this is what lets a caller
// swap in a custom matrix (including one produced by Matrix.AddToken)
// without the kernel package importing substmat's construction details.
type SubstitutionMatrix interface {
	Score(a, b string) (float64, error)
	Has(tok string) bool
}

// Kernel is a pairwise distance function with fixed configuration. It must
// be safe for concurrent calls on disjoint string pairs; pairwise.Run
// relies on this.
type Kernel interface {
	// Name identifies the kernel for telemetry tags and error context.
	Name() string
	// ApplyPair computes the distance between a single pair of sequences.
	ApplyPair(a, b string) (float64, error)
}

// Apply runs a kernel over a slice of sequences, returning one distance
// per element in the same order — the single-sequence counterpart to
// ApplyPair used when a caller already has a paired-up batch rather than
// a record list for pairwise.Run.
func Apply(k Kernel, seqs [][2]string) ([]float64, error) {
	out := make([]float64, len(seqs))
	for i, pair := range seqs {
		v, err := k.ApplyPair(pair[0], pair[1])
		if err != nil {
			if se, ok := err.(*seqerr.Error); ok {
				emitErrorCounter(k.Name(), string(se.Code))
			}
			return nil, err
		}
		emitKernelCounter(k.Name(), pair[0], pair[1])
		out[i] = v
	}
	return out, nil
}

func runeSlices(a, b string) ([]rune, []rune) {
	return []rune(a), []rune(b)
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func maxFloat(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// requireEqualLength is the shared ShapeMismatch precondition used by
// Hamming and TCRdistComponent.
func requireEqualLength(kernelName string, a, b []rune) error {
	if len(a) != len(b) {
		return seqerr.New(seqerr.ShapeMismatch, "%s requires equal-length sequences, got %d and %d", kernelName, len(a), len(b))
	}
	return nil
}
