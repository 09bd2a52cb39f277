package distance

import "github.com/fulmenhq/seqdist/seqerr"

// JaroWeights is the ordered triple applied to the three terms of the Jaro
// similarity sum: s = W1*(m/|a|) + W2*(m/|b|) + W3*((m-t)/m). Must sum to
// 1.0; the canonical identity weighting is (1/3, 1/3, 1/3), under which
// the three terms contribute equally regardless of field naming.
type JaroWeights struct {
	W1 float64
	W2 float64
	W3 float64
}

// DefaultJaroWeights returns the canonical identity weighting (1/3, 1/3, 1/3).
func DefaultJaroWeights() JaroWeights {
	third := 1.0 / 3.0
	return JaroWeights{W1: third, W2: third, W3: third}
}

const weightSumTolerance = 1e-9

// Validate checks the weights are non-negative and sum to 1.0 within a
// small tolerance — a deliberate deviation from the upstream's exact
// floating-point equality check, per the design notes' open question.
func (w JaroWeights) Validate() error {
	if w.W1 < 0 || w.W2 < 0 || w.W3 < 0 {
		return seqerr.New(seqerr.InvalidConfig, "jaro weights must be non-negative, got (%v,%v,%v)", w.W1, w.W2, w.W3)
	}
	sum := w.W1 + w.W2 + w.W3
	if diff := sum - 1.0; diff > weightSumTolerance || diff < -weightSumTolerance {
		return seqerr.New(seqerr.InvalidConfig, "jaro weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// JaroKernel computes the Jaro distance 1 - s, for the similarity s defined
// in terms of matched characters within a sliding window and half the
// transposition count among matches.
type JaroKernel struct {
	Weights JaroWeights
}

// NewJaro constructs a Jaro kernel, validating the supplied weights.
func NewJaro(weights JaroWeights) (*JaroKernel, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &JaroKernel{Weights: weights}, nil
}

func (k *JaroKernel) Name() string { return "jaro" }

func (k *JaroKernel) ApplyPair(a, b string) (float64, error) {
	s := jaroSimilarity(a, b, k.Weights)
	return 1 - s, nil
}

// jaroSimilarity implements the matching window + transposition count
// algorithm (Jaro 1989), generalized to accept arbitrary (non-canonical)
// term weights as the kernel contract requires.
func jaroSimilarity(a, b string, weights JaroWeights) float64 {
	runesA, runesB := runeSlices(a, b)
	lenA, lenB := len(runesA), len(runesB)

	if lenA == 0 && lenB == 0 {
		return 1.0
	}
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	matchWindow := maxInt(lenA, lenB)/2 - 1
	if matchWindow < 0 {
		matchWindow = 0
	}

	aMatched := make([]bool, lenA)
	bMatched := make([]bool, lenB)

	matches := 0
	for i := 0; i < lenA; i++ {
		start := maxInt(0, i-matchWindow)
		end := minInt(lenB-1, i+matchWindow)
		for j := start; j <= end; j++ {
			if bMatched[j] || runesA[i] != runesB[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < lenA; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if runesA[i] != runesB[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions) / 2

	m := float64(matches)
	return weights.W1*(m/float64(lenA)) + weights.W2*(m/float64(lenB)) + weights.W3*((m-t)/m)
}

// JaroWinklerKernel applies a bonus for agreeing leading characters to the
// Jaro similarity: s' = s + l*p*(1-s), where l = min(MaxPrefix, the
// longest common prefix length).
type JaroWinklerKernel struct {
	PrefixScale float64 // p, in [0, 0.25]
	MaxPrefix   int      // max_l, >= 0
	Weights     JaroWeights
}

// NewJaroWinkler constructs a Jaro-Winkler kernel, validating p and max_l.
func NewJaroWinkler(prefixScale float64, maxPrefix int, weights JaroWeights) (*JaroWinklerKernel, error) {
	if prefixScale < 0 || prefixScale > 0.25 {
		return nil, seqerr.New(seqerr.InvalidConfig, "jaro-winkler p must be in [0, 0.25], got %v", prefixScale)
	}
	if maxPrefix < 0 {
		return nil, seqerr.New(seqerr.InvalidConfig, "jaro-winkler max_l must be non-negative, got %d", maxPrefix)
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &JaroWinklerKernel{PrefixScale: prefixScale, MaxPrefix: maxPrefix, Weights: weights}, nil
}

func (k *JaroWinklerKernel) Name() string { return "jaro_winkler" }

func (k *JaroWinklerKernel) ApplyPair(a, b string) (float64, error) {
	s := jaroSimilarity(a, b, k.Weights)

	runesA, runesB := runeSlices(a, b)
	prefix := 0
	limit := minInt(k.MaxPrefix, minInt(len(runesA), len(runesB)))
	for prefix < limit && runesA[prefix] == runesB[prefix] {
		prefix++
	}

	sPrime := s + float64(prefix)*k.PrefixScale*(1-s)
	return 1 - sPrime, nil
}
