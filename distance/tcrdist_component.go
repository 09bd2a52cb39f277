package distance

// TCRdistComponentKernel is a fixed-length, gap-aware, BLOSUM-weighted
// substitution distance over equal-length (already-aligned) sequences —
// one field of the larger TCRdist composite (see the tcrdist package).
type TCRdistComponentKernel struct {
	Matrix     SubstitutionMatrix
	GapPenalty float64
	GapSymbol  string
	Weight     float64
}

// TCRdistComponentOption configures a TCRdistComponentKernel's optional
// fields. Unset options fall back to the upstream component's defaults;
// an option that is passed always wins, including an explicit zero weight
// or empty gap symbol.
type TCRdistComponentOption func(*tcrdistComponentOptions)

type tcrdistComponentOptions struct {
	gapSymbol *string
	weight    *float64
}

// WithGapSymbol sets the rune marking an aligned gap. Omit this option to
// use "-".
func WithGapSymbol(s string) TCRdistComponentOption {
	return func(o *tcrdistComponentOptions) { o.gapSymbol = &s }
}

// WithWeight sets the scalar applied to the summed per-position
// contributions, including an explicit 0. Omit this option to use 1.
func WithWeight(w float64) TCRdistComponentOption {
	return func(o *tcrdistComponentOptions) { o.weight = &w }
}

// NewTCRdistComponent constructs a TCRdistComponent kernel. gapSymbol
// defaults to "-" and weight defaults to 1 when the corresponding option
// is omitted; passing WithGapSymbol("") or WithWeight(0) is honored as the
// caller's explicit choice rather than coerced back to the default.
func NewTCRdistComponent(matrix SubstitutionMatrix, gapPenalty float64, opts ...TCRdistComponentOption) *TCRdistComponentKernel {
	cfg := tcrdistComponentOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	gapSymbol := "-"
	if cfg.gapSymbol != nil {
		gapSymbol = *cfg.gapSymbol
	}
	weight := 1.0
	if cfg.weight != nil {
		weight = *cfg.weight
	}

	return &TCRdistComponentKernel{Matrix: matrix, GapPenalty: gapPenalty, GapSymbol: gapSymbol, Weight: weight}
}

func (k *TCRdistComponentKernel) Name() string { return "tcrdist_component" }

// ApplyPair requires a and b to already be of equal length (aligned, with
// gap_symbol marking insertions/deletions). Each position contributes the
// gap penalty if exactly one side is a gap, zero if both sides are gaps,
// or clamp(4 - matrix.Score(a_i,b_i), 0, 4) otherwise — the classical
// TCRdist clamp, which guarantees an identical pair scores exactly zero
// regardless of how high a substitution matrix's diagonal runs.
func (k *TCRdistComponentKernel) ApplyPair(a, b string) (float64, error) {
	runesA, runesB := runeSlices(a, b)
	if err := requireEqualLength(k.Name(), runesA, runesB); err != nil {
		return 0, err
	}

	gap := []rune(k.GapSymbol)
	var gapRune rune
	if len(gap) > 0 {
		gapRune = gap[0]
	}

	total := 0.0
	for i := range runesA {
		aIsGap := runesA[i] == gapRune
		bIsGap := runesB[i] == gapRune

		switch {
		case aIsGap && bIsGap:
			// no contribution
		case aIsGap != bIsGap:
			total += k.GapPenalty
		default:
			score, err := k.Matrix.Score(string(runesA[i]), string(runesB[i]))
			if err != nil {
				return 0, err
			}
			contribution := 4 - score
			if contribution < 0 {
				contribution = 0
			} else if contribution > 4 {
				contribution = 4
			}
			total += contribution
		}
	}

	return k.Weight * total, nil
}
