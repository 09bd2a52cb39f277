/*
Package distance implements pairwise sequence-distance kernels for
immune-receptor sequence comparison: CDR-level affine-gap alignment
(CdrDist), edit-distance family members (Levenshtein, OptimalStringAlignment,
LongestCommonSubstring, Hamming), general string-similarity metrics (Jaro,
JaroWinkler), and the TCRdist substitution component (TCRdistComponent).
A ninth, non-required kernel (DamerauLevenshtein) is included as a sibling
of OptimalStringAlignment for callers that want the unrestricted variant.

# Kernels

Every kernel implements the Kernel interface: a Name for telemetry/error
tagging and an ApplyPair(a, b string) (float64, error) that scores one
pair. Kernels hold only fixed configuration (weights, gap penalties, a
substitution matrix) and are safe for concurrent use across goroutines —
pairwise.Run depends on this.

	k := distance.NewLevenshtein(0)
	d, err := k.ApplyPair("kitten", "sitting") // 3.0

Kernels needing a substitution matrix (CdrDist, TCRdistComponent) take
any value satisfying the SubstitutionMatrix interface, typically a
*substmat.Matrix loaded from an embedded BLOSUM table:

	matrix, err := substmat.Blosum62()
	k := distance.NewTCRdistComponent(matrix, 4.0, distance.WithGapSymbol("-"), distance.WithWeight(1.0))
	d, err := k.ApplyPair("CASSQD", "CASSPD")

# Batch scoring

Apply runs a kernel over a slice of already-paired sequences, preserving
order:

	scores, err := distance.Apply(k, [][2]string{{"AASQ", "PASQ"}})

For all-pairs or record-keyed batches (the common case for a sequence
panel), use the pairwise and tcrdist packages instead, which parallelize
across a worker pool and assemble the condensed or square output.

# Normalization

Unicode-aware text normalization, carried from the teacher's text-utility
layer and used by NearestSequences before scoring:

	opts := distance.NormalizeOptions{StripAccents: true}
	normalized := distance.Normalize("  Café  ", opts) // "cafe"

	folded := distance.Casefold("İstanbul", "tr")       // "istanbul" (Turkish locale)
	stripped := distance.StripAccents("naïve")          // "naive"
	equal := distance.EqualsIgnoreCase("Hello", "HELLO", opts)

# Nearest-sequence ranking

NearestSequences generalizes the teacher's "did you mean" suggestion
helper from a fixed Levenshtein score to any kernel in this package —
ranking a query CDR3 against a reference panel by CdrDist or
TCRdistComponent works the same way as ranking a typo'd CLI command by
edit distance:

	opts := distance.DefaultNearestOptions(distance.NewCdrDist(matrix, 10, 1))
	opts.Normalize = false // BLOSUM tables index upper-case residues only
	matches, err := distance.NearestSequences("CASSQDRGEQFF", panel, opts)

# Telemetry

The package supports opt-in counter-only telemetry: disabled by default,
enabled by calling EnableTelemetry with a *telemetry.System. Counters
only, no histograms — ApplyPair runs in the innermost loop of a batch
job and per-call timing would dominate the cost it measures. Emitted
counters are tagged by kernel name, input-length bucket, and (on
failure) error code.

	sys, _ := telemetry.NewSystem(telemetry.DefaultConfig())
	distance.EnableTelemetry(sys)

# References

  - Levenshtein distance: https://en.wikipedia.org/wiki/Levenshtein_distance
  - Gotoh affine-gap alignment: O. Gotoh, "An improved algorithm for
    matching biological sequences", J. Mol. Biol. 162 (1982)
  - TCRdist: Dash et al., "Quantifiable predictive features define
    epitope-specific T cell receptor repertoires", Nature 547 (2017)
  - Unicode normalization: https://unicode.org/reports/tr15/
*/
package distance
