package distance

import "math"

// scoredCandidate is an internal type used during nearest-match ranking.
type scoredCandidate struct {
	originalValue string
	distance      float64
}

// NearestMatch is one ranked result from NearestSequences: a candidate
// sequence and its distance from the query under the configured kernel.
type NearestMatch struct {
	Value    string
	Distance float64
}

// NearestOptions configures NearestSequences.
type NearestOptions struct {
	// Kernel scores each candidate against the query. Required.
	Kernel Kernel

	// MaxDistance filters out candidates whose distance exceeds this
	// value. Zero-value (the Go default) is treated as "no filtering";
	// use DefaultNearestOptions or an explicit +Inf to opt out deliberately.
	MaxDistance float64

	// MaxResults caps the number of matches returned. Default: 3.
	MaxResults int

	// Normalize case-folds the query and candidates before scoring, for
	// callers comparing loosely-curated reference panels. Case folding
	// lowercases residues, which the shipped BLOSUM tables do not index, so
	// CdrDist and TCRdistComponent return UnknownToken when it is on.
	Normalize bool
}

// DefaultNearestOptions returns NearestOptions with no distance cutoff, a
// result cap of 3, and normalization enabled.
func DefaultNearestOptions(kernel Kernel) NearestOptions {
	return NearestOptions{
		Kernel:      kernel,
		MaxDistance: math.Inf(1),
		MaxResults:  3,
		Normalize:   true,
	}
}

// NearestSequences ranks candidates by distance to query under the given
// kernel, closest first, returning at most opts.MaxResults matches whose
// distance does not exceed opts.MaxDistance.
//
// Descended from the teacher's Suggest "did you mean" ranking (same
// normalize/filter/sort/cap pipeline), generalized from a fixed Levenshtein
// similarity score to any of the package's distance kernels — a query CDR3
// can be ranked against a reference panel by CdrDist or TCRdistComponent
// just as easily as by plain edit distance.
func NearestSequences(query string, candidates []string, opts NearestOptions) ([]NearestMatch, error) {
	if opts.Kernel == nil {
		return nil, nil
	}
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = 3
	}
	maxDistance := opts.MaxDistance
	if maxDistance == 0 {
		maxDistance = math.Inf(1)
	}

	if len(candidates) == 0 {
		return []NearestMatch{}, nil
	}

	normalizedQuery := query
	normalizedCandidates := make([]string, len(candidates))
	copy(normalizedCandidates, candidates)
	if opts.Normalize {
		normalizedQuery = Normalize(query, NormalizeOptions{})
		for i, c := range candidates {
			normalizedCandidates[i] = Normalize(c, NormalizeOptions{})
		}
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for i, candidate := range candidates {
		d, err := opts.Kernel.ApplyPair(normalizedQuery, normalizedCandidates[i])
		if err != nil {
			return nil, err
		}
		if d <= maxDistance {
			scored = append(scored, scoredCandidate{originalValue: candidate, distance: d})
		}
	}

	if len(scored) == 0 {
		return []NearestMatch{}, nil
	}

	// Insertion sort: typical candidate panels are small (tens, not
	// thousands) and this keeps ties alphabetically stable without pulling
	// in sort.Slice's interface overhead.
	for i := 1; i < len(scored); i++ {
		key := scored[i]
		j := i - 1
		for j >= 0 && shouldSwap(scored[j], key) {
			scored[j+1] = scored[j]
			j--
		}
		scored[j+1] = key
	}

	limit := maxResults
	if limit > len(scored) {
		limit = len(scored)
	}

	results := make([]NearestMatch, limit)
	for i := 0; i < limit; i++ {
		results[i] = NearestMatch{Value: scored[i].originalValue, Distance: scored[i].distance}
	}
	return results, nil
}

// shouldSwap returns true if a should come after b in the sorted order:
// distance ascending, then alphabetically ascending for ties.
func shouldSwap(a, b scoredCandidate) bool {
	if a.distance != b.distance {
		return a.distance > b.distance
	}
	return a.originalValue > b.originalValue
}
