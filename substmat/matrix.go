// Package substmat implements the symmetric substitution-matrix abstraction
// consumed by the alignment kernels in the distance package: a token
// alphabet index plus a square scoring table, loaded from JSON or built
// programmatically, with constant-time lookup and a non-destructive
// add-token extension.
//
// Grounded on the teacher's foundry/catalog.go embed pattern (go:embed of
// static data files) and its schema package's jsonschema/v5 validation, both
// trimmed to the single document shape this format requires.
package substmat

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulmenhq/seqdist/seqerr"
)

//go:embed data/*.json
var embeddedMatrices embed.FS

// Matrix is an immutable symmetric (by convention, not enforced) scoring
// table over a single-character token alphabet.
type Matrix struct {
	index  map[string]int
	scores [][]float64
}

// document mirrors the external JSON file format: required keys "index"
// and "substitution_matrix", extra keys ignored.
type document struct {
	Index             map[string]int `json:"index"`
	SubstitutionMatrix [][]float64   `json:"substitution_matrix"`
}

// New constructs a Matrix from an explicit index and score table, checking
// the invariants the data model requires: len(index) == n, every index
// value unique and in 0..n, and the table itself is n x n.
func New(index map[string]int, scores [][]float64) (*Matrix, error) {
	n := len(index)
	if len(scores) != n {
		return nil, seqerr.New(seqerr.DimensionMismatch, "index has %d tokens but matrix has %d rows", n, len(scores))
	}

	seen := make([]bool, n)
	for tok, pos := range index {
		if pos < 0 || pos >= n {
			return nil, seqerr.New(seqerr.DimensionMismatch, "index position %d for token %q out of range [0,%d)", pos, tok, n)
		}
		if seen[pos] {
			return nil, seqerr.New(seqerr.DimensionMismatch, "duplicate index position %d", pos)
		}
		seen[pos] = true
	}

	for i, row := range scores {
		if len(row) != n {
			return nil, seqerr.New(seqerr.DimensionMismatch, "row %d has length %d, want %d", i, len(row), n)
		}
	}

	return &Matrix{index: index, scores: scores}, nil
}

// LoadJSON reads a substitution matrix from a file on disk. The document
// must contain "index" and "substitution_matrix"; any other keys are
// ignored.
func LoadJSON(path string) (*Matrix, error) {
	// #nosec G304 -- caller-specified path to a substitution-matrix file is an intentional part of the public API
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading substitution matrix %s: %w", path, err)
	}
	return parseDocument(data)
}

// LoadEmbedded loads one of the three matrices shipped with the module:
// "blosum-45", "blosum-62", or "blosum-90".
func LoadEmbedded(name string) (*Matrix, error) {
	data, err := embeddedMatrices.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded substitution matrix %s: %w", name, err)
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (*Matrix, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing substitution matrix document: %w", err)
	}
	if doc.Index == nil {
		return nil, seqerr.New(seqerr.MissingKey, "substitution matrix document missing required key %q", "index")
	}
	if doc.SubstitutionMatrix == nil {
		return nil, seqerr.New(seqerr.MissingKey, "substitution matrix document missing required key %q", "substitution_matrix")
	}
	return New(doc.Index, doc.SubstitutionMatrix)
}

// Len returns n, the number of tokens in the alphabet.
func (m *Matrix) Len() int {
	return len(m.index)
}

// Has reports whether tok is a member of the matrix's alphabet. Kernels
// depending only on this and Score satisfy the "matrix as interface, not
// concrete layout" design note.
func (m *Matrix) Has(tok string) bool {
	_, ok := m.index[tok]
	return ok
}

// Score returns the substitution score between two single-character
// tokens, failing with UnknownToken if either is absent from the index.
func (m *Matrix) Score(a, b string) (float64, error) {
	ai, ok := m.index[a]
	if !ok {
		return 0, seqerr.New(seqerr.UnknownToken, "token %q not present in substitution matrix", a)
	}
	bi, ok := m.index[b]
	if !ok {
		return 0, seqerr.New(seqerr.UnknownToken, "token %q not present in substitution matrix", b)
	}
	return m.scores[ai][bi], nil
}

// AddToken returns a new (n+1) x (n+1) matrix with tok appended to the
// alphabet. value is either a single scalar broadcast across the new
// row/column, or a slice of length n+1 whose first n entries extend the
// existing rows and whose last entry is the self-score.
func (m *Matrix) AddToken(tok string, value any) (*Matrix, error) {
	if m.Has(tok) {
		return nil, seqerr.New(seqerr.TokenExists, "token %q already present in substitution matrix", tok)
	}

	n := m.Len()
	var newRow []float64

	switch v := value.(type) {
	case float64:
		newRow = make([]float64, n+1)
		for i := range newRow {
			newRow[i] = v
		}
	case []float64:
		if len(v) != n+1 {
			return nil, seqerr.New(seqerr.DimensionMismatch, "add_token row has length %d, want %d", len(v), n+1)
		}
		newRow = append([]float64(nil), v...)
	default:
		return nil, seqerr.New(seqerr.DimensionMismatch, "add_token value must be a scalar or a []float64 of length n+1")
	}

	scores := make([][]float64, n+1)
	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		copy(row, m.scores[i])
		row[n] = newRow[i]
		scores[i] = row
	}
	scores[n] = newRow

	index := make(map[string]int, n+1)
	for k, v := range m.index {
		index[k] = v
	}
	index[tok] = n

	return &Matrix{index: index, scores: scores}, nil
}
