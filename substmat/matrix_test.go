package substmat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_RejectsDimensionMismatch(t *testing.T) {
	_, err := New(map[string]int{"A": 0, "B": 1}, [][]float64{{1, 2}})
	if err == nil {
		t.Fatal("expected dimension mismatch error, got nil")
	}
}

func TestScore_RoundTrip(t *testing.T) {
	m, err := New(map[string]int{"A": 0, "B": 1}, [][]float64{{4, -1}, {-1, 5}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := m.Score("A", "B")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != -1 {
		t.Errorf("Score(A,B) = %v, want -1", got)
	}
}

func TestScore_UnknownToken(t *testing.T) {
	m, _ := New(map[string]int{"A": 0}, [][]float64{{1}})
	if _, err := m.Score("A", "Z"); err == nil {
		t.Error("expected UnknownToken error for Z")
	}
}

func TestAddToken_Scalar(t *testing.T) {
	m, _ := New(map[string]int{"A": 0}, [][]float64{{4}})
	m2, err := m.AddToken("B", 2.0)
	if err != nil {
		t.Fatalf("AddToken: %v", err)
	}
	if m2.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m2.Len())
	}
	got, _ := m2.Score("A", "B")
	if got != 2.0 {
		t.Errorf("Score(A,B) = %v, want 2.0", got)
	}
	// original matrix must be unchanged (non-destructive)
	if m.Len() != 1 {
		t.Errorf("original matrix mutated: Len() = %d, want 1", m.Len())
	}
}

func TestAddToken_Vector(t *testing.T) {
	m, _ := New(map[string]int{"A": 0, "B": 1}, [][]float64{{4, -1}, {-1, 5}})
	m2, err := m.AddToken("C", []float64{1, 2, 9})
	if err != nil {
		t.Fatalf("AddToken: %v", err)
	}
	got, _ := m2.Score("C", "C")
	if got != 9 {
		t.Errorf("self-score for C = %v, want 9", got)
	}
	got, _ = m2.Score("A", "C")
	if got != 1 {
		t.Errorf("Score(A,C) = %v, want 1", got)
	}
}

func TestAddToken_TokenExists(t *testing.T) {
	m, _ := New(map[string]int{"A": 0}, [][]float64{{4}})
	if _, err := m.AddToken("A", 1.0); err == nil {
		t.Error("expected TokenExists error")
	}
}

func TestAddToken_DimensionMismatch(t *testing.T) {
	m, _ := New(map[string]int{"A": 0}, [][]float64{{4}})
	if _, err := m.AddToken("B", []float64{1, 2, 3}); err == nil {
		t.Error("expected DimensionMismatch error")
	}
}

func TestLoadJSON_MissingKeys(t *testing.T) {
	if _, err := parseDocument([]byte(`{"index": {"A": 0}}`)); err == nil {
		t.Error("expected MissingKey error for missing substitution_matrix")
	}
	if _, err := parseDocument([]byte(`{"substitution_matrix": [[1]]}`)); err == nil {
		t.Error("expected MissingKey error for missing index")
	}
}

func TestBlosum62_KnownValues(t *testing.T) {
	m, err := Blosum62()
	if err != nil {
		t.Fatalf("Blosum62: %v", err)
	}
	cases := []struct {
		a, b string
		want float64
	}{
		{"A", "A", 4},
		{"A", "P", -1},
		{"Q", "Q", 5},
		{"W", "W", 11},
	}
	for _, c := range cases {
		got, err := m.Score(c.a, c.b)
		if err != nil {
			t.Fatalf("Score(%s,%s): %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("Score(%s,%s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestBlosum45AndBlosum90_Load(t *testing.T) {
	if _, err := Blosum45(); err != nil {
		t.Fatalf("Blosum45: %v", err)
	}
	if _, err := Blosum90(); err != nil {
		t.Fatalf("Blosum90: %v", err)
	}
}

func TestValidator_ValidateJSON(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	valid := []byte(`{"index": {"A": 0, "B": 1}, "substitution_matrix": [[1, -1], [-1, 1]]}`)
	if err := v.ValidateJSON(valid); err != nil {
		t.Errorf("ValidateJSON(valid) = %v, want nil", err)
	}

	missingMatrix := []byte(`{"index": {"A": 0}}`)
	if err := v.ValidateJSON(missingMatrix); err == nil {
		t.Error("ValidateJSON(missing substitution_matrix) = nil, want error")
	}

	wrongType := []byte(`{"index": {"A": 0}, "substitution_matrix": "not-an-array"}`)
	if err := v.ValidateJSON(wrongType); err == nil {
		t.Error("ValidateJSON(wrong-typed substitution_matrix) = nil, want error")
	}
}

func TestLoadJSONValidated_RejectsSchemaViolation(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}

	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"index": {"A": 0}}`), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadJSONValidated(badPath, v); err == nil {
		t.Error("LoadJSONValidated(schema-invalid file) = nil error, want failure")
	}

	goodPath := filepath.Join(dir, "good.json")
	good := []byte(`{"index": {"A": 0, "B": 1}, "substitution_matrix": [[1, -1], [-1, 1]]}`)
	if err := os.WriteFile(goodPath, good, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := LoadJSONValidated(goodPath, v)
	if err != nil {
		t.Fatalf("LoadJSONValidated(valid file): %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"blosum-45.json", "blosum-62.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}

	paths, err := DiscoverFiles(dir, "*.json")
	if err != nil {
		t.Fatalf("DiscoverFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("DiscoverFiles found %d files, want 2: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "blosum-45.json" || filepath.Base(paths[1]) != "blosum-62.json" {
		t.Errorf("DiscoverFiles returned %v, want sorted blosum-45.json, blosum-62.json", paths)
	}
}
