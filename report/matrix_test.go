package report

import (
	"strings"
	"testing"
)

func TestFormatMatrix_Basic(t *testing.T) {
	labels := []string{"A", "BB"}
	matrix := [][]float64{{0, 1.5}, {1.5, 0}}

	got := FormatMatrix(labels, matrix, 2)
	if got == "" {
		t.Fatal("expected non-empty output")
	}
	for _, token := range []string{"A", "BB", "0.00", "1.50"} {
		if !strings.Contains(got, token) {
			t.Errorf("output missing %q: %q", token, got)
		}
	}
}

func TestFormatMatrix_Empty(t *testing.T) {
	if got := FormatMatrix(nil, nil, 2); got != "" {
		t.Errorf("expected empty output for no labels, got %q", got)
	}
}
