// Package report renders a square distance matrix as an aligned text
// table, for CLI and log-line previews of a pairwise batch run.
//
// Grounded on the teacher's ascii.StringWidth: labels drawn from sequence
// identifiers may contain multi-column Unicode (the identifier scheme a
// caller uses for a sequencing run is not under this module's control),
// so column widths are computed with go-runewidth rather than byte or
// rune counts.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatMatrix renders an n x n distance matrix with row/column labels,
// right-aligning every cell to the widest label or rendered value in the
// table.
func FormatMatrix(labels []string, matrix [][]float64, precision int) string {
	n := len(labels)
	if n == 0 {
		return ""
	}

	cells := make([][]string, n)
	width := runewidth.StringWidth(labels[0])
	for i, label := range labels {
		if w := runewidth.StringWidth(label); w > width {
			width = w
		}
		cells[i] = make([]string, n)
		for j := range matrix[i] {
			s := strconv.FormatFloat(matrix[i][j], 'f', precision, 64)
			cells[i][j] = s
			if w := runewidth.StringWidth(s); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width+1))
	for _, label := range labels {
		b.WriteString(pad(label, width))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	for i, label := range labels {
		b.WriteString(pad(label, width))
		b.WriteByte(' ')
		for j := 0; j < n; j++ {
			b.WriteString(pad(cells[i][j], width))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// pad right-aligns s within width display columns, accounting for
// variable-width runes rather than assuming one column per byte.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return fmt.Sprintf("%s%s", strings.Repeat(" ", width-w), s)
}
