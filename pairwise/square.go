package pairwise

// ToSquare expands a flat upper-triangular vector of length n(n-1)/2 into
// an n x n symmetric matrix with a zero diagonal (component F).
func ToSquare(v []float64, n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			val := v[Index(i, j, n)]
			m[i][j] = val
			m[j][i] = val
		}
	}
	return m
}

// ToFlat is the inverse of ToSquare: it reads the strict upper triangle of
// an n x n matrix back into the canonical flat vector order.
func ToFlat(m [][]float64, n int) []float64 {
	v := make([]float64, Len(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v[Index(i, j, n)] = m[i][j]
		}
	}
	return v
}
