// Package solver assembles and solves the sparse symmetric
// positive-definite linear systems the analytical placer's quadratic
// solve stage depends on: a compressed-row matrix built incrementally
// from B2B net springs and anchor pseudo-nets (solver.BuildSystem), and
// a Jacobi-preconditioned conjugate-gradient solve (Matrix.Solve).
package solver

import "math"

// Matrix is a symmetric matrix built incrementally via Add, then
// compiled into compressed-row form for solving. Callers add the same
// delta at (i,j) and (j,i) for off-diagonal spring contributions, and a
// double increment at diagonals, as the B2B star model requires. Matrix
// itself does not infer symmetry, it only stores what it's given.
type Matrix struct {
	n    int
	rows []map[int]float64

	compiled bool
	rowStart []int
	colIdx   []int
	vals     []float64
	diag     []float64
}

// NewMatrix returns an n-by-n zero matrix ready to accumulate entries.
func NewMatrix(n int) *Matrix {
	rows := make([]map[int]float64, n)
	for i := range rows {
		rows[i] = make(map[int]float64)
	}
	return &Matrix{n: n, rows: rows}
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Add accumulates delta into entry (i, j). It invalidates any previously
// compiled row storage.
func (m *Matrix) Add(i, j int, delta float64) {
	m.rows[i][j] += delta
	m.compiled = false
}

// Get returns the current value of entry (i, j); 0 if never set.
func (m *Matrix) Get(i, j int) float64 {
	return m.rows[i][j]
}

// IsSymmetricAndFinite reports whether every entry is finite and the
// matrix is exactly symmetric. A failure here means the caller
// assembled the B2B system incorrectly; BuildSystem raises a
// Diagnostic for it.
func (m *Matrix) IsSymmetricAndFinite() bool {
	for i, row := range m.rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
			if m.rows[j][i] != v {
				return false
			}
		}
	}
	return true
}

// compile flattens the row maps into compressed-row arrays and caches
// the diagonal for the Jacobi preconditioner. It is idempotent and only
// redone after Add invalidates it.
func (m *Matrix) compile() {
	if m.compiled {
		return
	}

	m.rowStart = make([]int, m.n+1)
	m.diag = make([]float64, m.n)

	total := 0
	for i, row := range m.rows {
		m.rowStart[i] = total
		total += len(row)
		if d, ok := row[i]; ok {
			m.diag[i] = d
		}
	}
	m.rowStart[m.n] = total

	m.colIdx = make([]int, total)
	m.vals = make([]float64, total)

	for i, row := range m.rows {
		k := m.rowStart[i]
		for j, v := range row {
			m.colIdx[k] = j
			m.vals[k] = v
			k++
		}
	}

	m.compiled = true
}

// mulVec computes dst = A*x, compiling the matrix first if needed.
func (m *Matrix) mulVec(x []float64) []float64 {
	m.compile()

	dst := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		sum := 0.0
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			sum += m.vals[k] * x[m.colIdx[k]]
		}
		dst[i] = sum
	}
	return dst
}
