package solver

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the CG convergence tolerance used when a caller does
// not override it.
const DefaultEpsilon = 1e-4

// DefaultMaxIterations caps a single CG solve. It exists purely as a
// stall backstop: a well-conditioned, diagonally dominant B2B system
// converges long before this in practice.
const DefaultMaxIterations = 10000

// Solve runs Jacobi-preconditioned conjugate gradients against this
// matrix for A*x = b, starting from x = 0. It stops when the relative
// residual ||r||2 / ||b||2 drops to eps or below, or after maxIter
// iterations, whichever comes first. stalled reports the latter case:
// the best iterate so far is still returned, never discarded, so the
// outer placement loop can keep going.
//
// Vector arithmetic (dot products, norms, scaled adds) is delegated to
// gonum/floats rather than hand-rolled loops, the same vector-math
// module the retrieval pack's circuit solver leans on for its own dense
// linear solve.
func (m *Matrix) Solve(b []float64, eps float64, maxIter int) (x []float64, stalled bool) {
	n := m.n
	x = make([]float64, n)

	bNorm := floats.Norm(b, 2)
	if bNorm == 0 {
		return x, false
	}

	m.compile()
	invDiag := make([]float64, n)
	for i, d := range m.diag {
		if d == 0 {
			invDiag[i] = 1
		} else {
			invDiag[i] = 1 / d
		}
	}

	r := append([]float64(nil), b...) // r = b - A*x, x=0 so r=b
	z := jacobiApply(invDiag, r)
	p := append([]float64(nil), z...)
	rz := floats.Dot(r, z)

	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	for iter := 0; iter < maxIter; iter++ {
		ap := m.mulVec(p)

		pAp := floats.Dot(p, ap)
		if pAp == 0 {
			return x, true
		}
		alpha := rz / pAp

		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		if floats.Norm(r, 2)/bNorm <= eps {
			return x, false
		}

		z = jacobiApply(invDiag, r)
		rzNew := floats.Dot(r, z)
		beta := rzNew / rz
		rz = rzNew

		// p = z + beta*p
		floats.Scale(beta, p)
		floats.Add(p, z)
	}

	return x, true
}

func jacobiApply(invDiag, r []float64) []float64 {
	z := make([]float64, len(r))
	for i := range z {
		z[i] = invDiag[i] * r[i]
	}
	return z
}
