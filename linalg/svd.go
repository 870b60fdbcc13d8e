// Package linalg implements the dense numeric kernels consumed by the
// approximation solvers: smallest-singular-vector extraction, infinity
// norms, matrix-pencil eigenvalues and complex polynomial roots.
package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// MinRightVector returns the right singular vector associated with the
// smallest singular value of the rows x cols matrix a (row-major).
//
// Real matrices are factorized directly. Complex matrices go through the
// real embedding [[X, -Y], [Y, X]] of a = X + iY, whose singular values
// are those of a, each with multiplicity two; any unit vector of the
// trailing right singular subspace maps back to the complex vector up to
// a phase. The returned vector is normalized to unit Euclidean norm with
// its largest-modulus entry rotated to the positive real axis, which
// makes the result deterministic up to exactly repeated singular values
// (those inherit the ordering of the underlying factorization).
func MinRightVector(a []complex128, rows, cols int) []complex128 {

	if len(a) != rows*cols {
		panic(fmt.Errorf("cannot MinRightVector: len(a)=%d does not match %dx%d", len(a), rows, cols))
	}

	if isReal(a) {
		return minRightVectorReal(a, rows, cols)
	}

	return minRightVectorCmplx(a, rows, cols)
}

func isReal(a []complex128) bool {
	for _, c := range a {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

// svdKind returns a thin factorization when the matrix has at least as
// many rows as columns; otherwise the null space only appears in a full V.
func svdKind(rows, cols int) mat.SVDKind {
	if rows >= cols {
		return mat.SVDThin
	}
	return mat.SVDFull
}

func minRightVectorReal(a []complex128, rows, cols int) []complex128 {

	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, real(a[i*cols+j]))
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(d, svdKind(rows, cols)); !ok {
		panic(fmt.Errorf("cannot MinRightVector: SVD of %dx%d matrix did not converge", rows, cols))
	}

	var v mat.Dense
	svd.VTo(&v)

	// Singular values are in descending order: the smallest pair is the
	// last column of V.
	_, k := v.Dims()
	w := make([]complex128, cols)
	for j := 0; j < cols; j++ {
		w[j] = complex(v.At(j, k-1), 0)
	}

	return normalizePhase(w)
}

func minRightVectorCmplx(a []complex128, rows, cols int) []complex128 {

	d := mat.NewDense(2*rows, 2*cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y := real(a[i*cols+j]), imag(a[i*cols+j])
			d.Set(i, j, x)
			d.Set(i, cols+j, -y)
			d.Set(rows+i, j, y)
			d.Set(rows+i, cols+j, x)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(d, svdKind(2*rows, 2*cols)); !ok {
		panic(fmt.Errorf("cannot MinRightVector: SVD of embedded %dx%d matrix did not converge", 2*rows, 2*cols))
	}

	var v mat.Dense
	svd.VTo(&v)

	_, k := v.Dims()
	w := make([]complex128, cols)
	for j := 0; j < cols; j++ {
		w[j] = complex(v.At(j, k-1), v.At(cols+j, k-1))
	}

	return normalizePhase(w)
}

// Moduli within this relative distance of the maximum count as tied, so
// anchor selection cannot flip on an ulp of rounding in the
// factorization.
const phaseTieTol = 1e-12

// normalizePhase scales w to unit norm and rotates it so that its entry
// of largest modulus (lowest index on ties) is real positive.
func normalizePhase(w []complex128) []complex128 {

	var norm, max float64
	for _, c := range w {
		m := cmplx.Abs(c)
		norm += m * m
		if m > max {
			max = m
		}
	}

	if max == 0 {
		return w
	}

	idx := 0
	for i, c := range w {
		if cmplx.Abs(c) >= max*(1-phaseTieTol) {
			idx = i
			break
		}
	}

	scale := cmplx.Conj(w[idx]) / complex(cmplx.Abs(w[idx])*math.Sqrt(norm), 0)
	for i := range w {
		w[i] *= scale
	}

	return w
}
