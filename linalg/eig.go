package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Shift-invert eigenvalues below muCutoff relative to the support span
// belong to the infinite part of the pencil. The infinite eigenvalues
// are defective, so rounding can lift them to roughly the cube root of
// machine epsilon rather than leaving them at exact zero.
const muCutoff = 1e-4

// PencilPoles returns the n-1 finite generalized eigenvalues of the
// (n+1) x (n+1) pencil
//
//	E = | 0  w^T     |    B = | 0   |
//	    | 1  diag(z) |        |   I |
//
// whose finite part is the pole set of the barycentric rational function
// with real support points z and weights w. The singular pencil is
// reduced to a standard eigenproblem by shift-invert: for a shift s that
// keeps E - sB regular, the eigenvalues mu of (E - sB)^-1 B relate to the
// pencil eigenvalues by lambda = s + 1/mu, with the two infinite
// eigenvalues mapping to mu = 0.
func PencilPoles(z, w []float64) []complex128 {

	n := len(z)
	if len(w) != n {
		panic(fmt.Errorf("cannot PencilPoles: len(z)=%d != len(w)=%d", n, len(w)))
	}
	if n < 2 {
		return nil
	}

	k := n + 1

	b := mat.NewDense(k, k, nil)
	for i := 1; i < k; i++ {
		b.Set(i, i, 1)
	}

	var span float64
	for _, zi := range z {
		span = math.Max(span, math.Abs(zi))
	}

	// A few fixed shift candidates; the first that keeps E - sB
	// comfortably regular wins. Random shifts would break run-to-run
	// determinism.
	shifts := []float64{
		2*span + 1.5,
		-3.1*span - 0.73,
		1.3*span + 7.89,
		-0.7*span - 21.4,
	}

	var m mat.Dense
	var s float64
	var ok bool
	for _, s = range shifts {
		a := mat.NewDense(k, k, nil)
		for j := 0; j < n; j++ {
			a.Set(0, j+1, w[j])
			a.Set(j+1, 0, 1)
			a.Set(j+1, j+1, z[j]-s)
		}
		if err := m.Solve(a, b); err == nil {
			ok = true
			break
		}
	}
	if !ok {
		panic(fmt.Errorf("cannot PencilPoles: no shift keeps the %dx%d pencil regular", k, k))
	}

	var eig mat.Eigen
	if !eig.Factorize(&m, mat.EigenNone) {
		panic(fmt.Errorf("cannot PencilPoles: eigendecomposition of %dx%d matrix did not converge", k, k))
	}

	mu := eig.Values(nil)
	sort.Slice(mu, func(i, j int) bool {
		mi, mj := cmplx.Abs(mu[i]), cmplx.Abs(mu[j])
		if mi != mj {
			return mi > mj
		}
		if real(mu[i]) != real(mu[j]) {
			return real(mu[i]) > real(mu[j])
		}
		return imag(mu[i]) > imag(mu[j])
	})

	// The two infinite pencil eigenvalues are the two smallest mu, but a
	// degenerate weight sum sends further eigenvalues to infinity; any mu
	// at noise level is their rounding residue, not a finite pole.
	cut := muCutoff / (1 + span)
	poles := make([]complex128, 0, n-1)
	for _, v := range mu[:n-1] {
		if cmplx.Abs(v) <= cut {
			continue
		}
		poles = append(poles, complex(s, 0)+1/v)
	}

	return poles
}
