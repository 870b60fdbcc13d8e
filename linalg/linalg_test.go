package linalg

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func applyRow(a []complex128, rows, cols int, w []complex128) []complex128 {
	out := make([]complex128, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i] += a[i*cols+j] * w[j]
		}
	}
	return out
}

func TestMinRightVector(t *testing.T) {

	t.Run("RealRankDeficient", func(t *testing.T) {

		// Second column is twice the first: null vector along [2, -1].
		a := []complex128{
			1, 2,
			-3, -6,
			0.5, 1,
		}

		w := MinRightVector(a, 3, 2)
		require.Len(t, w, 2)

		for _, r := range applyRow(a, 3, 2, w) {
			require.InDelta(t, 0, cmplx.Abs(r), 1e-12)
		}

		// Unit norm, largest entry real positive.
		require.InDelta(t, 2/sqrt5, real(w[0]), 1e-12)
		require.InDelta(t, -1/sqrt5, real(w[1]), 1e-12)
		require.InDelta(t, 0, imag(w[0]), 1e-12)
	})

	t.Run("ComplexRankDeficient", func(t *testing.T) {

		// Second column is i times the first: null vector along [i, -1],
		// i.e. [1, i] after phase normalization.
		c1 := []complex128{1 + 2i, -3, 0.25i}
		a := make([]complex128, 0, 6)
		for _, c := range c1 {
			a = append(a, c, c*1i)
		}

		w := MinRightVector(a, 3, 2)
		require.Len(t, w, 2)

		for _, r := range applyRow(a, 3, 2, w) {
			require.InDelta(t, 0, cmplx.Abs(r), 1e-12)
		}

		require.InDelta(t, 0, cmplx.Abs(w[0]-complex(1/sqrt2, 0)), 1e-12)
		require.InDelta(t, 0, cmplx.Abs(w[1]-complex(0, 1/sqrt2)), 1e-12)
	})

	t.Run("PhaseTieBreak", func(t *testing.T) {

		// Two entries of (nearly) equal modulus: the lowest index must
		// anchor the rotation even when rounding leaves it an ulp short
		// of the maximum.
		w := normalizePhase([]complex128{
			complex(0, -(1-1e-13)/sqrt2),
			complex(1/sqrt2, 0),
		})

		require.Greater(t, real(w[0]), 0.0)
		require.InDelta(t, 0, imag(w[0]), 1e-12)

		var norm float64
		for _, c := range w {
			norm += real(c)*real(c) + imag(c)*imag(c)
		}
		require.InDelta(t, 1, norm, 1e-12)
	})

	t.Run("Underdetermined", func(t *testing.T) {

		// A single row: the null space only shows up in a full V.
		a := []complex128{1, 1}

		w := MinRightVector(a, 1, 2)
		require.Len(t, w, 2)
		require.InDelta(t, 0, cmplx.Abs(w[0]+w[1]), 1e-12)
		require.Greater(t, real(w[0]), 0.0)
	})
}

func TestPencilPoles(t *testing.T) {

	t.Run("SymmetricWeights", func(t *testing.T) {
		// 1/(x+1) + 1/(x-1) = 2x/(x^2-1): single root at 0.
		poles := PencilPoles([]float64{-1, 1}, []float64{1, 1})
		require.Len(t, poles, 1)
		require.InDelta(t, 0, cmplx.Abs(poles[0]), 1e-10)
	})

	t.Run("AsymmetricWeights", func(t *testing.T) {
		// 1/(x+1) + 3/(x-1) = (4x+2)/(x^2-1): single root at -1/2.
		poles := PencilPoles([]float64{-1, 1}, []float64{1, 3})
		require.Len(t, poles, 1)
		require.InDelta(t, 0, cmplx.Abs(poles[0]-complex(-0.5, 0)), 1e-10)
	})

	t.Run("DegenerateWeightSum", func(t *testing.T) {
		// 1/(x+1) - 1/(x-1) = -2/(x^2-1): the cleared denominator is a
		// nonzero constant, so the pole escapes to infinity and must not
		// resurface as a huge finite value.
		poles := PencilPoles([]float64{-1, 1}, []float64{1, -1})
		require.Empty(t, poles)
	})

	t.Run("SingleNode", func(t *testing.T) {
		require.Nil(t, PencilPoles([]float64{0}, []float64{1}))
	})
}

func TestRoots(t *testing.T) {

	t.Run("Cubic", func(t *testing.T) {
		// (x-1)(x-2i)(x+3) = x^3 + (2-2i)x^2 + (-3-4i)x + 6i.
		c := []complex128{6i, -3 - 4i, 2 - 2i, 1}

		roots := Roots(c)
		require.Len(t, roots, 3)

		for _, want := range []complex128{1, 2i, -3} {
			found := false
			for _, r := range roots {
				if cmplx.Abs(r-want) < 1e-8 {
					found = true
				}
			}
			require.True(t, found, "missing root %v", want)
		}
	})

	t.Run("NegligibleLeading", func(t *testing.T) {
		// The leading coefficient is far below the rest: the effective
		// degree drops and only one finite root remains.
		c := []complex128{-2, 1, 1e-16}
		roots := Roots(c)
		require.Len(t, roots, 1)
		require.InDelta(t, 0, cmplx.Abs(roots[0]-2), 1e-10)
	})

	t.Run("Zero", func(t *testing.T) {
		require.Nil(t, Roots([]complex128{0, 0}))
		require.Nil(t, Roots([]complex128{3}))
	})
}

func TestInfNorm(t *testing.T) {
	require.Equal(t, 5.0, InfNorm([]complex128{1, 3 + 4i, -2}))
	require.Equal(t, 0.0, InfNorm(nil))
	require.Equal(t, []float64{1, 5, 2}, AbsSlice([]complex128{1, 3 + 4i, -2}))
}

const (
	sqrt2 = 1.4142135623730951
	sqrt5 = 2.23606797749979
)
