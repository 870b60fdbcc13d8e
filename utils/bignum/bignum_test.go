package bignum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {

	prec := uint(128)

	t.Run("Exp", func(t *testing.T) {
		y, _ := Exp(NewFloat(1.25, prec)).Float64()
		require.InDelta(t, math.Exp(1.25), y, 1e-15)
	})

	t.Run("Log", func(t *testing.T) {
		y, _ := Log(NewFloat(42, prec)).Float64()
		require.InDelta(t, math.Log(42), y, 1e-15)
	})
}

func TestComplex(t *testing.T) {

	prec := uint(128)

	a128 := 1.5 - 2.25i
	b128 := -0.75 + 3i

	a := NewComplex(a128, prec)
	b := NewComplex(b128, prec)
	c := new(Complex).SetPrec(prec)

	mul := NewComplexMultiplier()

	t.Run("Mul", func(t *testing.T) {
		mul.Mul(a, b, c)
		require.InDelta(t, 0, cmplx.Abs(c.Complex128()-a128*b128), 1e-15)
	})

	t.Run("Quo", func(t *testing.T) {
		mul.Quo(a, b, c)
		require.InDelta(t, 0, cmplx.Abs(c.Complex128()-a128/b128), 1e-15)
	})

	t.Run("AddSub", func(t *testing.T) {
		c.Add(a, b)
		c.Sub(c, b)
		require.Equal(t, a128, c.Complex128())
		require.True(t, new(Complex).SetPrec(prec).IsZero())
	})
}

func TestBarycentric(t *testing.T) {

	prec := uint(256)

	nodes := ToComplexSlice([]complex128{-1, 0, 1}, prec)
	values := ToComplexSlice([]complex128{2, -0.5, 3}, prec)
	weights := ToComplexSlice([]complex128{0.5, -1, 0.5}, prec)

	t.Run("NodeHit", func(t *testing.T) {
		y := Barycentric(nodes, values, weights, NewComplex(0, prec))
		require.Equal(t, -0.5+0i, y.Complex128())
	})

	t.Run("Interior", func(t *testing.T) {
		// The weights [0.5, -1, 0.5] are the polynomial barycentric
		// weights for {-1, 0, 1}: the result is the quadratic through
		// the three values.
		y := Barycentric(nodes, values, weights, NewComplex(0.5, prec))
		// p(x) = -0.5 + 0.5x + 3x^2 interpolates (−1,2), (0,−0.5), (1,3).
		require.InDelta(t, 0, cmplx.Abs(y.Complex128()-complex(-0.5+0.5*0.5+3*0.25, 0)), 1e-15)
	})

	t.Run("Malformed", func(t *testing.T) {
		require.Panics(t, func() { Barycentric(nodes, values[:2], weights, NewComplex(0, prec)) })
	})
}
