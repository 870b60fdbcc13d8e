// Package bignum implements arbitrary precision arithmetic helpers used
// as a cross-check oracle for the float64 barycentric evaluation.
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	y = new(big.Float).SetPrec(prec)
	y.SetFloat64(x)
	return
}

// Exp returns exp(x) with the precision of x.
func Exp(x *big.Float) (y *big.Float) {
	return bigfloat.Exp(x)
}

// Log returns log(x) with the precision of x.
func Log(x *big.Float) (y *big.Float) {
	return bigfloat.Log(x)
}
