package bignum

import (
	"fmt"
)

// ToComplexSlice converts a []complex128 into a []Complex with "prec"
// bits of precision.
func ToComplexSlice(values []complex128, prec uint) (cmplxSlice []Complex) {
	cmplxSlice = make([]Complex, len(values))
	for i, v := range values {
		cmplxSlice[i][0].SetPrec(prec).SetFloat64(real(v))
		cmplxSlice[i][1].SetPrec(prec).SetFloat64(imag(v))
	}
	return
}

// Barycentric evaluates the second-kind barycentric formula
//
//	r(x) = sum_j w_j f_j / (x - z_j)  /  sum_j w_j / (x - z_j)
//
// at arbitrary precision. An x equal to a node returns the matching
// value. The precision of x is used as reference precision for y.
func Barycentric(nodes, values, weights []Complex, x *Complex) (y *Complex) {

	n := len(nodes)
	if n == 0 || len(values) != n || len(weights) != n {
		panic(fmt.Errorf("cannot Barycentric: nodes, values and weights must have the same nonzero length but are %d, %d, %d", n, len(values), len(weights)))
	}

	prec := x.Prec()

	mul := NewComplexMultiplier()

	num := new(Complex).SetPrec(prec)
	den := new(Complex).SetPrec(prec)

	diff := new(Complex).SetPrec(prec)
	c := new(Complex).SetPrec(prec)
	tmp := new(Complex).SetPrec(prec)

	for j := range nodes {

		diff.Sub(x, &nodes[j])

		if diff.IsZero() {
			return values[j].Clone()
		}

		mul.Quo(&weights[j], diff, c)
		den.Add(den, c)

		mul.Mul(c, &values[j], tmp)
		num.Add(num, tmp)
	}

	y = new(Complex).SetPrec(prec)
	mul.Quo(num, den, y)

	return
}
