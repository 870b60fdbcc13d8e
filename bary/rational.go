// Package bary implements rational functions in barycentric form: a
// rational function represented directly by its interpolation nodes,
// values and weights, evaluated through the second-kind barycentric
// formula rather than through explicit polynomial coefficients.
package bary

import (
	"fmt"
)

// Rational is a rational function in barycentric form,
//
//	r(x) = sum_j w_j f_j / (x - z_j)  /  sum_j w_j / (x - z_j),
//
// interpolating the value f_j at the node z_j for every nonzero w_j.
type Rational struct {
	// Nodes are the support points z_j, in the order they were provided.
	Nodes []complex128

	// Values are the interpolated values f_j = r(z_j).
	Values []complex128

	// Weights are the barycentric weights w_j. They are only defined up
	// to a common nonzero scalar.
	Weights []complex128

	// IsReal reports whether every node, value and weight has an exactly
	// zero imaginary part, i.e. whether the receiver maps reals to reals.
	IsReal bool
}

// New instantiates a new Rational from nodes, values and weights.
// The three slices must have the same nonzero length; the inputs are
// copied. Panics on malformed input.
func New(nodes, values, weights []complex128) (r *Rational) {

	n := len(nodes)
	if n == 0 || len(values) != n || len(weights) != n {
		panic(fmt.Errorf("cannot New: nodes, values and weights must have the same nonzero length but are %d, %d, %d", n, len(values), len(weights)))
	}

	r = &Rational{
		Nodes:   append([]complex128(nil), nodes...),
		Values:  append([]complex128(nil), values...),
		Weights: append([]complex128(nil), weights...),
		IsReal:  true,
	}

	for i := range nodes {
		if imag(r.Nodes[i]) != 0 || imag(r.Values[i]) != 0 || imag(r.Weights[i]) != 0 {
			r.IsReal = false
			break
		}
	}

	return
}

// Degree returns the degree of the numerator and denominator, i.e. the
// number of support points minus one.
func (r *Rational) Degree() int {
	return len(r.Nodes) - 1
}

// Evaluate returns r(x). An x equal to a support point short-circuits to
// the interpolated value, so evaluation at nodes is exact.
func (r *Rational) Evaluate(x complex128) complex128 {

	var num, den complex128
	for j, z := range r.Nodes {
		d := x - z
		if d == 0 {
			return r.Values[j]
		}
		c := r.Weights[j] / d
		num += c * r.Values[j]
		den += c
	}

	return num / den
}

// EvaluateReal returns the real part of r(x) for a real argument. It is
// only meaningful when IsReal is true.
func (r *Rational) EvaluateReal(x float64) float64 {
	return real(r.Evaluate(complex(x, 0)))
}
