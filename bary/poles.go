package bary

import (
	"github.com/Pro7ech/ratfun/linalg"
)

// Poles returns the poles of the receiver, i.e. the roots of the
// barycentric denominator. A rational with a single support point has
// none. Real-storage models are solved through the generalized
// eigenvalue pencil of the denominator; complex-storage models through
// the roots of the denominator expressed in the node basis. Either way
// at most Degree() poles are returned, fewer when weights degenerate and
// a pole escapes to infinity.
func (r *Rational) Poles() []complex128 {

	n := len(r.Nodes)
	if n < 2 {
		return nil
	}

	if r.IsReal {
		z := make([]float64, n)
		w := make([]float64, n)
		for i := range r.Nodes {
			z[i] = real(r.Nodes[i])
			w[i] = real(r.Weights[i])
		}
		return linalg.PencilPoles(z, w)
	}

	return linalg.Roots(r.denominator())
}

// denominator returns the coefficients of
//
//	p(x) = sum_j w_j prod_{k!=j} (x - z_k),
//
// the barycentric denominator cleared of its simple poles: a polynomial
// of degree at most n-1 whose roots are the poles of the receiver.
func (r *Rational) denominator() []complex128 {

	n := len(r.Nodes)

	// full(x) = prod_k (x - z_k), degree n.
	full := make([]complex128, n+1)
	full[0] = 1
	for k, z := range r.Nodes {
		full[k+1] = full[k]
		for i := k; i > 0; i-- {
			full[i] = full[i-1] - z*full[i]
		}
		full[0] *= -z
	}

	p := make([]complex128, n)
	q := make([]complex128, n)
	for j, z := range r.Nodes {
		// Synthetic division of full by (x - z_j).
		q[n-1] = full[n]
		for i := n - 1; i > 0; i-- {
			q[i-1] = full[i] + z*q[i]
		}
		for i := range p {
			p[i] += r.Weights[j] * q[i]
		}
	}

	return p
}
