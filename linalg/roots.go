package linalg

import (
	"math/cmplx"
)

const (
	rootsMaxIter = 256
	rootsTol     = 1e-14

	// Relative magnitude below which a leading coefficient is treated as
	// zero, dropping the effective degree (the corresponding root has
	// drifted to infinity).
	leadingTol = 1e-13
)

// Roots returns the roots of the complex polynomial
// c[0] + c[1]*x + ... + c[d]*x^d using the Durand-Kerner iteration.
// Leading coefficients that are negligible relative to the largest
// coefficient are dropped first. The starting configuration is fixed, so
// the returned root order is deterministic.
func Roots(c []complex128) []complex128 {

	var max float64
	for _, ci := range c {
		if m := cmplx.Abs(ci); m > max {
			max = m
		}
	}
	if max == 0 {
		return nil
	}

	d := len(c) - 1
	for d > 0 && cmplx.Abs(c[d]) <= leadingTol*max {
		d--
	}
	if d < 1 {
		return nil
	}

	// Monic form.
	p := make([]complex128, d+1)
	for i := 0; i <= d; i++ {
		p[i] = c[i] / c[d]
	}

	// Cauchy bound on the root moduli.
	bound := 0.0
	for _, pi := range p[:d] {
		if m := cmplx.Abs(pi); m > bound {
			bound = m
		}
	}
	bound++

	x := make([]complex128, d)
	seed := complex(0.4, 0.9)
	rot := seed
	for k := range x {
		x[k] = complex(bound, 0) * rot
		rot *= seed
	}

	for iter := 0; iter < rootsMaxIter; iter++ {
		var maxStep, maxRoot float64
		for k := range x {
			den := complex(1, 0)
			for j := range x {
				if j == k {
					continue
				}
				diff := x[k] - x[j]
				if diff == 0 {
					diff = complex(rootsTol, rootsTol)
				}
				den *= diff
			}
			step := horner(p, x[k]) / den
			x[k] -= step
			if m := cmplx.Abs(step); m > maxStep {
				maxStep = m
			}
			if m := cmplx.Abs(x[k]); m > maxRoot {
				maxRoot = m
			}
		}
		if maxStep <= rootsTol*(1+maxRoot) {
			break
		}
	}

	return x
}

func horner(p []complex128, x complex128) (y complex128) {
	y = p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		y = y*x + p[i]
	}
	return
}
