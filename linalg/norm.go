package linalg

import (
	"math/cmplx"
)

// InfNorm returns max_i |v_i|, the infinity norm of v.
func InfNorm(v []complex128) (norm float64) {
	for _, c := range v {
		if m := cmplx.Abs(c); m > norm {
			norm = m
		}
	}
	return
}

// AbsSlice returns |v_i| for every entry of v.
func AbsSlice(v []complex128) (abs []float64) {
	abs = make([]float64, len(v))
	for i, c := range v {
		abs[i] = cmplx.Abs(c)
	}
	return
}
