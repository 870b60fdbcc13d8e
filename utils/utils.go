// Package utils implements small generic helpers shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// MaxSlice returns the maximum value of the slice.
func MaxSlice[T constraints.Ordered](slice []T) (max T) {
	if len(slice) == 0 {
		return
	}
	max = slice[0]
	for _, c := range slice[1:] {
		if c > max {
			max = c
		}
	}
	return
}

// MinSlice returns the minimum value of the slice.
func MinSlice[T constraints.Ordered](slice []T) (min T) {
	if len(slice) == 0 {
		return
	}
	min = slice[0]
	for _, c := range slice[1:] {
		if c < min {
			min = c
		}
	}
	return
}

// ArgMax returns the index of the maximum value of the slice.
// The lowest index wins on ties. Returns -1 if the slice is empty.
func ArgMax[T constraints.Ordered](slice []T) (idx int) {
	if len(slice) == 0 {
		return -1
	}
	for i := 1; i < len(slice); i++ {
		if slice[i] > slice[idx] {
			idx = i
		}
	}
	return
}
