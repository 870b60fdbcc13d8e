package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceHelpers(t *testing.T) {

	t.Run("MaxSlice", func(t *testing.T) {
		require.Equal(t, 7.5, MaxSlice([]float64{-3, 7.5, 2}))
		require.Equal(t, -1, MaxSlice([]int{-3, -1, -2}))
		require.Equal(t, 0.0, MaxSlice([]float64{}))
	})

	t.Run("MinSlice", func(t *testing.T) {
		require.Equal(t, -3.0, MinSlice([]float64{-3, 7.5, 2}))
		require.Equal(t, 0, MinSlice([]int{}))
	})

	t.Run("ArgMax", func(t *testing.T) {
		require.Equal(t, 1, ArgMax([]float64{-3, 7.5, 2}))
		// First index wins on ties.
		require.Equal(t, 0, ArgMax([]float64{2, 2, 1}))
		require.Equal(t, -1, ArgMax([]float64(nil)))
	})
}
