package hnsw

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	require.InDelta(t, 5.196152, Euclidean(a, b), 1e-4)
}

func TestEuclidean_Identical(t *testing.T) {
	v := []float32{1, 1, 1}
	require.Equal(t, float32(0), Euclidean(v, v))
}

func TestEuclidean_DimensionMismatch(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2}
	require.True(t, math32.IsInf(Euclidean(a, b), 1))
	require.True(t, math.IsInf(float64(Euclidean(a, b)), 1))
}

func TestEuclidean_Empty(t *testing.T) {
	require.Equal(t, float32(0), Euclidean(nil, nil))
}
