package hnsw

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// Vector is an immutable fixed-dimension point. Identifiers are positions in
// the array it was inserted at, not a field on the vector itself.
type Vector = []float32

// Euclidean returns the L2 distance between a and b. A length mismatch is a
// soft error: it returns +Inf rather than panicking, so a caller scanning a
// result set sees the mismatched vector sink to the bottom of the ranking
// instead of the whole query aborting.
//
// The squared distance is computed via the polarization identity
// ‖a-b‖² = a·a − 2(a·b) + b·b, routing all three inner products through
// vek32.Dot so the hot loop gets vek's SIMD dispatch instead of a naive
// per-element subtraction.
func Euclidean(a, b Vector) float32 {
	if len(a) != len(b) {
		return math32.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}

	aa := vek32.Dot(a, a)
	bb := vek32.Dot(b, b)
	ab := vek32.Dot(a, b)

	sq := aa - 2*ab + bb
	if sq < 0 {
		// Floating-point cancellation can push a near-zero difference
		// slightly negative.
		sq = 0
	}
	return math32.Sqrt(sq)
}

// randomUnitVector returns a uniformly random point on the unit sphere in d
// dimensions, used by tests that exercise recall on synthetic data.
func randomUnitVector(rng *rand.Rand, d int) Vector {
	v := make(Vector, d)
	var norm float32
	for i := range v {
		v[i] = float32(rng.NormFloat64())
		norm += v[i] * v[i]
	}
	norm = math32.Sqrt(norm)
	if norm == 0 {
		return v
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}
