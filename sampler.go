package hnsw

import (
	"math/rand"
	"time"
)

// maxSaneLayer caps the geometric draw in layerSampler.sample. spec.md §9
// notes the draw is otherwise unbounded; the teacher's own randomLevel
// bounds the walk by maxLevel(Ml, n) instead, which isn't available before
// any nodes exist, so this is a flat sanity ceiling rather than a
// size-derived one.
const maxSaneLayer = 32

// layerSampler draws the per-node maximum layer from a geometric
// distribution, grounded on coder-hnsw/graph.go's randomLevel: repeatedly
// flip a biased coin and climb a layer on each success.
type layerSampler struct {
	rng *rand.Rand
}

// newLayerSampler returns a sampler seeded from the current time, matching
// coder-hnsw/graph.go's defaultRand. Use newSeededLayerSampler with a fixed
// seed for reproducible builds.
func newLayerSampler() *layerSampler {
	return &layerSampler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// newSeededLayerSampler returns a sampler seeded with a caller-supplied seed, for
// the deterministic-build tests spec.md §8 property 9 requires.
func newSeededLayerSampler(seed int64) *layerSampler {
	return &layerSampler{rng: rand.New(rand.NewSource(seed))}
}

// sample draws a layer: start at 0, and while a fresh uniform-[0,1) sample
// is below mL, climb one more layer. The expected layer is mL/(1-mL).
func (s *layerSampler) sample(mL float64) int {
	layer := 0
	for layer < maxSaneLayer && s.rng.Float64() < mL {
		layer++
	}
	return layer
}
