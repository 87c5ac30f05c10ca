package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/kestrelvec/hnsw"
)

func main() {
	vectors := make([]hnsw.Vector, 1000)
	rng := rand.New(rand.NewSource(1))
	for i := range vectors {
		v := make(hnsw.Vector, 32)
		for j := range v {
			v[j] = rng.Float32()
		}
		vectors[i] = v
	}

	idx, err := hnsw.NewHNSWIndex(vectors, 16, 32, 0.25)
	if err != nil {
		log.Fatalf("failed to build index: %v", err)
	}
	defer idx.Close()

	fmt.Printf("built index over %d vectors in %d dimensions\n", idx.Len(), idx.Dims())

	neighbors, err := idx.Knn(vectors[0], 5)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	fmt.Printf("nearest to vector 0: %v\n", neighbors)

	a := idx.Analyzer()
	fmt.Printf("layers: %d, per-layer population: %v\n", a.Height(), a.Topography())
}
