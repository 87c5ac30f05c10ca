package hnsw

import "fmt"

// defaultEfMultiplier and beamEfMultiplier set the fallback ef_search used
// when Knn/BeamKnn aren't given an explicit width, per spec.md §4.8: Knn and
// ApproximateKnn default to a wide beam (4k), BeamKnn to a narrower one (2k)
// that trades recall for speed.
const (
	defaultEfMultiplier = 4
	beamEfMultiplier    = 2
)

// Index is the facade spec.md §4.8 describes: it owns the graph (if any)
// and borrows the vector array, routing queries to the HNSW search engine
// or the brute-force fallback. Grounded on coder-hnsw/hnsw.go's
// Parameters/HNSW struct shape, generalized to hold a built *Graph directly
// instead of lazily-grown layers, since this spec's Builder runs to
// completion before any query is possible.
//
// Once built, an Index is read-only: queries may run concurrently as long
// as no Index is being built at the same time (spec.md §5).
type Index struct {
	vectors []Vector
	graph   *Graph
	useHNSW bool
	dims    int
}

// NewBruteIndex configures an index for brute-force search only (the
// Uninitialized -> BruteOnly transition of spec.md §4.8's state machine).
func NewBruteIndex(vectors []Vector) (*Index, error) {
	dims, err := uniformDims(vectors)
	if err != nil {
		return nil, err
	}
	return &Index{vectors: vectors, dims: dims}, nil
}

// NewHNSWIndex configures an index backed by an HNSW graph, building it
// immediately (the Uninitialized -> HnswReady transition). efConstruction
// defaults to 2*M per spec.md §6.
func NewHNSWIndex(vectors []Vector, m, m0 int, mL float64) (*Index, error) {
	return NewHNSWIndexWithConfig(vectors, Params{
		M:              m,
		M0:             m0,
		Ml:             mL,
		EfConstruction: 2 * m,
	})
}

// NewHNSWIndexWithConfig is NewHNSWIndex with an explicit EfConstruction,
// for callers that need to override the 2*M default.
func NewHNSWIndexWithConfig(vectors []Vector, params Params) (*Index, error) {
	dims, err := uniformDims(vectors)
	if err != nil {
		return nil, err
	}

	g, err := buildGraph(vectors, params, newLayerSampler())
	if err != nil {
		return nil, err
	}

	return &Index{vectors: vectors, graph: g, useHNSW: true, dims: dims}, nil
}

// newHNSWIndexSeeded is the deterministic-build entry point spec.md §8
// property 9 requires: same seed, same input, byte-identical graph.
func newHNSWIndexSeeded(vectors []Vector, params Params, seed int64) (*Index, error) {
	dims, err := uniformDims(vectors)
	if err != nil {
		return nil, err
	}
	g, err := buildGraph(vectors, params, newSeededLayerSampler(seed))
	if err != nil {
		return nil, err
	}
	return &Index{vectors: vectors, graph: g, useHNSW: true, dims: dims}, nil
}

// uniformDims verifies every vector shares a dimension and returns it (0 for
// an empty slice). Dimension mismatches between stored vectors are rejected
// up front, so the Builder can assume a uniform dimension per spec.md §4.5.
func uniformDims(vectors []Vector) (int, error) {
	if len(vectors) == 0 {
		return 0, nil
	}
	dims := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dims {
			return 0, fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrDimensionMismatch, i, len(v), dims)
		}
	}
	return dims, nil
}

// Knn returns up to k identifiers closest to query in ascending-distance
// order, using a default ef_search of 4k when the graph is in play.
func (idx *Index) Knn(query Vector, k int) ([]int, error) {
	return idx.knn(query, k, defaultEfMultiplier*k)
}

// ApproximateKnn is Knn with an explicit search width; ef <= 0 falls back to
// the same 4k default as Knn.
func (idx *Index) ApproximateKnn(query Vector, k, ef int) ([]int, error) {
	if ef <= 0 {
		ef = defaultEfMultiplier * k
	}
	return idx.knn(query, k, ef)
}

// BeamKnn is Knn with a narrower default search width (2k), trading recall
// for speed; ef <= 0 falls back to that narrower default.
func (idx *Index) BeamKnn(query Vector, k, ef int) ([]int, error) {
	if ef <= 0 {
		ef = beamEfMultiplier * k
	}
	return idx.knn(query, k, ef)
}

func (idx *Index) knn(query Vector, k, ef int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidParameter, k)
	}
	if len(idx.vectors) == 0 {
		return nil, nil
	}

	if idx.useHNSW && idx.graph != nil {
		return idx.graph.Knn(query, k, ef), nil
	}
	return bruteKnn(idx.vectors, query, k), nil
}

// Analyzer returns a structural analyzer over the index's graph, or nil for
// a brute-force-only index, which has no layers to report on.
func (idx *Index) Analyzer() *Analyzer {
	if idx.graph == nil {
		return nil
	}
	return &Analyzer{Graph: idx.graph}
}

// Dims returns the index's vector dimension, or 0 if it holds no vectors.
func (idx *Index) Dims() int { return idx.dims }

// Len returns the number of vectors in the index.
func (idx *Index) Len() int { return len(idx.vectors) }

// Close releases the index's graph and node storage. The vector array it
// borrowed is left untouched, as spec.md §5's resource-ownership model
// requires.
func (idx *Index) Close() {
	idx.graph = nil
	idx.vectors = nil
}
