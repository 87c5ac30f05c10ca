package hnsw

import "fmt"

// diversityFactor is the clustering-avoidance threshold from spec.md §4.5: a
// candidate is rejected if it sits closer to an already-accepted neighbor
// than diversityFactor times its own distance to the node being inserted.
// Fixed by the spec, not exposed as a knob.
const diversityFactor = 0.7

// Graph is a Hierarchical Navigable Small World graph over a borrowed vector
// array. It is built once by buildGraph and is read-only afterwards, with no
// node or edge changes once construction returns (spec.md §3 invariant 5).
//
// Grounded on coder-hnsw/graph.go's Graph[K], generalized from its
// map-keyed layerNode structure to the array-of-nodes-with-slice-edges
// model spec.md §3 requires: identifiers are positions in the vectors
// array, not an arbitrary ordered key type.
type Graph struct {
	nodes   []node
	vectors []Vector

	entryPoint int
	maxLayer   int

	m              int
	m0             int
	mL             float64
	efConstruction int
}

// Params bundles the construction parameters validated by spec.md §6:
// M >= 2, M0 >= M, 0 < Ml < 1, EfConstruction >= M.
type Params struct {
	M              int
	M0             int
	Ml             float64
	EfConstruction int
}

func (p Params) validate() error {
	if p.M < 2 {
		return fmt.Errorf("%w: M must be >= 2, got %d", ErrInvalidParameter, p.M)
	}
	if p.M0 < p.M {
		return fmt.Errorf("%w: M0 must be >= M, got M0=%d M=%d", ErrInvalidParameter, p.M0, p.M)
	}
	if p.Ml <= 0 || p.Ml >= 1 {
		return fmt.Errorf("%w: Ml must be in (0, 1) exclusive, got %f", ErrInvalidParameter, p.Ml)
	}
	if p.EfConstruction < p.M {
		return fmt.Errorf("%w: EfConstruction must be >= M, got %d", ErrInvalidParameter, p.EfConstruction)
	}
	return nil
}

// buildGraph runs the two-phase insertion algorithm of spec.md §4.5:
// Phase 1 samples every node's max layer and picks the initial entry point;
// Phase 2 inserts nodes 1..N-1 one at a time via descent, beam search, and
// diversity selection, preceded by node 0 when node 0 is not the entry point
// (otherwise nothing would ever link to it). Grounded on coder-hnsw/graph.go's Graph.Add, which
// this splits into the same two conceptual phases but performs per-node
// instead of lazily growing layers on each Add call, since this spec's
// Builder receives the whole vector array up front.
func buildGraph(vectors []Vector, params Params, sampler *layerSampler) (*Graph, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		vectors:        vectors,
		m:              params.M,
		m0:             params.M0,
		mL:             params.Ml,
		efConstruction: params.EfConstruction,
	}

	n := len(vectors)
	if n == 0 {
		return g, nil
	}

	g.nodes = make([]node, n)
	for i := 0; i < n; i++ {
		layer := sampler.sample(g.mL)
		g.nodes[i] = *newNode(i, layer, g.m, g.m0)
		if i == 0 || layer > g.maxLayer {
			g.maxLayer = layer
			g.entryPoint = i
		}
	}

	if g.entryPoint != 0 {
		g.insert(0)
	}
	for i := 1; i < n; i++ {
		g.insert(i)
	}

	return g, nil
}

// insert runs Phase 2 of spec.md §4.5 for node i.
func (g *Graph) insert(i int) {
	query := g.vectors[i]
	li := g.nodes[i].maxLayer

	// Step 1: descend to the target node's top layer with a width-1 greedy
	// walk.
	cur := g.entryPoint
	for layer := g.maxLayer; layer > li; layer-- {
		cur = g.greedyDescend(query, cur, layer)
	}

	// Step 2: connect from li down to 0.
	for layer := li; layer >= 0; layer-- {
		pool := g.searchLayer(query, cur, layer, g.efConstruction)
		if len(pool) == 0 {
			continue
		}

		mLayer := g.m
		if layer == 0 {
			mLayer = g.m0
		}

		for _, s := range selectNeighbors(pool, i, g.vectors, mLayer) {
			g.nodes[s].addEdge(layer, i)
			g.nodes[i].addEdge(layer, s)
		}

		cur = pool[0].id
	}
}

// greedyDescend repeatedly replaces current with a strictly closer neighbor
// at layer until none improves on it: the width-1 greedy walk of spec.md
// §4.5 step 1 and, with ef=1, §4.6's upper-layer descent during search.
func (g *Graph) greedyDescend(query Vector, from, layer int) int {
	current := from
	currentDist := Euclidean(g.vectors[current], query)
	for {
		improved := false
		for _, neighborID := range g.nodes[current].neighborsAt(layer) {
			d := Euclidean(g.vectors[neighborID], query)
			if d < currentDist {
				current, currentDist = neighborID, d
				improved = true
			}
		}
		if !improved {
			return current
		}
	}
}

// selectNeighbors implements spec.md §4.5's distance-plus-diversity pass.
// pool is already sorted ascending by distance to the inserted node (the
// contract searchLayer's result carries); self is excluded, the closest
// remaining candidate is always accepted, later candidates are rejected if
// they sit closer to an accepted neighbor than diversityFactor times their
// own distance to the inserted node, and the pass tops up from the leftover sorted candidates if diversity
// rejected too many to reach mLayer.
func selectNeighbors(pool []searchCandidate, self int, vectors []Vector, mLayer int) []int {
	candidates := make([]searchCandidate, 0, len(pool))
	for _, c := range pool {
		if c.id != self {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	accepted := make([]int, 0, mLayer)
	accepted = append(accepted, candidates[0].id)

	for _, c := range candidates[1:] {
		if len(accepted) >= mLayer {
			break
		}
		diverse := true
		for _, s := range accepted {
			if Euclidean(vectors[c.id], vectors[s]) < diversityFactor*c.dist {
				diverse = false
				break
			}
		}
		if diverse {
			accepted = append(accepted, c.id)
		}
	}

	if len(accepted) < mLayer {
		kept := make(map[int]bool, len(accepted))
		for _, id := range accepted {
			kept[id] = true
		}
		for _, c := range candidates {
			if len(accepted) >= mLayer {
				break
			}
			if !kept[c.id] {
				accepted = append(accepted, c.id)
				kept[c.id] = true
			}
		}
	}

	return accepted
}

// Len returns the number of vectors in the graph.
func (g *Graph) Len() int { return len(g.nodes) }
