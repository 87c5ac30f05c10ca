package hnsw

import "github.com/kestrelvec/hnsw/heap"

// searchCandidate pairs a node id with its distance to the current query,
// ordered by distance, grounded on coder-hnsw/graph.go's searchCandidate,
// generalized from a pointer-to-layerNode to a plain id since this spec's
// nodes live in a flat array.
type searchCandidate struct {
	id   int
	dist float32
}

func (c searchCandidate) Less(o searchCandidate) bool { return c.dist < o.dist }

// searchLayer performs beam search at a single layer starting from entry,
// per spec.md §4.6: a bounded min-heap frontier drives exploration, a
// bounded max-heap results set tracks the best ef found so far, and a
// visited set prevents re-expanding a node. It returns the result set
// drained in ascending-distance order.
//
// Grounded on coder-hnsw/graph.go's layerNode.search, rewritten over
// heap.BoundedHeap and node.connections instead of the teacher's map-backed
// candidates/result heaps and sorted map-key iteration.
func (g *Graph) searchLayer(query Vector, entry, layer, ef int) []searchCandidate {
	if ef < 1 {
		ef = 1
	}

	frontier := heap.New[searchCandidate](heap.MinOrder, ef)
	results := heap.New[searchCandidate](heap.MaxOrder, ef)
	visited := make(map[int]bool, ef*2)

	seed := searchCandidate{id: entry, dist: Euclidean(g.vectors[entry], query)}
	frontier.Insert(seed)
	results.Insert(seed)
	visited[entry] = true

	for frontier.Len() > 0 {
		current, _ := frontier.Pop()

		if worst, ok := results.Peek(); ok && results.Full() && current.dist > worst.dist {
			break
		}

		for _, neighborID := range g.nodes[current.id].neighborsAt(layer) {
			if visited[neighborID] {
				continue
			}
			visited[neighborID] = true

			dist := Euclidean(g.vectors[neighborID], query)
			worst, ok := results.Peek()
			if !ok || !results.Full() || dist < worst.dist {
				cand := searchCandidate{id: neighborID, dist: dist}
				frontier.Insert(cand)
				results.Insert(cand)
			}
		}
	}

	return results.DrainSorted()
}

// Knn returns up to k identifiers in ascending-distance order from query,
// per spec.md §4.6: greedy-descend through the upper layers with width 1,
// then beam search the base layer with width efSearch.
func (g *Graph) Knn(query Vector, k, efSearch int) []int {
	if len(g.nodes) == 0 {
		return nil
	}

	cur := g.entryPoint
	for layer := g.maxLayer; layer > 0; layer-- {
		cur = g.greedyDescend(query, cur, layer)
	}

	pool := g.searchLayer(query, cur, 0, efSearch)
	if k > len(pool) {
		k = len(pool)
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = pool[i].id
	}
	return out
}
