package hnsw

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Analyzer reports structural statistics about a built Graph: how many
// nodes populate each layer, and how well-connected they are. Read-only and
// diagnostic only (it never mutates the graph, so it carries no Non-goal
// conflict with spec.md's static-artifact invariant).
//
// Grounded on coder-hnsw/analyzer.go's Analyzer[T], rewired onto this
// spec's array-of-nodes model: where the teacher walks an explicit slice of
// layers, this counts into a map, per layer, every node whose max_layer
// reaches that layer, and reports counts in
// ascending layer order via golang.org/x/exp/maps.Keys + slices.Sort, the
// same deterministic-iteration pattern coder-hnsw/graph.go's search uses
// for its map-keyed neighbor sets.
type Analyzer struct {
	Graph *Graph
}

// Height returns the number of layers in the graph (graph_max_layer + 1),
// or 0 for an empty graph.
func (a *Analyzer) Height() int {
	if len(a.Graph.nodes) == 0 {
		return 0
	}
	return a.Graph.maxLayer + 1
}

// Topography returns the number of nodes present at each layer, indexed
// from layer 0 upward. A node with max_layer L is present at every layer in
// [0, L], since lower layers are supersets of higher ones.
func (a *Analyzer) Topography() []int {
	counts := make(map[int]int)
	for _, n := range a.Graph.nodes {
		for layer := 0; layer <= n.maxLayer; layer++ {
			counts[layer]++
		}
	}

	layers := maps.Keys(counts)
	slices.Sort(layers)

	out := make([]int, 0, len(layers))
	for _, layer := range layers {
		out = append(out, counts[layer])
	}
	return out
}

// Connectivity returns the average out-degree of nodes present at each
// layer, in the same layer order as Topography.
func (a *Analyzer) Connectivity() []float64 {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, n := range a.Graph.nodes {
		for layer := 0; layer <= n.maxLayer; layer++ {
			sums[layer] += n.degree(layer)
			counts[layer]++
		}
	}

	layers := maps.Keys(counts)
	slices.Sort(layers)

	out := make([]float64, 0, len(layers))
	for _, layer := range layers {
		if counts[layer] == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, float64(sums[layer])/float64(counts[layer]))
	}
	return out
}
