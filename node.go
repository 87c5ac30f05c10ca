package hnsw

// node is one per vector: its maxLayer is fixed at creation and its
// per-layer neighbor lists are ordered, deduplicated slices of node ids,
// grounded on coder-hnsw/graph.go's layerNode, generalized from a map of
// neighbors to a slice per vector_id, matching spec.md §3's description of
// connections as "a sequence of neighbor ids".
type node struct {
	vectorID    int
	maxLayer    int
	connections [][]int // connections[layer] for layer in [0, maxLayer]
}

// newNode allocates a node's per-layer neighbor lists. Capacity hints follow
// spec.md §4.4: 2*m0 at layer 0, 2*m at higher layers.
func newNode(vectorID, maxLayer, m, m0 int) *node {
	connections := make([][]int, maxLayer+1)
	for layer := range connections {
		cap := 2 * m
		if layer == 0 {
			cap = 2 * m0
		}
		connections[layer] = make([]int, 0, cap)
	}
	return &node{
		vectorID:    vectorID,
		maxLayer:    maxLayer,
		connections: connections,
	}
}

// hasEdge reports whether otherID is already a neighbor at layer.
func (n *node) hasEdge(layer, otherID int) bool {
	if layer > n.maxLayer {
		return false
	}
	for _, id := range n.connections[layer] {
		if id == otherID {
			return true
		}
	}
	return false
}

// addEdge appends otherID to layer's neighbor list. It is a no-op above the
// node's maxLayer, for an existing neighbor, or for a self-loop; it does not
// enforce the M/M0 degree cap (that is the Builder's responsibility, see
// graph.go's diversity selection).
func (n *node) addEdge(layer, otherID int) {
	if layer > n.maxLayer || otherID == n.vectorID {
		return
	}
	if n.hasEdge(layer, otherID) {
		return
	}
	n.connections[layer] = append(n.connections[layer], otherID)
}

// degree returns the number of neighbors a node has at layer.
func (n *node) degree(layer int) int {
	if layer > n.maxLayer {
		return 0
	}
	return len(n.connections[layer])
}

// neighborsAt returns the neighbor list for layer, or nil above maxLayer, so
// callers walking a layer that a node doesn't participate in see an empty
// neighbor set rather than needing to bounds-check connections themselves.
func (n *node) neighborsAt(layer int) []int {
	if layer > n.maxLayer {
		return nil
	}
	return n.connections[layer]
}
