// Package heap implements the bounded binary heap used by the search engine
// and the graph builder to hold a fixed-width frontier or result set.
package heap

// Lesser is satisfied by any value that can be ordered against another value
// of the same type. The same single-method contract is exercised by
// coder-hnsw/heap's test suite, which pushes Int values implementing Less
// and expects Pop to drain them in ascending order.
type Lesser[T any] interface {
	Less(other T) bool
}

// Order selects which end of the ordering sits at the heap's root.
type Order int

const (
	// MinOrder keeps the smallest element at the root. Used for the search
	// frontier, where the next node to expand is always the closest
	// unvisited candidate.
	MinOrder Order = iota
	// MaxOrder keeps the largest element at the root. Used for a bounded
	// result set, where the current worst member must be found and evicted
	// in O(log n) whenever a better candidate arrives.
	MaxOrder
)

// BoundedHeap is a fixed-capacity binary heap. MinOrder and MaxOrder share
// every operation below; they differ only in the comparison used at sift
// time, per the single-type-two-modes design this package follows.
type BoundedHeap[T Lesser[T]] struct {
	items []T
	order Order
	cap   int
}

// New returns an empty heap of the given order and capacity. A capacity of 0
// means Insert never accepts anything; Push still works and grows unbounded.
func New[T Lesser[T]](order Order, capacity int) *BoundedHeap[T] {
	return &BoundedHeap[T]{
		items: make([]T, 0, capacity),
		order: order,
		cap:   capacity,
	}
}

func (h *BoundedHeap[T]) before(a, b T) bool {
	if h.order == MaxOrder {
		return b.Less(a)
	}
	return a.Less(b)
}

// Len returns the number of elements currently held.
func (h *BoundedHeap[T]) Len() int { return len(h.items) }

// Cap returns the heap's configured capacity.
func (h *BoundedHeap[T]) Cap() int { return h.cap }

// Full reports whether the heap holds Cap elements.
func (h *BoundedHeap[T]) Full() bool { return h.cap > 0 && len(h.items) >= h.cap }

// Peek returns the root element without removing it.
func (h *BoundedHeap[T]) Peek() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	return h.items[0], true
}

// Push adds an element unconditionally, growing past Cap if necessary.
// Callers that must respect a hard bound use Insert instead.
func (h *BoundedHeap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root element.
func (h *BoundedHeap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	root := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return root, true
}

// Insert enforces Cap: while there's room, v is always accepted. Once full,
// v only displaces the root if it is smaller than the root for MaxOrder
// (the worst-so-far gives way to a better value) or larger than the root for
// MinOrder, and is discarded otherwise. Returns whether v was kept.
func (h *BoundedHeap[T]) Insert(v T) bool {
	if len(h.items) < h.cap {
		h.Push(v)
		return true
	}
	if h.cap == 0 {
		return false
	}
	root := h.items[0]
	var accept bool
	if h.order == MaxOrder {
		accept = v.Less(root)
	} else {
		accept = root.Less(v)
	}
	if !accept {
		return false
	}
	h.items[0] = v
	h.siftDown(0)
	return true
}

func (h *BoundedHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *BoundedHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		best := i
		if left < n && h.before(h.items[left], h.items[best]) {
			best = left
		}
		if right < n && h.before(h.items[right], h.items[best]) {
			best = right
		}
		if best == i {
			break
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}

// DrainSorted empties the heap and returns its elements in ascending order
// (best first). Popping a MaxOrder heap yields a descending sequence, so it
// is reversed before returning.
func (h *BoundedHeap[T]) DrainSorted() []T {
	out := make([]T, 0, len(h.items))
	for len(h.items) > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	if h.order == MaxOrder {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
