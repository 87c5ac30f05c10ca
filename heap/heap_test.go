package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type Int int

func (i Int) Less(j Int) bool {
	return i < j
}

func TestHeap_MinOrder(t *testing.T) {
	h := New[Int](MinOrder, 20)

	for i := 0; i < 20; i++ {
		h.Push(Int(rand.Int() % 100))
	}

	require.Equal(t, 20, h.Len())

	var inOrder []Int
	for h.Len() > 0 {
		v, ok := h.Pop()
		require.True(t, ok)
		inOrder = append(inOrder, v)
	}

	if !slices.IsSorted(inOrder) {
		t.Errorf("Heap did not return sorted elements: %+v", inOrder)
	}
}

func TestHeap_MaxOrder(t *testing.T) {
	h := New[Int](MaxOrder, 20)

	for i := 0; i < 20; i++ {
		h.Push(Int(rand.Int() % 100))
	}

	root, ok := h.Peek()
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		v, ok := h.Peek()
		require.True(t, ok)
		require.LessOrEqual(t, v, root)
	}
}

func TestBoundedHeap_InsertEvictsWorst(t *testing.T) {
	h := New[Int](MaxOrder, 3)

	for _, v := range []Int{5, 1, 9} {
		require.True(t, h.Insert(v))
	}

	root, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, Int(9), root)

	// 20 is worse than the current worst (9 is the max held); since this is
	// a MaxOrder heap holding the worst-so-far at the root, only a smaller
	// value than 9 should displace it.
	require.False(t, h.Insert(Int(20)))
	require.True(t, h.Insert(Int(2)))

	require.Equal(t, 3, h.Len())
	sorted := h.DrainSorted()
	require.Equal(t, []Int{1, 2, 5}, sorted)
}

func TestBoundedHeap_DrainSortedMinOrder(t *testing.T) {
	h := New[Int](MinOrder, 5)
	for _, v := range []Int{4, 2, 8, 1, 6} {
		h.Insert(v)
	}

	require.Equal(t, []Int{1, 2, 4, 6, 8}, h.DrainSorted())
}
