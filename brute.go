package hnsw

import "github.com/chewxy/math32"

// bruteKnn performs an exact linear scan over vectors, maintaining a
// sorted length-k insertion buffer of (id, distance) pairs initialized to
// (-1, +Inf), per spec.md §4.7. New relative to the teacher, which has no
// brute-force fallback; grounded in spirit on the flat linear-scan vector
// search original_source/backend/internal/storage/vector_search.c stubs
// out, written in this repo's own idiom.
func bruteKnn(vectors []Vector, query Vector, k int) []int {
	if len(vectors) == 0 || k <= 0 {
		return nil
	}

	ids := make([]int, k)
	dists := make([]float32, k)
	for i := range ids {
		ids[i] = -1
		dists[i] = math32.Inf(1)
	}

	for id, v := range vectors {
		d := Euclidean(query, v)
		// ">" rather than ">=" so a tie (e.g. every distance at +Inf on a
		// dimension mismatch) still displaces a -1 sentinel instead of
		// leaving the buffer empty.
		if d > dists[k-1] {
			continue
		}
		pos := k - 1
		for pos > 0 && dists[pos-1] > d {
			dists[pos] = dists[pos-1]
			ids[pos] = ids[pos-1]
			pos--
		}
		dists[pos] = d
		ids[pos] = id
	}

	out := ids[:0:0]
	for _, id := range ids {
		if id >= 0 {
			out = append(out, id)
		}
	}
	return out
}
