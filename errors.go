package hnsw

import "errors"

// ErrInvalidParameter is returned by index construction when a parameter
// violates the constraints in spec.md §6. Construction fails fast, before
// any allocation, following coder-hnsw/graph.go's Validate.
var ErrInvalidParameter = errors.New("hnsw: invalid parameter")

// ErrDimensionMismatch is returned by the index facade's own input checks
// (NewHNSWIndex, NewBruteIndex). A dimension mismatch discovered inside a
// distance computation is not an error at all: it surfaces as +Inf (see
// Euclidean) and the mismatched vector sinks to the bottom of the ranking
// instead of aborting the query, per spec.md §7.
var ErrDimensionMismatch = errors.New("hnsw: vector dimension mismatch")
