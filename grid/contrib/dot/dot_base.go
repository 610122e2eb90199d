package dot

import (
	"github.com/ajroetker/go-dotgrid/grid"
	"github.com/ajroetker/go-dotgrid/grid/contrib/mul"
	"github.com/ajroetker/go-dotgrid/grid/contrib/reduce"
)

// Dot computes the dot product of two slices in two stages: an
// element-wise multiply dispatched over the grid, then an ascending-order
// sum of the products. The result is Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
//
// Dot allocates an intermediate product buffer per call; use a Stage to
// reuse one across calls.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot[T grid.Floats](a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return NewStage[T](n).Dot(a, b)
}

// Stage holds the intermediate product buffer of a two-stage dot product,
// letting a caller dispatch repeatedly without reallocating.
//
// The buffer is written by stage one and consumed by stage two within the
// same Dot call; it is not safe for concurrent use by multiple goroutines.
type Stage[T grid.Floats] struct {
	products []T
}

// NewStage returns a Stage for dot products of up to n elements.
func NewStage[T grid.Floats](n int) *Stage[T] {
	return &Stage[T]{products: make([]T, n)}
}

// Dot computes the two-stage dot product of a and b, reusing the stage's
// product buffer. The computation uses the minimum of the two input
// lengths and the stage capacity.
func (s *Stage[T]) Dot(a, b []T) T {
	n := min(len(s.products), min(len(a), len(b)))
	products := s.products[:n]
	mul.Mul(products, a, b)
	return reduce.Sum(products)
}

// DotSerial computes the dot product in a single loop on the calling
// goroutine. It is the serial reference for the grid-dispatched path:
// identical inputs yield bit-identical results from Dot and DotSerial.
func DotSerial[T grid.Floats](a, b []T) T {
	n := min(len(a), len(b))
	var sum T
	for i := 0; i < n; i++ {
		// The conversion rounds each product to T before the add. Without
		// it the compiler may fuse multiply and add into a single FMA on
		// arm64/ppc64, which skips the rounding the two-stage path applies
		// when storing products, and the bit-exact match with Dot breaks.
		sum += T(a[i] * b[i])
	}
	return sum
}

// DotBatch computes multiple dot products. For each i, computes the dot
// product of queries[i] and keys[i] over the two-stage path, sharing one
// stage sized to the largest pair.
//
// Returns a slice of results with length min(len(queries), len(keys)).
func DotBatch(queries, keys [][]float32) []float32 {
	n := min(len(queries), len(keys))
	results := make([]float32, n)
	if n == 0 {
		return results
	}

	maxLen := 0
	for i := 0; i < n; i++ {
		if l := min(len(queries[i]), len(keys[i])); l > maxLen {
			maxLen = l
		}
	}
	stage := NewStage[float32](maxLen)
	for i := 0; i < n; i++ {
		results[i] = stage.Dot(queries[i], keys[i])
	}

	return results
}
