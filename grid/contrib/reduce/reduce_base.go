// Package reduce provides the reduction stage that turns per-index
// products into a single scalar, completing a dot product.
//
// Floating-point addition is not associative, so every reduction here
// commits to a fixed association. Sum accumulates in ascending index
// order, which makes a two-stage dot product bit-exact with a fused
// serial loop over the same data. SumUnrolled trades that equality for
// throughput.
package reduce

import "github.com/ajroetker/go-dotgrid/grid"

// Sum returns the sum of x accumulated in ascending index order.
// Returns 0 for an empty slice.
func Sum[T grid.Floats](x []T) T {
	var sum T
	for i := range x {
		sum += x[i]
	}
	return sum
}

// SumUnrolled returns the sum of x using four independent accumulators
// combined at the end.
//
// The association differs from Sum, so for inputs where rounding matters
// the two can differ in the last bits. Use Sum when results must be
// reproducible against an ascending-order reference.
func SumUnrolled[T grid.Floats](x []T) T {
	n := len(x)
	var s0, s1, s2, s3 T
	var i int
	for ; i+4 <= n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	sum := s0 + s1 + s2 + s3
	// Scalar tail
	for ; i < n; i++ {
		sum += x[i]
	}
	return sum
}
