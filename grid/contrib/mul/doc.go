// Package mul provides the element-wise multiply kernel, the first stage
// of a two-stage dot product.
//
// # Kernel
//
// The per-index contract is a single multiply-and-store:
//
//	Result[i] = A[i] * B[i]
//
// with standard IEEE-754 semantics, so NaN and infinity propagate through
// the product (NaN * x = NaN, Inf * 0 = NaN). There is no branching, no
// looping, and no data dependency between indices, so the grid dispatcher
// runs indices in any order without synchronization.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-dotgrid/grid/contrib/mul"
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := make([]float32, 3)
//	mul.Mul(result, a, b) // result = [4, 10, 18]
//
// Summing result afterwards (see contrib/reduce) completes the dot
// product: 4 + 10 + 18 = 32.
package mul
