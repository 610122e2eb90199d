// Package dot composes the two stages of a dot product: the element-wise
// multiply kernel (contrib/mul) and the fixed-order reduction
// (contrib/reduce).
//
// # Dot Product Functions
//
//   - Dot(a, b []T) T - two-stage dot product, allocating its own
//     intermediate buffer
//   - Stage / (*Stage).Dot - two-stage dot product with a reusable
//     caller-owned intermediate buffer
//   - DotSerial(a, b []T) T - fused single-loop reference
//   - DotBatch(queries, keys [][]float32) []float32 - batch dot products
//
// # Reproducibility
//
// The two-stage path writes every product Result[i] = a[i] * b[i] first
// (in parallel, in no particular order) and then sums the products in
// ascending index order. Storing each product rounds it to the element
// type; the serial reference forces the same rounding with an explicit
// conversion so the compiler cannot fuse its multiply-add into an FMA.
// With per-index products rounded identically and the summation order
// fixed, Dot and DotSerial return bit-identical results for identical
// inputs, which is what lets callers verify a parallel dispatch against
// the serial reference with plain equality.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-dotgrid/grid/contrib/dot"
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := dot.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
package dot
