package mul

import "github.com/ajroetker/go-dotgrid/grid"

// mulStrip computes dst[i] = a[i] * b[i] over one strip.
//
// 4-way unrolled with a scalar tail. There are no loop-carried
// dependencies, so the unrolled iterations execute in parallel via ILP.
// All three slices must have length >= len(dst); Mul guarantees this.
func mulStrip[T grid.Floats](dst, a, b []T) {
	n := len(dst)
	var i int
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	// Scalar tail
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
