package mul

import "github.com/ajroetker/go-dotgrid/grid"

// Kernel is the pure per-index form of the multiply kernel: it returns
// a[i] * b[i] and performs no writes. Suitable for grid.Run and
// grid.RunContext.
func Kernel[T grid.Floats](i int, a, b []T) T {
	return a[i] * b[i]
}

// Mul computes the element-wise product dst[i] = a[i] * b[i].
//
// If the slices have different lengths, the computation uses the minimum
// length. Large grids are dispatched across worker goroutines; each index
// is written exactly once, in no guaranteed order, and a and b are never
// mutated.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	dst := make([]float32, 3)
//	Mul(dst, a, b) // dst = [4, 10, 18]
func Mul[T grid.Floats](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	if n == 0 {
		return
	}
	grid.For(n, func(start, end int) {
		mulStrip(dst[start:end], a[start:end], b[start:end])
	})
}
