package mul

import (
	"fmt"
	"math"
	"testing"

	"github.com/ajroetker/go-dotgrid/grid"
)

// referenceMul computes dst[i] = a[i] * b[i] with a plain scalar loop.
func referenceMul(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want []float32
	}{
		{
			name: "zeros",
			a:    []float32{0, 0, 0, 0},
			b:    []float32{0, 0, 0, 0},
			want: []float32{0, 0, 0, 0},
		},
		{
			name: "dot product stage one",
			a:    []float32{1, 2, 3},
			b:    []float32{4, 5, 6},
			want: []float32{4, 10, 18},
		},
		{
			name: "mixed signs",
			a:    []float32{-1.5, 0, 2},
			b:    []float32{2, 100, -3},
			want: []float32{-3, 0, -6},
		},
		{
			name: "negative",
			a:    []float32{-1, -2, -3, -4},
			b:    []float32{1, 2, 3, 4},
			want: []float32{-1, -4, -9, -16},
		},
		{
			name: "unroll width",
			a:    []float32{1, 2, 3, 4, 5, 6, 7, 8},
			b:    []float32{8, 7, 6, 5, 4, 3, 2, 1},
			want: []float32{8, 14, 18, 20, 20, 18, 14, 8},
		},
		{
			name: "unroll width with tail",
			a:    []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			b:    []float32{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
			want: []float32{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, len(tt.want))
			Mul(dst, tt.a, tt.b)

			// Exact equality: each element is a single float32 multiply.
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("index %d: got %v, want %v", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestMulSpecialValues(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	a := []float32{nan, inf, inf, inf, -2, nan}
	b := []float32{2, 0, 2, -3, inf, nan}
	dst := make([]float32, len(a))
	Mul(dst, a, b)

	isNaN := func(x float32) bool { return math.IsNaN(float64(x)) }

	if !isNaN(dst[0]) {
		t.Errorf("NaN * 2 = %v, want NaN", dst[0])
	}
	if !isNaN(dst[1]) {
		t.Errorf("Inf * 0 = %v, want NaN", dst[1])
	}
	if dst[2] != inf {
		t.Errorf("Inf * 2 = %v, want +Inf", dst[2])
	}
	if dst[3] != float32(math.Inf(-1)) {
		t.Errorf("Inf * -3 = %v, want -Inf", dst[3])
	}
	if dst[4] != float32(math.Inf(-1)) {
		t.Errorf("-2 * Inf = %v, want -Inf", dst[4])
	}
	if !isNaN(dst[5]) {
		t.Errorf("NaN * NaN = %v, want NaN", dst[5])
	}
}

func TestMulEmpty(t *testing.T) {
	// Should not panic and must write nothing.
	Mul[float32](nil, nil, nil)
	Mul([]float32{}, []float32{}, []float32{})

	dst := []float32{-1, -1}
	Mul(dst, []float32{}, []float32{1, 2})
	if dst[0] != -1 || dst[1] != -1 {
		t.Errorf("Mul with empty input wrote to dst: %v", dst)
	}
}

func TestMulShorterInput(t *testing.T) {
	// Computation covers the minimum length; surplus dst stays untouched.
	dst := []float32{-1, -1, -1, -1}
	Mul(dst, []float32{2, 3}, []float32{5, 7, 11, 13})

	want := []float32{10, 21, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestMulParallelMatchesReference(t *testing.T) {
	// Large enough to cross the parallel dispatch cutoff and leave a
	// partial final strip.
	n := 3*grid.ElemsPerStrip + grid.MinParallelElems + 41
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i%509)*0.25 - 63
		b[i] = float32(i%251)*-0.5 + 17
	}

	want := make([]float32, n)
	referenceMul(want, a, b)

	got := make([]float32, n)
	Mul(got, a, b)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMulPurity(t *testing.T) {
	n := grid.MinParallelElems + 5
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i) * 0.01
		b[i] = float32(n-i) * 0.01
	}
	aBefore := append([]float32(nil), a...)
	bBefore := append([]float32(nil), b...)

	dst := make([]float32, n)
	Mul(dst, a, b)

	for i := range a {
		if a[i] != aBefore[i] || b[i] != bBefore[i] {
			t.Fatalf("inputs mutated at index %d", i)
		}
	}
}

func TestMulDeterminism(t *testing.T) {
	n := 2 * grid.MinParallelElems
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i%97) * 0.375
		b[i] = float32(i%89) * -1.125
	}

	first := make([]float32, n)
	second := make([]float32, n)
	Mul(first, a, b)
	Mul(second, a, b)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated dispatch differs at index %d", i)
		}
	}
}

func TestKernelMatchesMul(t *testing.T) {
	a := []float64{1.5, -2, 0, 4.25}
	b := []float64{2, 3, 100, -1}

	viaRun := make([]float64, len(a))
	grid.Run(grid.Bind(a, b, viaRun), Kernel[float64])

	viaMul := make([]float64, len(a))
	Mul(viaMul, a, b)

	for i := range viaRun {
		if viaRun[i] != viaMul[i] {
			t.Errorf("index %d: Run/Kernel %v != Mul %v", i, viaRun[i], viaMul[i])
		}
		if got := Kernel(i, a, b); got != a[i]*b[i] {
			t.Errorf("Kernel(%d) = %v, want %v", i, got, a[i]*b[i])
		}
	}
}

func TestMulFloat64(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	dst := make([]float64, 3)
	Mul(dst, a, b)

	want := []float64{4, 10, 18}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func BenchmarkMul(b *testing.B) {
	sizes := []int{64, 1024, 1 << 16, 1 << 20}

	for _, size := range sizes {
		x := make([]float32, size)
		y := make([]float32, size)
		dst := make([]float32, size)
		for i := range x {
			x[i] = float32(i) * 0.01
			y[i] = float32(size-i) * 0.01
		}

		b.Run(fmt.Sprintf("f32_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Mul(dst, x, y)
			}
		})
	}
}
