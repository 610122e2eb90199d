// Copyright 2025 go-dotgrid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// dotbench benchmarks the grid-dispatched two-stage dot product against
// the fused serial reference.
//
// Each round generates two random float32 vectors in [-1, 1], computes the
// dot product both ways, verifies the results are bit-identical, and
// prints timings and throughput.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-dotgrid/grid"
	"github.com/ajroetker/go-dotgrid/grid/contrib/dot"
	"github.com/ajroetker/go-dotgrid/grid/contrib/mul"
	"github.com/ajroetker/go-dotgrid/grid/contrib/reduce"
)

var (
	size   = flag.Int("size", 1<<24, "Vector length N")
	rounds = flag.Int("rounds", 3, "Number of benchmark rounds (0 = run until interrupted)")
	seed   = flag.Uint64("seed", 42, "Random seed for vector generation")
)

// progressThreshold is the vector length above which generation shows a
// progress bar.
const progressThreshold = 1 << 26

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	n := *size
	p := message.NewPrinter(language.English)
	p.Printf("dotbench: N=%d float32 elements (%s per buffer)\n",
		n, humanize.Bytes(uint64(n)*4))
	fmt.Printf("Workers: %d (GOMAXPROCS %d, serial=%v)\n",
		grid.Workers(), runtime.GOMAXPROCS(0), grid.Serial())
	fmt.Printf("Strips:  %d x %d elements\n", grid.Strips(n), grid.ElemsPerStrip)
	fmt.Println()

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	a := make([]float32, n)
	b := make([]float32, n)
	result := make([]float32, n)

	binding := grid.Bind(a, b, result)
	must.M(binding.Validate())

	for round := 1; *rounds == 0 || round <= *rounds; round++ {
		genStart := time.Now()
		generate(rng, a, b)
		genElapsed := time.Since(genStart)

		// Stage one fans the multiply out across the grid; stage two reads
		// the completed result buffer in ascending order.
		gridStart := time.Now()
		mul.Mul(binding.Result, binding.A, binding.B)
		gridDot := reduce.Sum(binding.Result)
		gridElapsed := time.Since(gridStart)

		serialStart := time.Now()
		serialDot := dot.DotSerial(a, b)
		serialElapsed := time.Since(serialStart)

		if gridDot != serialDot {
			klog.Fatalf("round %d: grid dot %v != serial dot %v", round, gridDot, serialDot)
		}

		fmt.Printf("Round %d\n", round)
		fmt.Printf("Generate time : %v\n", genElapsed)
		fmt.Println()
		fmt.Printf("Grid dot      : %v\n", gridDot)
		fmt.Printf("Grid time     : %v (%selem/s)\n", gridElapsed, rate(n, gridElapsed))
		fmt.Println()
		fmt.Printf("Serial dot    : %v\n", serialDot)
		fmt.Printf("Serial time   : %v (%selem/s)\n", serialElapsed, rate(n, serialElapsed))
		fmt.Println()

		klog.V(1).Infof("round %d: speedup %.2fx", round,
			float64(serialElapsed)/float64(gridElapsed))
	}
}

// progressChunk is how many elements each progress-bar increment covers.
const progressChunk = 1 << 20

// progressTick reports whether a full chunk has been generated at index i.
// Index 0 has produced nothing yet, so the first tick comes after the
// first chunk completes.
func progressTick(i int) bool {
	return i > 0 && i%progressChunk == 0
}

// generate fills a and b with uniform random values in [-1, 1].
func generate(rng *rand.Rand, a, b []float32) {
	var bar *progressbar.ProgressBar
	if len(a) >= progressThreshold {
		bar = progressbar.Default(int64(len(a)), "generate")
	}
	for i := range a {
		a[i] = rng.Float32()*2 - 1
		b[i] = rng.Float32()*2 - 1
		if bar != nil && progressTick(i) {
			_ = bar.Add(progressChunk)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
}

func rate(n int, d time.Duration) string {
	if d <= 0 {
		return "inf "
	}
	return humanize.SI(float64(n)/d.Seconds(), "")
}
