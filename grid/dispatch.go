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

package grid

import (
	"runtime"
	"sync"
)

// Parallel tuning parameters
const (
	// MinParallelElems is the minimum grid size before parallelizing.
	// Smaller grids run inline; goroutine handoff costs more than the work.
	MinParallelElems = 1 << 15

	// ElemsPerStrip defines how many indices each worker claims at a time.
	// Large enough to amortize channel traffic, small enough to balance load.
	ElemsPerStrip = 1 << 14
)

var (
	serialMode     bool
	workerOverride int
)

func init() {
	serialMode = SerialEnv()
	workerOverride = WorkersEnv()
}

// Workers returns the number of worker goroutines a parallel dispatch will
// use: the DOTGRID_WORKERS override if set, otherwise GOMAXPROCS. Returns 1
// in serial mode.
func Workers() int {
	if serialMode {
		return 1
	}
	if workerOverride > 0 {
		return workerOverride
	}
	return runtime.GOMAXPROCS(0)
}

// Serial reports whether dispatches run inline on the calling goroutine.
func Serial() bool {
	return serialMode
}

// Strips returns the number of strips a grid of n indices divides into.
func Strips(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + ElemsPerStrip - 1) / ElemsPerStrip
}

// For runs body over disjoint contiguous sub-ranges that cover [0, n)
// exactly once. Small grids run inline on the calling goroutine; large ones
// are divided into strips pulled from a work queue by Workers() goroutines.
//
// The sub-ranges never overlap, so a body that writes only indices in
// [start, end) needs no synchronization. No ordering is guaranteed between
// strips. For n <= 0 the body is never called.
func For(n int, body func(start, end int)) {
	if n <= 0 {
		return
	}
	if serialMode || n < MinParallelElems {
		body(0, n)
		return
	}

	numStrips := Strips(n)
	numWorkers := Workers()
	if numWorkers > numStrips {
		numWorkers = numStrips
	}

	// Work queue of strips
	work := make(chan int, numStrips)
	for strip := range numStrips {
		work <- strip
	}
	close(work)

	// Workers grab strips from the queue until it drains
	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for strip := range work {
				start := strip * ElemsPerStrip
				end := min(start+ElemsPerStrip, n)
				body(start, end)
			}
		})
	}
	wg.Wait()
}

// Run executes k once per index of the binding's grid, writing
// Result[i] = k(i, A, B) for every i in [0, N).
//
// Each index is written exactly once and no unit touches another unit's
// index, so the dispatch needs no locks. A and B are never mutated. Run
// returns only after every index has been written.
func Run[T Floats](b Binding[T], k Kernel[T]) {
	a, bb, dst := b.A, b.B, b.Result
	For(b.N(), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = k(i, a, bb)
		}
	})
}
