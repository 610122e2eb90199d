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

// Package grid implements a data-parallel execution grid over an index
// range [0, N).
//
// A dispatch divides the range into disjoint contiguous strips and runs a
// body function once per strip across a pool of worker goroutines. Each
// index is covered exactly once, strips never overlap, and no ordering is
// guaranteed between strips, so kernels that write only their own index
// need no locks or atomics.
//
// Kernels bind three buffers in fixed positional order (A, B, Result) and
// compute one Result element per index. The per-index form is a pure
// function of (index, A, B); see Kernel and Run.
package grid

import "github.com/pkg/errors"

// Floats is the element type constraint for grid kernels.
type Floats interface {
	~float32 | ~float64
}

// Kernel computes the output value for a single index of the grid.
//
// A kernel must read only a[i] and b[i] (or other indices of a and b, which
// are shared read-only) and must not retain or mutate either slice. The
// dispatch writes the returned value to Result[i]; the kernel performs no
// other writes.
type Kernel[T Floats] func(i int, a, b []T) T

// Buffer binding positions, in the fixed order a dispatch expects.
const (
	SlotA      = 0
	SlotB      = 1
	SlotResult = 2
)

// Binding binds the three buffers of one dispatch: two read-only inputs and
// one write-only output, all of the same length N.
//
// The caller allocates all three buffers and populates A and B before
// dispatching. Result is written exactly once per index during Run and must
// not be read until the dispatch returns.
type Binding[T Floats] struct {
	A      []T
	B      []T
	Result []T
}

// Bind constructs a Binding in slot order.
func Bind[T Floats](a, b, result []T) Binding[T] {
	return Binding[T]{A: a, B: b, Result: result}
}

// Slot returns the buffer bound at the given position
// (SlotA, SlotB, or SlotResult).
func (b Binding[T]) Slot(slot int) []T {
	switch slot {
	case SlotA:
		return b.A
	case SlotB:
		return b.B
	case SlotResult:
		return b.Result
	}
	return nil
}

// N returns the grid size of the binding: the number of indices a dispatch
// covers. For a valid binding this is the common buffer length; for a
// mismatched one it is the minimum of the three lengths, so a dispatch
// stays in bounds regardless.
func (b Binding[T]) N() int {
	return min(len(b.A), min(len(b.B), len(b.Result)))
}

// Validate checks the equal-length invariant the kernels themselves assume
// but never verify. Hosts that assemble bindings from external input should
// call it before dispatching.
func (b Binding[T]) Validate() error {
	if len(b.A) != len(b.B) || len(b.A) != len(b.Result) {
		return errors.Errorf("grid: buffer lengths differ: A=%d B=%d Result=%d",
			len(b.A), len(b.B), len(b.Result))
	}
	return nil
}
