package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForContext is For with cancellation between strips. A strip that has
// started always runs to completion; cancellation takes effect before the
// next strip is claimed. The first body error cancels the remaining strips
// and is returned.
//
// After an error or cancellation the output covered by completed strips is
// valid and the rest is undefined, so callers should treat the whole
// dispatch as not completed.
func ForContext(ctx context.Context, n int, body func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	numStrips := Strips(n)

	if serialMode || n < MinParallelElems {
		for strip := range numStrips {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := strip * ElemsPerStrip
			end := min(start+ElemsPerStrip, n)
			if err := body(start, end); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers())
	for strip := range numStrips {
		start := strip * ElemsPerStrip
		end := min(start+ElemsPerStrip, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return body(start, end)
		})
	}
	return g.Wait()
}

// RunContext is Run with cancellation between strips; see ForContext for
// the completion semantics.
func RunContext[T Floats](ctx context.Context, b Binding[T], k Kernel[T]) error {
	a, bb, dst := b.A, b.B, b.Result
	return ForContext(ctx, b.N(), func(start, end int) error {
		for i := start; i < end; i++ {
			dst[i] = k(i, a, bb)
		}
		return nil
	})
}
