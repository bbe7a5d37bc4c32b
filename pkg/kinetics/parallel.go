package kinetics

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of samples handed to one goroutine.
const minChunk = 4096

// EvaluateParallel is Evaluate split across up to workers goroutines.
// workers <= 0 uses GOMAXPROCS. Samples are independent, so the result is
// identical to Evaluate. On cancellation no result is returned.
func EvaluateParallel(ctx context.Context, p KineticParameters, etas []float64, workers int) (*CurveResult, error) {
	if err := checkInput(p, etas); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := len(etas)
	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	res := newCurveResult(n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.fill(p, etas, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation after the last chunk started is still reported.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
