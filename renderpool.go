package cookbook

import (
	"context"
	"runtime"
	"sync"
)

// Render worker sizing constants.
const (
	// MinRenderWorkers ensures at least one worker is available.
	MinRenderWorkers = 1

	// MaxRenderWorkers caps concurrent cook subprocesses.
	MaxRenderWorkers = 8

	// cpuDivisor leaves headroom for the subprocesses themselves.
	cpuDivisor = 2
)

// ResolveWorkers determines how many recipes render concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinRenderWorkers {
		return MinRenderWorkers
	}
	if n > MaxRenderWorkers {
		return MaxRenderWorkers
	}
	return n
}

// renderResult holds the rendering of one recipe.
type renderResult struct {
	out string
	err error
}

// renderAll renders every recipe through fn with at most workers running
// concurrently. Results come back in input order; per-recipe failures are
// recorded, not propagated, so one broken recipe never blocks the rest.
func renderAll(ctx context.Context, workers int, recipes []string, fn func(ctx context.Context, path string) (string, error)) []renderResult {
	results := make([]renderResult, len(recipes))
	sem := make(chan struct{}, ResolveWorkers(workers))

	var wg sync.WaitGroup
	for i, path := range recipes {
		if err := ctx.Err(); err != nil {
			results[i] = renderResult{err: err}
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			out, err := fn(ctx, path)
			results[i] = renderResult{out: out, err: err}
		}(i, path)
	}
	wg.Wait()

	return results
}
