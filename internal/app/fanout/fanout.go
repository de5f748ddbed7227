// Package fanout runs a function across a slice of items with bounded
// concurrency. The session store uses it to tear down open drafts in
// parallel on shutdown.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Each calls fn for every item using at most maxWorkers goroutines and
// returns the failures joined in input order. A maxWorkers below 1 is
// treated as 1.
//
// An item still waiting for a worker when ctx ends is not passed to fn; its
// failure is ctx.Err(). Calls already running are left to observe ctx
// themselves. Each blocks until every started call returns.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}
	maxWorkers = max(maxWorkers, 1)

	errs := make([]error, len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			errs[i] = fn(ctx, item)
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Wait runs a blocking wait function and returns when it finishes or ctx
// ends, whichever comes first. On ctx expiry the wait keeps running in the
// background and ctx.Err() is returned.
func Wait(ctx context.Context, wait func()) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wait()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
