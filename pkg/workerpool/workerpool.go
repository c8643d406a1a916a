// Package workerpool provides concurrent processing utilities: a one-shot Process helper and a
// persistent retrying job Pool.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process calls fn for every item with at most workers calls in flight. The first error
// cancels the remaining calls and is returned.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return fn(gctx, item)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
