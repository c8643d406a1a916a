// Package clock holds context aware waiting helpers shared by the periodic workers.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d. It returns the context error when ctx ends first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	return wait(ctx, t)
}

// Repeat calls fn right away and then once every d until ctx ends, and returns the context
// error. Errors from fn go to onError, which may be nil, and never stop the loop.
func Repeat(ctx context.Context, d time.Duration, fn func(context.Context) error, onError func(error)) error {
	t := time.NewTimer(0)
	defer t.Stop()

	for {
		if err := wait(ctx, t); err != nil {
			return err
		}
		err := fn(ctx)
		if err != nil && onError != nil && ctx.Err() == nil {
			onError(err)
		}
		t.Reset(d)
	}
}

func wait(ctx context.Context, t *time.Timer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
