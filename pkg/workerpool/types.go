package workerpool

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Handler processes one job payload. Errors wrapped by Permanent are not retried.
	Handler[T any] func(ctx context.Context, payload T) error

	Metrics interface {
		ObserveAttempt(err error, started time.Time)
		ObserveJob(err error)
		SetPending(n int64)
	}
)
