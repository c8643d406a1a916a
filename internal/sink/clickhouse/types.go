package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/signal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Conn is the part of a ClickHouse connection the sink writes through.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Exec(ctx context.Context, query string, args ...any) error
		Close() error
	}

	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	Signals interface {
		Subscribe(size int, names ...signal.Name) *signal.Subscription
		Unsubscribe(sub *signal.Subscription)
	}
)
