// Package node is a read-only JSON-RPC client for a Lisk node over websocket.
package node

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller performs one JSON-RPC call and decodes the result into result.
	Caller interface {
		Call(ctx context.Context, method string, params, result any) error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveReconnect(err error)
	}
)
