package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/processor"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Node interface {
		GetNodeInfo(ctx context.Context) (model.NodeInfo, error)
		GetBlockByHeight(ctx context.Context, height uint64) (model.Block, error)
		GetEvents(ctx context.Context, height uint64) ([]model.Event, error)
	}

	Handlers interface {
		Lookup(module, command string) (processor.Handler, bool)
	}

	Chain interface {
		Constants(ctx context.Context) (chainstate.Constants, error)
	}

	Metrics interface {
		ObserveApply(err error, height uint64, transactions int, started time.Time)
		ObserveRevert(err error, started time.Time)
		ObserveMissing(heights int)
		ObserveReorg()
	}

	// HeightQueue accepts missingHeight jobs.
	HeightQueue interface {
		Submit(ctx context.Context, key string, height uint64) (bool, error)
	}

	// DeleteQueue accepts deleteBlock jobs.
	DeleteQueue interface {
		Submit(ctx context.Context, key string, header model.BlockHeader) (bool, error)
	}

	// Finality receives the node's finalized height.
	Finality interface {
		SetFinalizedHeight(height uint64)
	}
)
