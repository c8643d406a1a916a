package gateway

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/signal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Indexer interface {
		IndexNewBlock(ctx context.Context, block model.Block) error
		IndexHeight(ctx context.Context, height uint64) error
		ScheduleBlockDeletion(ctx context.Context, header model.BlockHeader) error
	}

	Node interface {
		GetBlockByID(ctx context.Context, id string) (model.Block, error)
	}

	// State is the in-memory chain state refreshed by the gateway.
	State interface {
		SetLastIndexedBlock(header model.BlockHeader)
		RewindLastIndexedBlock(deleted model.BlockHeader)
		ReloadGenerators(ctx context.Context) error
	}

	Emitter interface {
		Emit(s signal.Signal)
	}

	Metrics interface {
		ObserveNotification(topic string, accepted bool)
	}

	BlockQueue interface {
		Submit(ctx context.Context, key string, header model.BlockHeader) (bool, error)
	}

	HeightQueue interface {
		Submit(ctx context.Context, key string, height uint64) (bool, error)
	}

	RoundQueue interface {
		Submit(ctx context.Context, key string, round struct{}) (bool, error)
	}
)
