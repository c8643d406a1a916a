package account

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Node interface {
		GetAccount(ctx context.Context, address string) (model.AccountState, error)
	}

	Chain interface {
		Constants(ctx context.Context) (chainstate.Constants, error)
	}

	AddressDeriver interface {
		FromPublicKey(publicKey string) (string, error)
	}

	Metrics interface {
		ObserveRefresh(kind string, err error, started time.Time)
		SetDirty(kind string, n int)
		ObserveDirect(err error, rows int)
	}

	// Queue accepts one refresh job per identifier.
	Queue interface {
		Submit(ctx context.Context, key string, payload string) (bool, error)
	}
)
