package processor

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/chainstate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DirtyMarker records accounts whose state must be refreshed from the node.
	DirtyMarker interface {
		MarkAddress(address string)
		MarkPublicKey(publicKey string)
	}

	Chain interface {
		Constants(ctx context.Context) (chainstate.Constants, error)
	}

	AddressDeriver interface {
		FromPublicKey(publicKey string) (string, error)
	}
)
