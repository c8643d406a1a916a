package chainstate

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Node interface {
	GetNodeInfo(ctx context.Context) (model.NodeInfo, error)
	GetGenerators(ctx context.Context) ([]model.Generator, error)
	GetInitializationFees(ctx context.Context) (model.InitializationFees, error)
	GetSystemMetadata(ctx context.Context) ([]model.ModuleMetadata, error)
}
