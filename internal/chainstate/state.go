// Package chainstate holds chain level values shared by the indexer: constants loaded once
// from the node, the current generator list and the last indexed block.
package chainstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

// Constants are chain values that never change for a running node.
type Constants struct {
	ChainID            string
	GenesisHeight      uint64
	MainTokenID        string
	InitializationFees model.InitializationFees
	Modules            []model.ModuleMetadata
}

// HasCommand reports whether the node registers module:command.
func (c Constants) HasCommand(module, command string) bool {
	for _, m := range c.Modules {
		if m.Name != module {
			continue
		}
		for _, cmd := range m.Commands {
			if cmd == command {
				return true
			}
		}
	}
	return false
}

// State is safe for concurrent use.
type State struct {
	node          Node
	logger        *zap.Logger
	retryInterval time.Duration

	loadMu    sync.Mutex
	constants *Constants

	mu         sync.RWMutex
	generators []model.Generator
	last       model.BlockHeader
	hasLast    bool
}

// New constructs a State. Constants are loaded on first use.
func New(node Node, retryInterval time.Duration, logger *zap.Logger) *State {
	if retryInterval <= 0 {
		retryInterval = 5 * time.Second
	}
	return &State{
		node:          node,
		logger:        logger.Named("chainstate"),
		retryInterval: retryInterval,
	}
}

// Constants returns the chain constants, loading them from the node on first use and
// retrying until the node answers or ctx ends.
func (s *State) Constants(ctx context.Context) (Constants, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.constants != nil {
		return *s.constants, nil
	}

	backoff, err := retry.NewConstant(s.retryInterval)
	if err != nil {
		return Constants{}, fmt.Errorf("build backoff: %w", err)
	}

	var c Constants
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		loaded, err := s.load(ctx)
		if err != nil {
			s.logger.Warn("chain constants not loaded", zap.Error(err))
			return retry.RetryableError(err)
		}
		c = loaded
		return nil
	})
	if err != nil {
		return Constants{}, fmt.Errorf("load chain constants: %w", err)
	}

	s.constants = &c
	s.logger.Info("chain constants loaded",
		zap.String("chain_id", c.ChainID),
		zap.Uint64("genesis_height", c.GenesisHeight),
		zap.Int("modules", len(c.Modules)),
	)
	return c, nil
}

func (s *State) load(ctx context.Context) (Constants, error) {
	info, err := s.node.GetNodeInfo(ctx)
	if err != nil {
		return Constants{}, err
	}
	fees, err := s.node.GetInitializationFees(ctx)
	if err != nil {
		return Constants{}, err
	}
	modules, err := s.node.GetSystemMetadata(ctx)
	if err != nil {
		return Constants{}, err
	}
	return Constants{
		ChainID:            info.ChainID,
		GenesisHeight:      info.GenesisHeight,
		MainTokenID:        info.MainTokenID(),
		InitializationFees: fees,
		Modules:            modules,
	}, nil
}

// ReloadGenerators replaces the cached generator list with the node's.
func (s *State) ReloadGenerators(ctx context.Context) error {
	generators, err := s.node.GetGenerators(ctx)
	if err != nil {
		return fmt.Errorf("reload generators: %w", err)
	}

	s.mu.Lock()
	s.generators = generators
	s.mu.Unlock()
	return nil
}

// Generators returns the cached generator list.
func (s *State) Generators() []model.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Generator(nil), s.generators...)
}

// SetLastIndexedBlock records a newly indexed block.
func (s *State) SetLastIndexedBlock(header model.BlockHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasLast && header.Height < s.last.Height {
		return
	}
	s.last = header
	s.hasLast = true
}

// RewindLastIndexedBlock moves the last indexed block below a deleted block.
func (s *State) RewindLastIndexedBlock(deleted model.BlockHeader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasLast || s.last.Height < deleted.Height {
		return
	}
	if deleted.Height == 0 {
		s.last, s.hasLast = model.BlockHeader{}, false
		return
	}
	s.last = model.BlockHeader{ID: deleted.PreviousBlockID, Height: deleted.Height - 1}
}

// LastIndexedBlock returns the most recent indexed block, if any.
func (s *State) LastIndexedBlock() (model.BlockHeader, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.hasLast
}

// LoadLastIndexedBlock seeds the last indexed block from storage.
func (s *State) LoadLastIndexedBlock(ctx context.Context, ex storage.Executor) error {
	row, ok, err := repository.LastBlock(ctx, ex)
	if err != nil {
		return fmt.Errorf("load last indexed block: %w", err)
	}
	if ok {
		s.SetLastIndexedBlock(row.Header())
	}
	return nil
}
