package processor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage/memory"
)

type harness struct {
	store     *memory.Store
	registry  *Registry
	accounts  *MockDirtyMarker
	chain     *MockChain
	addresses *MockAddressDeriver
	env       *Env
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	registry, err := Default()
	require.NoError(t, err)

	h := &harness{
		store:     memory.New(),
		registry:  registry,
		accounts:  NewMockDirtyMarker(ctrl),
		chain:     NewMockChain(ctrl),
		addresses: NewMockAddressDeriver(ctrl),
	}
	h.env = &Env{
		Accounts:  h.accounts,
		Chain:     h.chain,
		Addresses: h.addresses,
		Logger:    zap.NewNop(),
	}
	return h
}

// anyMarks accepts dirty marks the test does not assert on.
func (h *harness) anyMarks() {
	h.accounts.EXPECT().MarkAddress(gomock.Any()).AnyTimes()
	h.accounts.EXPECT().MarkPublicKey(gomock.Any()).AnyTimes()
}

func (h *harness) apply(t *testing.T, header model.BlockHeader, tx *model.Transaction, events ...model.Event) error {
	t.Helper()
	return h.run(t, true, header, tx, events)
}

func (h *harness) revert(t *testing.T, header model.BlockHeader, tx *model.Transaction, events ...model.Event) error {
	t.Helper()
	return h.run(t, false, header, tx, events)
}

func (h *harness) run(t *testing.T, apply bool, header model.BlockHeader, tx *model.Transaction, events []model.Event) error {
	t.Helper()
	handler, ok := h.registry.Lookup(tx.Module, tx.Command)
	require.True(t, ok, "no handler for %s", tx.ModuleCommand())

	fn := handler.Revert
	if apply {
		fn = handler.Apply
	}
	return h.store.WithTransaction(context.Background(), func(ctx context.Context, db storage.Executor) error {
		return fn(ctx, h.env, Input{Header: header, Tx: tx, Events: events, DB: db})
	})
}

func header(height uint64) model.BlockHeader {
	return model.BlockHeader{
		ID:        "block-" + string(rune('a'+height%26)),
		Height:    height,
		Timestamp: int64(1700000000 + height*10),
	}
}

func newTx(t *testing.T, id, module, command, sender string, params any) *model.Transaction {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return &model.Transaction{
		ID:              id,
		Module:          module,
		Command:         command,
		Params:          raw,
		SenderAddress:   sender,
		MinFee:          "0",
		ExecutionStatus: model.ExecutionSuccess,
	}
}

func rows[T any](t *testing.T, h *harness, table storage.Table[T]) []T {
	t.Helper()
	out, err := table.Find(context.Background(), h.store, storage.All())
	require.NoError(t, err)
	return out
}
