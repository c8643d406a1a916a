// Package processor maps module:command transaction types to the handlers that apply and
// revert their derived state.
package processor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

var (
	// ErrDuplicateHandler is returned when two handlers claim the same module:command.
	ErrDuplicateHandler = errors.New("duplicate transaction handler")
	// ErrInvalidParams is returned when transaction params cannot be decoded.
	ErrInvalidParams = errors.New("invalid transaction params")
)

// Key identifies a transaction type.
type Key struct {
	Module  string
	Command string
}

func (k Key) String() string {
	return k.Module + ":" + k.Command
}

// Input is what a handler sees of one transaction. Tx points at the row about to be
// written, so Apply may adjust derived columns such as MinFee. DB is the executor of
// the enclosing block transaction.
type Input struct {
	Header model.BlockHeader
	Tx     *model.Transaction
	Events []model.Event
	DB     storage.Executor
}

// Env carries the collaborators shared by all handlers.
type Env struct {
	Accounts  DirtyMarker
	Chain     Chain
	Addresses AddressDeriver
	Logger    *zap.Logger
}

// Func applies or reverts one transaction.
type Func func(ctx context.Context, env *Env, in Input) error

// Handler pairs the forward and inverse effect of a transaction type. Apply must be
// idempotent under upsert, and Revert must restore the state Apply found, using only its
// input and committed rows.
type Handler struct {
	Apply  Func
	Revert Func
}

// Entry registers a handler under a key.
type Entry struct {
	Key     Key
	Handler Handler
}

func entry(module, command string, apply, revert Func) Entry {
	return Entry{Key: Key{Module: module, Command: command}, Handler: Handler{Apply: apply, Revert: revert}}
}

func noop(context.Context, *Env, Input) error {
	return nil
}
