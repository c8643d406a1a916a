package node

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/pkg/safe"
)

// AddressDeriver derives sender addresses from public keys.
type AddressDeriver interface {
	FromPublicKey(publicKey string) (string, error)
}

// Client exposes typed node endpoints with rate limiting and metrics instrumentation.
type Client struct {
	caller    Caller
	addresses AddressDeriver
	metrics   Metrics
	rl        ratelimit.Limiter
}

// NewClient constructs a Client issuing at most rps calls per second.
func NewClient(caller Caller, addresses AddressDeriver, metrics Metrics, rps int) *Client {
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Client{
		caller:    caller,
		addresses: addresses,
		metrics:   metrics,
		rl:        rl,
	}
}

func (c *Client) call(ctx context.Context, method string, params, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	c.rl.Take()
	if err = c.caller.Call(ctx, method, params, result); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// GetNodeInfo returns the node status.
func (c *Client) GetNodeInfo(ctx context.Context) (model.NodeInfo, error) {
	var res nodeInfoJSON
	if err := c.call(ctx, "system_getNodeInfo", nil, &res); err != nil {
		return model.NodeInfo{}, err
	}
	return model.NodeInfo{
		ChainID:         res.ChainID,
		Height:          res.Height,
		FinalizedHeight: res.FinalizedHeight,
		GenesisHeight:   res.GenesisHeight,
	}, nil
}

// GetBlockByHeight returns the block at height, without events.
func (c *Client) GetBlockByHeight(ctx context.Context, height uint64) (model.Block, error) {
	var res blockJSON
	if err := c.call(ctx, "chain_getBlockByHeight", map[string]uint64{"height": height}, &res); err != nil {
		return model.Block{}, err
	}
	return c.block(res)
}

// GetBlockByID returns the block with id, without events.
func (c *Client) GetBlockByID(ctx context.Context, id string) (model.Block, error) {
	var res blockJSON
	if err := c.call(ctx, "chain_getBlockByID", map[string]string{"id": id}, &res); err != nil {
		return model.Block{}, err
	}
	return c.block(res)
}

// GetEvents returns the events emitted at height.
func (c *Client) GetEvents(ctx context.Context, height uint64) ([]model.Event, error) {
	var res []eventJSON
	if err := c.call(ctx, "chain_getEvents", map[string]uint64{"height": height}, &res); err != nil {
		return nil, err
	}
	events := make([]model.Event, len(res))
	for i, e := range res {
		events[i] = model.Event{
			Module: e.Module,
			Name:   e.Name,
			Data:   e.Data,
			Topics: e.Topics,
			Height: e.Height,
			Index:  e.Index,
		}
	}
	return events, nil
}

// GetAccount returns the nonce and token balances of address.
func (c *Client) GetAccount(ctx context.Context, address string) (model.AccountState, error) {
	params := map[string]string{"address": address}

	var auth authAccountJSON
	if err := c.call(ctx, "auth_getAuthAccount", params, &auth); err != nil {
		return model.AccountState{}, err
	}
	var res balancesJSON
	if err := c.call(ctx, "token_getBalances", params, &res); err != nil {
		return model.AccountState{}, err
	}

	state := model.AccountState{Address: address, Nonce: auth.Nonce}
	for _, b := range res.Balances {
		amounts := make([]string, 0, len(b.LockedBalances))
		for _, l := range b.LockedBalances {
			amounts = append(amounts, l.Amount)
		}
		locked, err := sumAmounts(amounts...)
		if err != nil {
			return model.AccountState{}, fmt.Errorf("account %s locked balance: %w", address, err)
		}
		state.Balances = append(state.Balances, model.TokenBalance{
			TokenID:          b.TokenID,
			AvailableBalance: b.AvailableBalance,
			LockedBalance:    locked,
		})
	}
	return state, nil
}

// GetSystemMetadata returns the modules registered on the node.
func (c *Client) GetSystemMetadata(ctx context.Context) ([]model.ModuleMetadata, error) {
	var res metadataJSON
	if err := c.call(ctx, "system_getMetadata", nil, &res); err != nil {
		return nil, err
	}
	modules := make([]model.ModuleMetadata, len(res.Modules))
	for i, m := range res.Modules {
		modules[i].Name = m.Name
		for _, cmd := range m.Commands {
			modules[i].Commands = append(modules[i].Commands, cmd.Name)
		}
		for _, e := range m.Events {
			modules[i].Events = append(modules[i].Events, e.Name)
		}
	}
	return modules, nil
}

// GetGenerators returns the upcoming block generators.
func (c *Client) GetGenerators(ctx context.Context) ([]model.Generator, error) {
	var res generatorsJSON
	if err := c.call(ctx, "chain_getGeneratorList", nil, &res); err != nil {
		return nil, err
	}
	generators := make([]model.Generator, len(res.List))
	for i, g := range res.List {
		generators[i] = model.Generator{Address: g.Address, NextAllocatedTime: g.NextAllocatedTime}
	}
	return generators, nil
}

// GetInitializationFees returns the token module account initialization fees.
func (c *Client) GetInitializationFees(ctx context.Context) (model.InitializationFees, error) {
	var res initializationFeesJSON
	if err := c.call(ctx, "token_getInitializationFees", nil, &res); err != nil {
		return model.InitializationFees{}, err
	}
	return model.InitializationFees{UserAccount: res.UserAccount, EscrowAccount: res.EscrowAccount}, nil
}

func (c *Client) block(res blockJSON) (model.Block, error) {
	header := res.Header.model()
	block := model.Block{
		Header:       header,
		Transactions: make([]model.Transaction, len(res.Transactions)),
	}
	for i, tx := range res.Transactions {
		sender, err := c.addresses.FromPublicKey(tx.SenderPublicKey)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d tx %s sender: %w", header.Height, tx.ID, err)
		}
		index, err := safe.Uint32(i)
		if err != nil {
			return model.Block{}, fmt.Errorf("block %d tx %s index: %w", header.Height, tx.ID, err)
		}
		params := tx.Params
		if len(params) == 0 {
			params = json.RawMessage("{}")
		}
		block.Transactions[i] = model.Transaction{
			ID:              tx.ID,
			Module:          tx.Module,
			Command:         tx.Command,
			Params:          params,
			SenderPublicKey: tx.SenderPublicKey,
			SenderAddress:   sender,
			Nonce:           tx.Nonce,
			Fee:             tx.Fee,
			MinFee:          "0",
			Signatures:      tx.Signatures,
			Height:          header.Height,
			BlockID:         header.ID,
			Index:           index,
			ExecutionStatus: model.ExecutionPending,
			Timestamp:       header.Timestamp,
		}
	}
	return block, nil
}
