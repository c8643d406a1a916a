package processor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	moduleToken                = "token"
	eventInitializeUserAccount = "initializeUserAccount"
	commandTransfer            = "transfer"
	commandTransferCrossChain  = "transferCrossChain"
)

func tokenEntries() []Entry {
	return []Entry{
		entry(moduleToken, commandTransfer, applyTransfer, revertTransfer),
		entry(moduleToken, commandTransferCrossChain, markSender, markSender),
	}
}

type transferParams struct {
	TokenID          string `json:"tokenID"`
	Amount           string `json:"amount"`
	RecipientAddress string `json:"recipientAddress"`
	Data             string `json:"data"`
}

func applyTransfer(ctx context.Context, env *Env, in Input) error {
	var p transferParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	env.Accounts.MarkAddress(p.RecipientAddress)

	initialized := false
	for _, e := range in.Events {
		if e.Module == moduleToken && e.Name == eventInitializeUserAccount && e.HasTopic(p.RecipientAddress) {
			initialized = true
			break
		}
	}
	if !initialized {
		return nil
	}

	constants, err := env.Chain.Constants(ctx)
	if err != nil {
		return err
	}
	minFee, err := addAmounts(in.Tx.MinFee, constants.InitializationFees.UserAccount)
	if err != nil {
		return fmt.Errorf("tx %s min fee: %w", in.Tx.ID, err)
	}
	env.Logger.Debug("recipient account initialized",
		zap.String("tx_id", in.Tx.ID),
		zap.String("recipient", p.RecipientAddress),
	)
	in.Tx.MinFee = minFee
	return nil
}

func revertTransfer(_ context.Context, env *Env, in Input) error {
	var p transferParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	env.Accounts.MarkAddress(p.RecipientAddress)
	return nil
}

func markSender(_ context.Context, env *Env, in Input) error {
	env.Accounts.MarkAddress(in.Tx.SenderAddress)
	return nil
}
