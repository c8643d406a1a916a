package processor

import (
	"context"
	"errors"
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

const (
	modulePoS                = "pos"
	commandRegisterValidator = "registerValidator"
	commandChangeCommission  = "changeCommission"
	commandStake             = "stake"

	// DefaultCommission is the commission of a newly registered validator, in hundredths of a percent.
	DefaultCommission uint32 = 10000
)

func posEntries() []Entry {
	return []Entry{
		entry(modulePoS, commandRegisterValidator, applyRegisterValidator, revertRegisterValidator),
		entry(modulePoS, commandChangeCommission, applyChangeCommission, revertChangeCommission),
		entry(modulePoS, commandStake, applyStake, revertStake),
	}
}

type registerValidatorParams struct {
	Name         string `json:"name"`
	BLSKey       string `json:"blsKey"`
	GeneratorKey string `json:"generatorKey"`
}

func applyRegisterValidator(ctx context.Context, env *Env, in Input) error {
	var p registerValidatorParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	// commission changes indexed before a re-applied registration stay in force
	commission := DefaultCommission
	change, found, err := repository.LatestCommissionChange(ctx, in.DB, in.Tx.SenderAddress)
	if err != nil {
		return err
	}
	if found {
		commission = change.Commission
	}

	v := model.Validator{
		Address:            in.Tx.SenderAddress,
		Name:               p.Name,
		BLSKey:             p.BLSKey,
		GeneratorKey:       p.GeneratorKey,
		Commission:         commission,
		RegistrationHeight: in.Header.Height,
	}
	_, err = repository.Validators.Upsert(ctx, in.DB, []model.Validator{v})
	return err
}

func revertRegisterValidator(ctx context.Context, _ *Env, in Input) error {
	_, err := repository.Validators.Delete(ctx, in.DB, storage.Where(
		storage.Eq("address", in.Tx.SenderAddress),
		storage.Eq("registration_height", in.Header.Height),
	))
	return err
}

type changeCommissionParams struct {
	NewCommission uint32 `json:"newCommission"`
}

func applyChangeCommission(ctx context.Context, _ *Env, in Input) error {
	var p changeCommissionParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	change := model.CommissionChange{
		ValidatorAddress: in.Tx.SenderAddress,
		TransactionID:    in.Tx.ID,
		Height:           in.Header.Height,
		TxIndex:          in.Tx.Index,
		Commission:       p.NewCommission,
	}
	if _, err := repository.CommissionChanges.Upsert(ctx, in.DB, []model.CommissionChange{change}); err != nil {
		return err
	}
	return setCommission(ctx, in.DB, in.Tx.SenderAddress, p.NewCommission)
}

func revertChangeCommission(ctx context.Context, _ *Env, in Input) error {
	validator := in.Tx.SenderAddress
	_, err := repository.CommissionChanges.Delete(ctx, in.DB, storage.Where(
		storage.Eq("validator_address", validator),
		storage.Eq("transaction_id", in.Tx.ID),
	))
	if err != nil {
		return err
	}

	commission := DefaultCommission
	prev, found, err := repository.LatestCommissionChangeBefore(ctx, in.DB, validator, in.Header.Height, in.Tx.Index)
	if err != nil {
		return err
	}
	if found {
		commission = prev.Commission
	}
	return setCommission(ctx, in.DB, validator, commission)
}

// setCommission updates a known validator. Validators registered before the indexed range
// have no row and are left alone.
func setCommission(ctx context.Context, ex storage.Executor, address string, commission uint32) error {
	v, err := repository.Validators.FindOne(ctx, ex, storage.Where(storage.Eq("address", address)))
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	v.Commission = commission
	_, err = repository.Validators.Upsert(ctx, ex, []model.Validator{v}, "commission")
	return err
}

type stakeParams struct {
	Stakes []struct {
		ValidatorAddress string `json:"validatorAddress"`
		Amount           string `json:"amount"`
	} `json:"stakes"`
}

func stakeChanges(in Input) ([]model.StakeChange, error) {
	var p stakeParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return nil, err
	}

	// a validator listed twice in one transaction is one change row with the summed amount
	byValidator := make(map[string]int)
	changes := make([]model.StakeChange, 0, len(p.Stakes))
	for _, s := range p.Stakes {
		amount, err := parseAmount(s.Amount)
		if err != nil {
			return nil, err
		}
		if i, ok := byValidator[s.ValidatorAddress]; ok {
			prev, _ := parseAmount(changes[i].Amount)
			changes[i].Amount = prev.Add(prev, amount).String()
			continue
		}
		byValidator[s.ValidatorAddress] = len(changes)
		changes = append(changes, model.StakeChange{
			TransactionID:    in.Tx.ID,
			StakerAddress:    in.Tx.SenderAddress,
			ValidatorAddress: s.ValidatorAddress,
			Amount:           amount.String(),
			Height:           in.Header.Height,
		})
	}
	return changes, nil
}

func applyStake(ctx context.Context, env *Env, in Input) error {
	changes, err := stakeChanges(in)
	if err != nil {
		return err
	}
	if _, err := repository.StakeChanges.Upsert(ctx, in.DB, changes); err != nil {
		return err
	}
	return recomputeStakes(ctx, env, in, changes)
}

func revertStake(ctx context.Context, env *Env, in Input) error {
	changes, err := stakeChanges(in)
	if err != nil {
		return err
	}
	if _, err := repository.StakeChanges.Delete(ctx, in.DB, storage.Where(storage.Eq("transaction_id", in.Tx.ID))); err != nil {
		return err
	}
	return recomputeStakes(ctx, env, in, changes)
}

// recomputeStakes derives the stake of the sender on every touched validator, and each
// validator's total, from the stored change rows. Zero aggregates are removed.
func recomputeStakes(ctx context.Context, env *Env, in Input, changes []model.StakeChange) error {
	for _, c := range changes {
		rows, err := repository.StakeChangesBetween(ctx, in.DB, c.StakerAddress, c.ValidatorAddress)
		if err != nil {
			return err
		}
		amounts := make([]string, len(rows))
		for i, r := range rows {
			amounts[i] = r.Amount
		}
		if err := putAggregate(amounts,
			func(sum string) error {
				_, err := repository.Stakes.Upsert(ctx, in.DB, []model.Stake{{
					StakerAddress:    c.StakerAddress,
					ValidatorAddress: c.ValidatorAddress,
					Amount:           sum,
				}})
				return err
			},
			func() error {
				_, err := repository.Stakes.Delete(ctx, in.DB, storage.Where(
					storage.Eq("staker_address", c.StakerAddress),
					storage.Eq("validator_address", c.ValidatorAddress),
				))
				return err
			},
		); err != nil {
			return err
		}

		stakes, err := repository.ValidatorStakes(ctx, in.DB, c.ValidatorAddress)
		if err != nil {
			return err
		}
		amounts = make([]string, len(stakes))
		for i, s := range stakes {
			amounts[i] = s.Amount
		}
		if err := putAggregate(amounts,
			func(sum string) error {
				_, err := repository.StakeTotals.Upsert(ctx, in.DB, []model.StakeTotal{{
					ValidatorAddress: c.ValidatorAddress,
					TotalStake:       sum,
				}})
				return err
			},
			func() error {
				_, err := repository.StakeTotals.Delete(ctx, in.DB, storage.Where(
					storage.Eq("validator_address", c.ValidatorAddress),
				))
				return err
			},
		); err != nil {
			return err
		}
	}
	env.Accounts.MarkAddress(in.Tx.SenderAddress)
	return nil
}

func putAggregate(amounts []string, upsert func(sum string) error, remove func() error) error {
	sum := new(big.Int)
	for _, a := range amounts {
		v, err := parseAmount(a)
		if err != nil {
			return err
		}
		sum.Add(sum, v)
	}
	if sum.Sign() == 0 {
		return remove()
	}
	return upsert(sum.String())
}
