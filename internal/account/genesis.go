package account

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

type genesisAssetsJSON struct {
	Assets []struct {
		Module string          `json:"module"`
		Data   json.RawMessage `json:"data"`
	} `json:"assets"`
}

type genesisTokenJSON struct {
	UserSubstore []struct {
		Address          string `json:"address"`
		TokenID          string `json:"tokenID"`
		AvailableBalance string `json:"availableBalance"`
		LockedBalances   []struct {
			Module string `json:"module"`
			Amount string `json:"amount"`
		} `json:"lockedBalances"`
	} `json:"userSubstore"`
}

type genesisAuthJSON struct {
	AuthDataSubstore []struct {
		Address     string `json:"address"`
		AuthAccount struct {
			Nonce string `json:"nonce"`
		} `json:"authAccount"`
	} `json:"authDataSubstore"`
}

// ImportGenesis seeds the accounts table from a genesis assets document. Balances of the
// chain's main token and auth nonces are merged per address and written through the direct
// update path. Nothing is imported once the table holds any account.
func (r *Refresher) ImportGenesis(ctx context.Context, src io.Reader) (int, error) {
	existing, err := repository.Accounts.Count(ctx, r.db, storage.All())
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		r.logger.Info("genesis import skipped", zap.Int64("accounts", existing))
		return 0, nil
	}

	constants, err := r.chain.Constants(ctx)
	if err != nil {
		return 0, err
	}
	rows, err := genesisAccounts(src, constants.MainTokenID, r.now().UTC())
	if err != nil {
		return 0, err
	}
	if err := r.UpdateDirect(ctx, rows...); err != nil {
		return 0, err
	}
	r.logger.Info("genesis accounts queued", zap.Int("accounts", len(rows)))
	return len(rows), nil
}

func genesisAccounts(src io.Reader, tokenID string, now time.Time) ([]model.Account, error) {
	var doc genesisAssetsJSON
	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode genesis assets: %w", err)
	}

	var order []string
	byAddress := make(map[string]*model.Account)
	get := func(address string) *model.Account {
		a, ok := byAddress[address]
		if !ok {
			a = &model.Account{
				Address:          address,
				Nonce:            "0",
				TokenID:          tokenID,
				AvailableBalance: "0",
				LockedBalance:    "0",
				UpdatedAt:        now,
			}
			byAddress[address] = a
			order = append(order, address)
		}
		return a
	}

	for _, asset := range doc.Assets {
		switch asset.Module {
		case "token":
			var data genesisTokenJSON
			if err := json.Unmarshal(asset.Data, &data); err != nil {
				return nil, fmt.Errorf("decode token assets: %w", err)
			}
			for _, u := range data.UserSubstore {
				if u.TokenID != tokenID {
					continue
				}
				total := new(big.Int)
				for _, l := range u.LockedBalances {
					v, ok := new(big.Int).SetString(l.Amount, 10)
					if !ok {
						return nil, fmt.Errorf("account %s locked balance: invalid amount %q", u.Address, l.Amount)
					}
					total.Add(total, v)
				}
				a := get(u.Address)
				a.AvailableBalance = u.AvailableBalance
				a.LockedBalance = total.String()
			}
		case "auth":
			var data genesisAuthJSON
			if err := json.Unmarshal(asset.Data, &data); err != nil {
				return nil, fmt.Errorf("decode auth assets: %w", err)
			}
			for _, d := range data.AuthDataSubstore {
				if d.AuthAccount.Nonce != "" {
					get(d.Address).Nonce = d.AuthAccount.Nonce
				}
			}
		}
	}

	rows := make([]model.Account, 0, len(order))
	for _, address := range order {
		rows = append(rows, *byAddress[address])
	}
	return rows, nil
}
