package processor

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
)

func decodeParams(tx *model.Transaction, v any) error {
	if err := json.Unmarshal(tx.Params, v); err != nil {
		return fmt.Errorf("%w: %s tx %s: %v", ErrInvalidParams, tx.ModuleCommand(), tx.ID, err)
	}
	return nil
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q", ErrInvalidParams, s)
	}
	return v, nil
}

func addAmounts(a, b string) (string, error) {
	x, err := parseAmount(a)
	if err != nil {
		return "", err
	}
	y, err := parseAmount(b)
	if err != nil {
		return "", err
	}
	return x.Add(x, y).String(), nil
}

func findEvent(events []model.Event, module, name string) (model.Event, bool) {
	for _, e := range events {
		if e.Module == module && e.Name == name {
			return e, true
		}
	}
	return model.Event{}, false
}
