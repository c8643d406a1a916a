package node

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
)

type blockHeaderJSON struct {
	ID                 string `json:"id"`
	Version            uint32 `json:"version"`
	Timestamp          int64  `json:"timestamp"`
	Height             uint64 `json:"height"`
	PreviousBlockID    string `json:"previousBlockID"`
	GeneratorAddress   string `json:"generatorAddress"`
	StateRoot          string `json:"stateRoot"`
	MaxHeightPrevoted  uint64 `json:"maxHeightPrevoted"`
	MaxHeightGenerated uint64 `json:"maxHeightGenerated"`
	AggregateCommit    struct {
		Height               uint64 `json:"height"`
		AggregationBits      string `json:"aggregationBits"`
		CertificateSignature string `json:"certificateSignature"`
	} `json:"aggregateCommit"`
}

type transactionJSON struct {
	ID              string          `json:"id"`
	Module          string          `json:"module"`
	Command         string          `json:"command"`
	Nonce           string          `json:"nonce"`
	Fee             string          `json:"fee"`
	SenderPublicKey string          `json:"senderPublicKey"`
	Params          json.RawMessage `json:"params"`
	Signatures      []string        `json:"signatures"`
}

type blockJSON struct {
	Header       blockHeaderJSON   `json:"header"`
	Transactions []transactionJSON `json:"transactions"`
}

type eventJSON struct {
	Module string          `json:"module"`
	Name   string          `json:"name"`
	Data   json.RawMessage `json:"data"`
	Topics []string        `json:"topics"`
	Height uint64          `json:"height"`
	Index  uint32          `json:"index"`
}

type nodeInfoJSON struct {
	ChainID         string `json:"chainID"`
	Height          uint64 `json:"height"`
	FinalizedHeight uint64 `json:"finalizedHeight"`
	GenesisHeight   uint64 `json:"genesisHeight"`
}

type balancesJSON struct {
	Balances []struct {
		TokenID          string `json:"tokenID"`
		AvailableBalance string `json:"availableBalance"`
		LockedBalances   []struct {
			Module string `json:"module"`
			Amount string `json:"amount"`
		} `json:"lockedBalances"`
	} `json:"balances"`
}

type authAccountJSON struct {
	Nonce string `json:"nonce"`
}

type generatorsJSON struct {
	List []struct {
		Address           string `json:"address"`
		NextAllocatedTime int64  `json:"nextAllocatedTime"`
	} `json:"list"`
}

type metadataJSON struct {
	Modules []struct {
		Name     string `json:"name"`
		Commands []struct {
			Name string `json:"name"`
		} `json:"commands"`
		Events []struct {
			Name string `json:"name"`
		} `json:"events"`
	} `json:"modules"`
}

type initializationFeesJSON struct {
	UserAccount   string `json:"userAccount"`
	EscrowAccount string `json:"escrowAccount"`
}

type headerNotificationJSON struct {
	BlockHeader blockHeaderJSON `json:"blockHeader"`
}

func (h blockHeaderJSON) model() model.BlockHeader {
	return model.BlockHeader{
		ID:                 h.ID,
		Height:             h.Height,
		Version:            h.Version,
		Timestamp:          h.Timestamp,
		PreviousBlockID:    h.PreviousBlockID,
		GeneratorAddress:   h.GeneratorAddress,
		StateRoot:          h.StateRoot,
		MaxHeightPrevoted:  h.MaxHeightPrevoted,
		MaxHeightGenerated: h.MaxHeightGenerated,
		AggregateCommit: model.AggregateCommit{
			Height:               h.AggregateCommit.Height,
			AggregationBits:      h.AggregateCommit.AggregationBits,
			CertificateSignature: h.AggregateCommit.CertificateSignature,
		},
	}
}

// DecodeBlockHeader decodes the header carried by a chain_newBlock or chain_deleteBlock notification.
func DecodeBlockHeader(raw json.RawMessage) (model.BlockHeader, error) {
	var n headerNotificationJSON
	if err := json.Unmarshal(raw, &n); err != nil {
		return model.BlockHeader{}, fmt.Errorf("decode block header: %w", err)
	}
	if n.BlockHeader.ID == "" {
		return model.BlockHeader{}, fmt.Errorf("decode block header: missing id")
	}
	return n.BlockHeader.model(), nil
}

func sumAmounts(amounts ...string) (string, error) {
	total := new(big.Int)
	for _, a := range amounts {
		v, ok := new(big.Int).SetString(a, 10)
		if !ok {
			return "", fmt.Errorf("invalid amount %q", a)
		}
		total.Add(total, v)
	}
	return total.String(), nil
}
