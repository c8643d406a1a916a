package model

import "encoding/json"

// JobKind names an ingestion job category.
type JobKind string

var (
	JobNewBlock      JobKind = "newBlock"
	JobMissingHeight JobKind = "missingHeight"
	JobDeleteBlock   JobKind = "deleteBlock"
	JobNewRound      JobKind = "newRound"
)

// NewBlockJob carries a raw block notification.
type NewBlockJob struct {
	Raw json.RawMessage
}

// NewRoundJob carries a round change notification.
type NewRoundJob struct {
	Raw json.RawMessage
}

// NodeInfo is the node status used for chain constants and catch-up bounds.
type NodeInfo struct {
	ChainID         string
	Height          uint64
	FinalizedHeight uint64
	GenesisHeight   uint64
}

// InitializationFees are the token module fees charged for creating new accounts.
type InitializationFees struct {
	UserAccount   string
	EscrowAccount string
}

// Generator is one entry of the node's generator list.
type Generator struct {
	Address           string
	NextAllocatedTime int64
}

// ModuleMetadata lists the commands and events a node module supports.
type ModuleMetadata struct {
	Name     string
	Commands []string
	Events   []string
}

// MainTokenID returns the id of the chain's native token: the chain id followed by a zero local id.
func (n NodeInfo) MainTokenID() string {
	return n.ChainID + "00000000"
}
