package model

import "encoding/json"

// ExecutionStatus is the outcome of a transaction's command execution.
type ExecutionStatus string

var (
	// ExecutionPending marks a transaction without an execution result event.
	ExecutionPending ExecutionStatus = "pending"
	// ExecutionSuccess marks a transaction whose command executed successfully.
	ExecutionSuccess ExecutionStatus = "success"
	// ExecutionFail marks a transaction whose command failed.
	ExecutionFail ExecutionStatus = "fail"
)

// Transaction is a block transaction. The same struct is persisted as the generic transaction row.
type Transaction struct {
	ID              string
	Module          string
	Command         string
	Params          json.RawMessage
	SenderPublicKey string
	SenderAddress   string
	Nonce           string
	Fee             string
	MinFee          string
	Signatures      []string
	Height          uint64
	BlockID         string
	Index           uint32
	ExecutionStatus ExecutionStatus
	Timestamp       int64
}

// ModuleCommand returns the "module:command" identifier of the transaction.
func (t Transaction) ModuleCommand() string {
	return t.Module + ":" + t.Command
}
