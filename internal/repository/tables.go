// Package repository binds the domain models to their relational tables.
package repository

import (
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

var Blocks = storage.NewTable(storage.Def{
	Name:       "blocks",
	PrimaryKey: []string{"height"},
	Columns: []string{
		"height", "id", "version", "timestamp", "previous_block_id", "generator_address", "state_root",
		"max_height_prevoted", "max_height_generated", "aggregate_height", "aggregation_bits",
		"certificate_signature", "number_of_transactions", "number_of_events", "is_final",
	},
}, func(b *model.BlockRow) []any {
	return []any{
		&b.Height, &b.ID, &b.Version, &b.Timestamp, &b.PreviousBlockID, &b.GeneratorAddress, &b.StateRoot,
		&b.MaxHeightPrevoted, &b.MaxHeightGenerated, &b.AggregateHeight, &b.AggregationBits,
		&b.CertificateSignature, &b.NumberOfTransactions, &b.NumberOfEvents, &b.IsFinal,
	}
})

var Transactions = storage.NewTable(storage.Def{
	Name:       "transactions",
	PrimaryKey: []string{"id"},
	Columns: []string{
		"id", "module", "command", "params", "sender_public_key", "sender_address", "nonce", "fee",
		"min_fee", "signatures", "height", "block_id", "tx_index", "execution_status", "timestamp",
	},
}, func(t *model.Transaction) []any {
	return []any{
		&t.ID, &t.Module, &t.Command, &t.Params, &t.SenderPublicKey, &t.SenderAddress, &t.Nonce, &t.Fee,
		&t.MinFee, &t.Signatures, &t.Height, &t.BlockID, &t.Index, &t.ExecutionStatus, &t.Timestamp,
	}
})

var Events = storage.NewTable(storage.Def{
	Name:       "events",
	PrimaryKey: []string{"block_id", "event_index"},
	Columns:    []string{"block_id", "event_index", "height", "module", "name", "data", "topics"},
}, func(e *model.Event) []any {
	return []any{&e.BlockID, &e.Index, &e.Height, &e.Module, &e.Name, &e.Data, &e.Topics}
})

var Accounts = storage.NewTable(storage.Def{
	Name:       "accounts",
	PrimaryKey: []string{"address"},
	Columns: []string{
		"address", "public_key", "nonce", "token_id", "available_balance", "locked_balance", "updated_at",
	},
}, func(a *model.Account) []any {
	return []any{&a.Address, &a.PublicKey, &a.Nonce, &a.TokenID, &a.AvailableBalance, &a.LockedBalance, &a.UpdatedAt}
})

var MultisigMembers = storage.NewTable(storage.Def{
	Name:       "multisignature_members",
	PrimaryKey: []string{"group_address", "public_key"},
	Columns:    []string{"group_address", "public_key", "member_address", "member_type", "height"},
}, func(m *model.MultisigMember) []any {
	return []any{&m.GroupAddress, &m.PublicKey, &m.MemberAddress, &m.Type, &m.Height}
})

var Validators = storage.NewTable(storage.Def{
	Name:       "validators",
	PrimaryKey: []string{"address"},
	Columns:    []string{"address", "name", "bls_key", "generator_key", "commission", "registration_height"},
}, func(v *model.Validator) []any {
	return []any{&v.Address, &v.Name, &v.BLSKey, &v.GeneratorKey, &v.Commission, &v.RegistrationHeight}
})

var CommissionChanges = storage.NewTable(storage.Def{
	Name:       "commission_changes",
	PrimaryKey: []string{"validator_address", "transaction_id"},
	Columns:    []string{"validator_address", "transaction_id", "height", "tx_index", "commission"},
}, func(c *model.CommissionChange) []any {
	return []any{&c.ValidatorAddress, &c.TransactionID, &c.Height, &c.TxIndex, &c.Commission}
})

var StakeChanges = storage.NewTable(storage.Def{
	Name:       "stake_changes",
	PrimaryKey: []string{"transaction_id", "validator_address"},
	Columns:    []string{"transaction_id", "validator_address", "staker_address", "amount", "height"},
}, func(c *model.StakeChange) []any {
	return []any{&c.TransactionID, &c.ValidatorAddress, &c.StakerAddress, &c.Amount, &c.Height}
})

var Stakes = storage.NewTable(storage.Def{
	Name:       "stakes",
	PrimaryKey: []string{"staker_address", "validator_address"},
	Columns:    []string{"staker_address", "validator_address", "amount"},
}, func(s *model.Stake) []any {
	return []any{&s.StakerAddress, &s.ValidatorAddress, &s.Amount}
})

var StakeTotals = storage.NewTable(storage.Def{
	Name:       "stake_totals",
	PrimaryKey: []string{"validator_address"},
	Columns:    []string{"validator_address", "total_stake"},
}, func(s *model.StakeTotal) []any {
	return []any{&s.ValidatorAddress, &s.TotalStake}
})

var BlockchainApps = storage.NewTable(storage.Def{
	Name:       "blockchain_apps",
	PrimaryKey: []string{"chain_id"},
	Columns: []string{
		"chain_id", "name", "status", "last_certificate_height", "last_updated", "registration_height",
	},
}, func(a *model.BlockchainApp) []any {
	return []any{&a.ChainID, &a.Name, &a.Status, &a.LastCertificateHeight, &a.LastUpdated, &a.RegistrationHeight}
})

var CCUAudits = storage.NewTable(storage.Def{
	Name:       "ccu_audits",
	PrimaryKey: []string{"chain_id", "transaction_id"},
	Columns:    []string{"chain_id", "transaction_id", "height", "tx_index"},
}, func(a *model.CCUAudit) []any {
	return []any{&a.ChainID, &a.TransactionID, &a.Height, &a.TxIndex}
})
