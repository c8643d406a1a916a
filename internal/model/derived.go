package model

// MultisigMemberType tells whether a multisignature member key is mandatory or optional.
type MultisigMemberType string

var (
	MultisigMandatory MultisigMemberType = "mandatory"
	MultisigOptional  MultisigMemberType = "optional"
)

// MultisigMember is one key of a registered multisignature group.
type MultisigMember struct {
	GroupAddress  string
	MemberAddress string
	PublicKey     string
	Type          MultisigMemberType
	Height        uint64
}

// Validator is a registered PoS validator.
type Validator struct {
	Address            string
	Name               string
	BLSKey             string
	GeneratorKey       string
	Commission         uint32
	RegistrationHeight uint64
}

// CommissionChange records a validator commission update.
type CommissionChange struct {
	ValidatorAddress string
	Height           uint64
	TxIndex          uint32
	TransactionID    string
	Commission       uint32
}

// StakeChange is one stake delta of a pos:stake transaction.
type StakeChange struct {
	TransactionID    string
	StakerAddress    string
	ValidatorAddress string
	Amount           string
	Height           uint64
}

// Stake is the current stake of a staker on a validator.
type Stake struct {
	StakerAddress    string
	ValidatorAddress string
	Amount           string
}

// StakeTotal is the aggregate of all stakes on a validator.
type StakeTotal struct {
	ValidatorAddress string
	TotalStake       string
}

// ChainStatus is the status of a cross-chain application.
type ChainStatus string

var (
	ChainRegistered ChainStatus = "registered"
	ChainActive     ChainStatus = "active"
	ChainTerminated ChainStatus = "terminated"
)

// BlockchainApp is the summary row of a chain known through interoperability transactions.
type BlockchainApp struct {
	ChainID               string
	Name                  string
	Status                ChainStatus
	LastCertificateHeight uint64
	LastUpdated           int64
	RegistrationHeight    uint64
}

// CCUAudit is the compact per cross-chain update record used to restore chain status on revert.
type CCUAudit struct {
	ChainID       string
	Height        uint64
	TxIndex       uint32
	TransactionID string
}
