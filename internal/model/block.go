// Package model defines domain models for the Lisk chain index.
package model

// BlockHeader identifies a block and carries the fields handlers may read.
type BlockHeader struct {
	ID                 string
	Height             uint64
	Version            uint32
	Timestamp          int64
	PreviousBlockID    string
	GeneratorAddress   string
	StateRoot          string
	MaxHeightPrevoted  uint64
	MaxHeightGenerated uint64
	AggregateCommit    AggregateCommit
}

// AggregateCommit is the certificate aggregate carried by a block header.
type AggregateCommit struct {
	Height               uint64
	AggregationBits      string
	CertificateSignature string
}

// Block is a block as received from the node, with its transactions in block order.
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
	Events       []Event
}

// BlockRow is the persisted form of a block.
type BlockRow struct {
	Height               uint64
	ID                   string
	Version              uint32
	Timestamp            int64
	PreviousBlockID      string
	GeneratorAddress     string
	StateRoot            string
	MaxHeightPrevoted    uint64
	MaxHeightGenerated   uint64
	AggregateHeight      uint64
	AggregationBits      string
	CertificateSignature string
	NumberOfTransactions uint32
	NumberOfEvents       uint32
	IsFinal              bool
}

// Row converts a block into its persisted form.
func (b Block) Row(isFinal bool) BlockRow {
	h := b.Header
	return BlockRow{
		Height:               h.Height,
		ID:                   h.ID,
		Version:              h.Version,
		Timestamp:            h.Timestamp,
		PreviousBlockID:      h.PreviousBlockID,
		GeneratorAddress:     h.GeneratorAddress,
		StateRoot:            h.StateRoot,
		MaxHeightPrevoted:    h.MaxHeightPrevoted,
		MaxHeightGenerated:   h.MaxHeightGenerated,
		AggregateHeight:      h.AggregateCommit.Height,
		AggregationBits:      h.AggregateCommit.AggregationBits,
		CertificateSignature: h.AggregateCommit.CertificateSignature,
		NumberOfTransactions: uint32(len(b.Transactions)),
		NumberOfEvents:       uint32(len(b.Events)),
		IsFinal:              isFinal,
	}
}

// Header restores the header of a persisted block.
func (r BlockRow) Header() BlockHeader {
	return BlockHeader{
		ID:                 r.ID,
		Height:             r.Height,
		Version:            r.Version,
		Timestamp:          r.Timestamp,
		PreviousBlockID:    r.PreviousBlockID,
		GeneratorAddress:   r.GeneratorAddress,
		StateRoot:          r.StateRoot,
		MaxHeightPrevoted:  r.MaxHeightPrevoted,
		MaxHeightGenerated: r.MaxHeightGenerated,
		AggregateCommit: AggregateCommit{
			Height:               r.AggregateHeight,
			AggregationBits:      r.AggregationBits,
			CertificateSignature: r.CertificateSignature,
		},
	}
}
