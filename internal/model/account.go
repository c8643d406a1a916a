package model

import "time"

// Account is the secondary, eventually consistent account state refreshed from the node.
type Account struct {
	Address          string
	PublicKey        string
	Nonce            string
	TokenID          string
	AvailableBalance string
	LockedBalance    string
	UpdatedAt        time.Time
}

// AccountState is the node's view of an account.
type AccountState struct {
	Address   string
	PublicKey string
	Nonce     string
	Balances  []TokenBalance
}

// TokenBalance is an account balance for one token.
type TokenBalance struct {
	TokenID          string
	AvailableBalance string
	LockedBalance    string
}

// Balance returns the balance for tokenID, or a zero balance when the account holds none.
func (s AccountState) Balance(tokenID string) TokenBalance {
	for _, b := range s.Balances {
		if b.TokenID == tokenID {
			return b
		}
	}
	return TokenBalance{TokenID: tokenID, AvailableBalance: "0", LockedBalance: "0"}
}

// IdentifierKind is the kind of identifier an account refresh is keyed by.
type IdentifierKind string

var (
	// ByAddress refreshes an account by its lisk32 address.
	ByAddress IdentifierKind = "address"
	// ByPublicKey refreshes an account by its hex encoded public key.
	ByPublicKey IdentifierKind = "public_key"
)
