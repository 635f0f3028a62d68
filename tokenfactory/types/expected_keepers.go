package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the ledger the registry delegates balance changes to.
// Errors it returns are passed back to the caller unchanged.
type BankKeeper interface {
	MintCoins(recipient string, amount sdk.Coin) error
	BurnCoins(from string, amount sdk.Coin) error
	SendCoins(from, to string, amount sdk.Coin) error
}

// AddressValidator reports whether a string is a syntactically valid identity.
type AddressValidator interface {
	ValidateAddress(addr string) error
}
