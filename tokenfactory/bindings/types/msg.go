package types

import (
	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

type TokenFactoryMsg struct {
	Token *TokenMsg `json:"token,omitempty"`
}

type TokenMsg struct {
	// Contracts can create denoms, namespaced under the contract's address.
	// A contract may create any number of independent sub-denoms.
	CreateDenom *CreateDenom `json:"create_denom,omitempty"`
	// Contracts can change the admin of a denom that they are the admin of.
	ChangeAdmin *ChangeAdmin `json:"change_admin,omitempty"`
	// Contracts can mint native tokens for an existing factory denom
	// that they are the admin of.
	MintTokens *MintTokens `json:"mint_tokens,omitempty"`
	// Contracts can burn native tokens for an existing factory denom
	// that they are the admin of.
	// Currently, the burn from address must be the admin contract.
	BurnTokens *BurnTokens `json:"burn_tokens,omitempty"`
	// Sets the metadata on a denom which the contract controls
	SetMetadata *SetMetadata `json:"set_metadata,omitempty"`
	// Forces a transfer of tokens from one address to another.
	ForceTransfer *ForceTransfer `json:"force_transfer,omitempty"`
}

// TokenCommand is one of the TokenMsg variants. The set is closed: only the types
// in this file implement it.
type TokenCommand interface {
	tokenCommand()
}

// CreateDenom creates a new factory denom, of denomination:
// factory/{creating contract address}/{Subdenom}
// Subdenom can be of length at most 44 characters.
// The (creating contract address, subdenom) pair must be unique.
// The created denom's admin is the creating contract address,
// but this admin can be changed using the ChangeAdmin binding.
type CreateDenom struct {
	Subdenom string                      `json:"subdenom"`
	Metadata *tokenfactorytypes.Metadata `json:"metadata,omitempty"`
}

// ChangeAdmin changes the admin for a factory denom.
// If the NewAdminAddress is empty, the denom has no admin.
type ChangeAdmin struct {
	Denom           string `json:"denom"`
	NewAdminAddress string `json:"new_admin_address"`
}

type MintTokens struct {
	Denom         string      `json:"denom"`
	Amount        sdkmath.Int `json:"amount"`
	MintToAddress string      `json:"mint_to_address"`
}

type BurnTokens struct {
	Denom           string      `json:"denom"`
	Amount          sdkmath.Int `json:"amount"`
	BurnFromAddress string      `json:"burn_from_address"`
}

type SetMetadata struct {
	Denom    string                     `json:"denom"`
	Metadata tokenfactorytypes.Metadata `json:"metadata"`
}

type ForceTransfer struct {
	Denom       string      `json:"denom"`
	Amount      sdkmath.Int `json:"amount"`
	FromAddress string      `json:"from_address"`
	ToAddress   string      `json:"to_address"`
}

func (*CreateDenom) tokenCommand()   {}
func (*ChangeAdmin) tokenCommand()   {}
func (*MintTokens) tokenCommand()    {}
func (*BurnTokens) tokenCommand()    {}
func (*SetMetadata) tokenCommand()   {}
func (*ForceTransfer) tokenCommand() {}

// Command returns the single variant set on the message.
func (m TokenFactoryMsg) Command() (TokenCommand, error) {
	if m.Token == nil {
		return nil, sdkerrors.Wrap(tokenfactorytypes.ErrUnknownRequest, "nil token field")
	}

	var set []TokenCommand
	if m.Token.CreateDenom != nil {
		set = append(set, m.Token.CreateDenom)
	}
	if m.Token.ChangeAdmin != nil {
		set = append(set, m.Token.ChangeAdmin)
	}
	if m.Token.MintTokens != nil {
		set = append(set, m.Token.MintTokens)
	}
	if m.Token.BurnTokens != nil {
		set = append(set, m.Token.BurnTokens)
	}
	if m.Token.SetMetadata != nil {
		set = append(set, m.Token.SetMetadata)
	}
	if m.Token.ForceTransfer != nil {
		set = append(set, m.Token.ForceTransfer)
	}

	if len(set) != 1 {
		return nil, sdkerrors.Wrapf(tokenfactorytypes.ErrUnknownRequest, "token msg must set exactly one variant, got %d", len(set))
	}
	return set[0], nil
}
