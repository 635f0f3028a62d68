package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

type TokenFactoryQuery struct {
	Token *TokenQuery `json:"token,omitempty"`
}

type TokenQuery struct {
	// Given a subdenom created by the address `creator_addr` via `CreateDenom`,
	// returns the full denom as used by `BankMsg::Send`.
	FullDenom       *FullDenom       `json:"full_denom,omitempty"`
	Admin           *DenomAdmin      `json:"admin,omitempty"`
	Metadata        *GetMetadata     `json:"metadata,omitempty"`
	DenomsByCreator *DenomsByCreator `json:"denoms_by_creator,omitempty"`
	Params          *GetParams       `json:"params,omitempty"`
}

// TokenRequest is one of the TokenQuery variants.
type TokenRequest interface {
	tokenRequest()
}

// query types

type FullDenom struct {
	CreatorAddr string `json:"creator_addr"`
	Subdenom    string `json:"subdenom"`
}

type GetMetadata struct {
	Denom string `json:"denom"`
}

type DenomAdmin struct {
	Denom string `json:"denom"`
}

type DenomsByCreator struct {
	Creator string `json:"creator"`
}

type GetParams struct{}

func (*FullDenom) tokenRequest()       {}
func (*GetMetadata) tokenRequest()     {}
func (*DenomAdmin) tokenRequest()      {}
func (*DenomsByCreator) tokenRequest() {}
func (*GetParams) tokenRequest()       {}

// Request returns the single variant set on the query.
func (q TokenFactoryQuery) Request() (TokenRequest, error) {
	if q.Token == nil {
		return nil, sdkerrors.Wrap(tokenfactorytypes.ErrUnknownRequest, "nil token field")
	}

	var set []TokenRequest
	if q.Token.FullDenom != nil {
		set = append(set, q.Token.FullDenom)
	}
	if q.Token.Admin != nil {
		set = append(set, q.Token.Admin)
	}
	if q.Token.Metadata != nil {
		set = append(set, q.Token.Metadata)
	}
	if q.Token.DenomsByCreator != nil {
		set = append(set, q.Token.DenomsByCreator)
	}
	if q.Token.Params != nil {
		set = append(set, q.Token.Params)
	}

	if len(set) != 1 {
		return nil, sdkerrors.Wrapf(tokenfactorytypes.ErrUnknownRequest, "token query must set exactly one variant, got %d", len(set))
	}
	return set[0], nil
}

// responses

type FullDenomResponse struct {
	Denom string `json:"denom"`
}

type AdminResponse struct {
	Admin string `json:"admin"`
}

type MetadataResponse struct {
	Metadata *tokenfactorytypes.Metadata `json:"metadata,omitempty"`
}

type DenomsByCreatorResponse struct {
	Denoms []string `json:"denoms"`
}

type ParamsResponse struct {
	Params tokenfactorytypes.Params `json:"params"`
}
