package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// DenomReader is the read-only view of the registry handed to the Querier.
type DenomReader interface {
	GetAuthorityMetadata(denom string) (types.DenomAuthorityMetadata, error)
	GetDenomMetadata(denom string) (types.Metadata, bool, error)
	GetDenomsFromCreator(creator string) []string
}

var _ DenomReader = Keeper{}

type Querier struct {
	reader DenomReader
}

func NewQuerier(reader DenomReader) Querier {
	return Querier{reader: reader}
}

// FullDenom builds the denom of (creator, subdenom) without checking that it exists.
func (q Querier) FullDenom(creator, subdenom string) (string, error) {
	return types.GetTokenDenom(creator, subdenom)
}

// Metadata returns nil when no metadata was ever set for denom.
func (q Querier) Metadata(denom string) (*types.Metadata, error) {
	denom, err := types.ValidateFullDenom(denom, q.FullDenom)
	if err != nil {
		return nil, err
	}

	metadata, found, err := q.reader.GetDenomMetadata(denom)
	if err != nil || !found {
		return nil, err
	}
	return &metadata, nil
}

func (q Querier) Admin(denom string) (string, error) {
	denom, err := types.ValidateFullDenom(denom, q.FullDenom)
	if err != nil {
		return "", err
	}

	authorityMetadata, err := q.reader.GetAuthorityMetadata(denom)
	if err != nil {
		return "", err
	}
	return authorityMetadata.Admin, nil
}

func (q Querier) DenomsByCreator(creator string) []string {
	return q.reader.GetDenomsFromCreator(creator)
}

func (q Querier) Params() (types.Params, error) {
	return types.Params{}, sdkerrors.Wrap(types.ErrUnimplemented, "denom creation fee params are not modeled")
}
