package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// InitGenesis installs every denom of genState. It fails on the first invalid or duplicate denom.
func (k Keeper) InitGenesis(genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	for _, genDenom := range genState.FactoryDenoms {
		if k.hasAuthorityMetadata(genDenom.Denom) {
			return sdkerrors.Wrapf(types.ErrDenomExists, "denom: %s", genDenom.Denom)
		}
	}

	for _, genDenom := range genState.FactoryDenoms {
		creator, _, err := types.DeconstructDenom(genDenom.Denom)
		if err != nil {
			return err
		}

		var metadata *types.Metadata
		if genDenom.Metadata != nil {
			md, err := genDenom.Metadata.ForDenom(genDenom.Denom)
			if err != nil {
				return err
			}
			metadata = &md
		}

		if err := k.createDenomAfterValidation(creator, genDenom.Denom, metadata); err != nil {
			return err
		}
		if err := k.setAuthorityMetadata(genDenom.Denom, genDenom.AuthorityMetadata); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the registry content.
func (k Keeper) ExportGenesis() (*types.GenesisState, error) {
	genDenoms := []types.GenesisDenom{}

	for _, denom := range k.GetAllDenoms() {
		authorityMetadata, err := k.GetAuthorityMetadata(denom)
		if err != nil {
			return nil, err
		}

		genDenom := types.GenesisDenom{
			Denom:             denom,
			AuthorityMetadata: authorityMetadata,
		}

		metadata, found, err := k.GetDenomMetadata(denom)
		if err != nil {
			return nil, err
		}
		if found {
			genDenom.Metadata = &metadata
		}

		genDenoms = append(genDenoms, genDenom)
	}

	return &types.GenesisState{FactoryDenoms: genDenoms}, nil
}
