package keeper

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// CreateDenom creates factory/{creatorAddr}/{subdenom} with creatorAddr as its admin.
// Nothing is written unless every check passes.
func (k Keeper) CreateDenom(creatorAddr string, subdenom string, metadata *types.Metadata) (newTokenDenom string, err error) {
	denom, err := k.validateCreateDenom(creatorAddr, subdenom)
	if err != nil {
		return "", err
	}

	var denomMetadata *types.Metadata
	if metadata != nil {
		md, err := metadata.ForDenom(denom)
		if err != nil {
			return "", err
		}
		denomMetadata = &md
	}

	if err := k.createDenomAfterValidation(creatorAddr, denom, denomMetadata); err != nil {
		return "", err
	}

	config.Log.ZDebug().Str("denom", denom).Str("creator", creatorAddr).Msg("created denom")
	return denom, nil
}

// Runs CreateDenom logic after all denom validation has been handled.
// Made into a second function for genesis initialization.
func (k Keeper) createDenomAfterValidation(creatorAddr string, denom string, metadata *types.Metadata) error {
	authorityMetadata := types.DenomAuthorityMetadata{
		Admin: creatorAddr,
	}
	if err := k.setAuthorityMetadata(denom, authorityMetadata); err != nil {
		return err
	}

	k.addDenomFromCreator(creatorAddr, denom)

	if metadata != nil {
		return k.setDenomMetadata(denom, *metadata)
	}
	return nil
}

func (k Keeper) validateCreateDenom(creatorAddr string, subdenom string) (newTokenDenom string, err error) {
	denom, err := types.GetTokenDenom(creatorAddr, subdenom)
	if err != nil {
		return "", err
	}

	if k.hasAuthorityMetadata(denom) {
		return "", sdkerrors.Wrapf(types.ErrDenomExists, "denom: %s", denom)
	}

	return denom, nil
}
