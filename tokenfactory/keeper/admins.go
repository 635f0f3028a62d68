package keeper

import (
	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// ChangeAdmin hands the denom over to newAdmin. An empty newAdmin leaves the denom without an admin.
func (k Keeper) ChangeAdmin(sender, denom, newAdmin string) error {
	denom, err := k.authorize(sender, denom)
	if err != nil {
		return err
	}

	if newAdmin != "" {
		if err := k.addresses.ValidateAddress(newAdmin); err != nil {
			return err
		}
	}

	if err := k.setAuthorityMetadata(denom, types.DenomAuthorityMetadata{Admin: newAdmin}); err != nil {
		return err
	}

	config.Log.ZDebug().Str("denom", denom).Str("old_admin", sender).Str("new_admin", newAdmin).Msg("changed denom admin")
	return nil
}

// SetMetadata replaces the metadata record of denom.
func (k Keeper) SetMetadata(sender, denom string, metadata types.Metadata) error {
	denom, err := k.authorize(sender, denom)
	if err != nil {
		return err
	}

	metadata, err = metadata.ForDenom(denom)
	if err != nil {
		return err
	}

	if err := k.setDenomMetadata(denom, metadata); err != nil {
		return err
	}

	config.Log.ZDebug().Str("denom", denom).Str("sender", sender).Msg("set denom metadata")
	return nil
}
