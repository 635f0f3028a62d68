package keeper

import (
	"encoding/binary"
	"encoding/json"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// Keeper owns the registry mappings: admin by denom, metadata by denom and denoms by creator.
type Keeper struct {
	store      storetypes.KVStore
	bankKeeper types.BankKeeper
	addresses  types.AddressValidator
}

// NewKeeper returns a registry keeper over store. bankKeeper may be nil for read-only use.
func NewKeeper(store storetypes.KVStore, bankKeeper types.BankKeeper, addresses types.AddressValidator) Keeper {
	if addresses == nil {
		addresses = types.MockAddresses{}
	}
	return Keeper{
		store:      store,
		bankKeeper: bankKeeper,
		addresses:  addresses,
	}
}

// GetAuthorityMetadata returns the authority metadata for a specific denom
func (k Keeper) GetAuthorityMetadata(denom string) (types.DenomAuthorityMetadata, error) {
	var metadata types.DenomAuthorityMetadata
	if len(denom) > types.MaxDenomLength {
		return metadata, sdkerrors.Wrapf(types.ErrUnknownDenom, "denom: %s", denom)
	}

	bz := k.store.Get(types.GetDenomAuthorityKey(denom))
	if bz == nil {
		return metadata, sdkerrors.Wrapf(types.ErrUnknownDenom, "denom: %s", denom)
	}
	if err := json.Unmarshal(bz, &metadata); err != nil {
		return metadata, sdkerrors.Wrapf(err, "decode authority metadata of %s", denom)
	}
	return metadata, nil
}

func (k Keeper) hasAuthorityMetadata(denom string) bool {
	return k.store.Has(types.GetDenomAuthorityKey(denom))
}

// setAuthorityMetadata stores authority metadata for a specific denom
func (k Keeper) setAuthorityMetadata(denom string, metadata types.DenomAuthorityMetadata) error {
	bz, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	k.store.Set(types.GetDenomAuthorityKey(denom), bz)
	return nil
}

// GetDenomMetadata returns the metadata record of denom, and false when none was set.
func (k Keeper) GetDenomMetadata(denom string) (types.Metadata, bool, error) {
	var metadata types.Metadata
	if len(denom) > types.MaxDenomLength {
		return metadata, false, nil
	}

	bz := k.store.Get(types.GetDenomMetadataKey(denom))
	if bz == nil {
		return metadata, false, nil
	}
	if err := json.Unmarshal(bz, &metadata); err != nil {
		return metadata, false, sdkerrors.Wrapf(err, "decode metadata of %s", denom)
	}
	return metadata, true, nil
}

func (k Keeper) setDenomMetadata(denom string, metadata types.Metadata) error {
	bz, err := json.Marshal(metadata)
	if err != nil {
		return err
	}
	k.store.Set(types.GetDenomMetadataKey(denom), bz)
	return nil
}

// GetDenomsFromCreator returns the denoms of creator in creation order.
func (k Keeper) GetDenomsFromCreator(creator string) []string {
	// no denom can be built for a creator this long
	if len(creator) > types.MaxCreatorLength {
		return []string{}
	}

	iterator := storetypes.KVStorePrefixIterator(k.store, types.GetCreatorPrefix(creator))
	defer iterator.Close()

	denoms := []string{}
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Value()))
	}
	return denoms
}

// GetAllDenoms returns every created denom, grouped by creator and in creation order within a creator.
func (k Keeper) GetAllDenoms() []string {
	iterator := storetypes.KVStorePrefixIterator(k.store, types.CreatorDenomsPrefix)
	defer iterator.Close()

	denoms := []string{}
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Value()))
	}
	return denoms
}

func (k Keeper) addDenomFromCreator(creator, denom string) {
	countKey := types.GetCreatorCountKey(creator)

	var seq uint64
	if bz := k.store.Get(countKey); bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}

	k.store.Set(types.GetCreatorDenomKey(creator, seq), []byte(denom))
	k.store.Set(countKey, binary.BigEndian.AppendUint64(nil, seq+1))
}

// CanonicalDenom validates a pre-formed denom string and returns the form it is stored under.
func (k Keeper) CanonicalDenom(denom string) (string, error) {
	return types.ValidateFullDenom(denom, types.GetTokenDenom)
}

// authorize checks that sender is the current admin of denom.
func (k Keeper) authorize(sender, denom string) (string, error) {
	canonical, err := k.CanonicalDenom(denom)
	if err != nil {
		return "", err
	}

	authorityMetadata, err := k.GetAuthorityMetadata(canonical)
	if err != nil {
		return "", err
	}

	if authorityMetadata.Admin == "" || sender != authorityMetadata.Admin {
		return "", sdkerrors.Wrapf(types.ErrNotAdmin, "denom %s, sender %s", canonical, sender)
	}
	return canonical, nil
}
