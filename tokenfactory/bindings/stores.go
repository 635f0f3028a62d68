package bindings

import (
	"github.com/cosmos/cosmos-sdk/store/cachekv"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	dbm "github.com/tendermint/tm-db"

	dbTypes "github.com/DefiantLabs/cosmos-tokenfactory/db"
	"github.com/DefiantLabs/cosmos-tokenfactory/ledger"
	tokenfactorykeeper "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/keeper"
	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// Keepers builds the registry and ledger keepers over their own prefixes of root.
func Keepers(root storetypes.KVStore, addresses tokenfactorytypes.AddressValidator) (tokenfactorykeeper.Keeper, ledger.Keeper) {
	bank := ledger.NewKeeper(prefix.NewStore(root, []byte(ledger.StoreKey)))
	registry := tokenfactorykeeper.NewKeeper(prefix.NewStore(root, []byte(tokenfactorytypes.StoreKey)), bank, addresses)
	return registry, bank
}

// inTransaction runs fn over a cache of db. The cache is flushed into one batch, and the batch is
// written only when fn succeeds.
func inTransaction(db dbm.DB, fn func(store storetypes.KVStore) error) error {
	committed := dbTypes.NewBatchStore(db)
	cache := cachekv.NewStore(committed)

	if err := fn(cache); err != nil {
		committed.Discard()
		return err
	}

	cache.Write()
	if err := committed.Commit(); err != nil {
		return sdkerrors.Wrap(err, "commit registry batch")
	}
	return nil
}
