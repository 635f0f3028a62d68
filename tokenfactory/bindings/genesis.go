package bindings

import (
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	dbm "github.com/tendermint/tm-db"

	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// ImportGenesis loads genState into db in a single batch. Nothing is written unless the whole state is accepted.
func ImportGenesis(db dbm.DB, addresses tokenfactorytypes.AddressValidator, genState tokenfactorytypes.GenesisState) error {
	return inTransaction(db, func(store storetypes.KVStore) error {
		registry, _ := Keepers(store, addresses)
		return registry.InitGenesis(genState)
	})
}

func ExportGenesis(store storetypes.KVStore) (*tokenfactorytypes.GenesisState, error) {
	registry, _ := Keepers(store, nil)
	return registry.ExportGenesis()
}
