package keeper_test

import (
	"github.com/cosmos/cosmos-sdk/store/dbadapter"
	dbm "github.com/tendermint/tm-db"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/keeper"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestGenesis() {
	genesisState := types.GenesisState{
		FactoryDenoms: []types.GenesisDenom{
			{
				Denom: "factory/creator/bitcoin",
				AuthorityMetadata: types.DenomAuthorityMetadata{
					Admin: "creator",
				},
			},
			{
				Denom: "factory/creator/diff-admin",
				AuthorityMetadata: types.DenomAuthorityMetadata{
					Admin: "delegate",
				},
				Metadata: &types.Metadata{
					Base:       "factory/creator/diff-admin",
					Display:    "DIFF",
					DenomUnits: []types.DenomUnit{},
				},
			},
			{
				Denom: "factory/creator/litecoin",
				AuthorityMetadata: types.DenomAuthorityMetadata{
					Admin: "",
				},
			},
		},
	}

	suite.Require().NoError(suite.keeper.InitGenesis(genesisState))
	suite.requireAdmin("factory/creator/diff-admin", "delegate")

	exportedGenesis, err := suite.keeper.ExportGenesis()
	suite.Require().NoError(err)
	suite.Require().Equal(genesisState, *exportedGenesis)

	// importing into a fresh store yields the same state
	fresh := keeper.NewKeeper(dbadapter.Store{DB: dbm.NewMemDB()}, suite.bank, nil)
	suite.Require().NoError(fresh.InitGenesis(*exportedGenesis))
	reexported, err := fresh.ExportGenesis()
	suite.Require().NoError(err)
	suite.Require().Equal(exportedGenesis, reexported)
}

func (suite *KeeperTestSuite) TestInitGenesisRejectsExisting() {
	suite.createDenom("creator", "bitcoin")
	before := suite.snapshot()

	err := suite.keeper.InitGenesis(types.GenesisState{
		FactoryDenoms: []types.GenesisDenom{
			{Denom: "factory/creator/fresh"},
			{Denom: "factory/creator/bitcoin"},
		},
	})
	suite.Require().ErrorIs(err, types.ErrDenomExists)
	suite.Require().Equal(before, suite.snapshot())
}

func (suite *KeeperTestSuite) TestExportDefaultGenesis() {
	exported, err := suite.keeper.ExportGenesis()
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultGenesis(), exported)
}
