package keeper_test

import (
	"strings"

	sdkmath "cosmossdk.io/math"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/keeper"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestQuerier() {
	querier := keeper.NewQuerier(suite.keeper)

	// full denom does not require the denom to exist
	full, err := querier.FullDenom("creator", "ghost")
	suite.Require().NoError(err)
	suite.Require().Equal("factory/creator/ghost", full)

	_, err = querier.FullDenom("cre/ator", "ghost")
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)

	_, err = querier.Admin(full)
	suite.Require().ErrorIs(err, types.ErrUnknownDenom)

	metadata, err := querier.Metadata(full)
	suite.Require().NoError(err)
	suite.Require().Nil(metadata)

	suite.Require().Equal([]string{}, querier.DenomsByCreator("creator"))

	_, err = querier.Params()
	suite.Require().ErrorIs(err, types.ErrUnimplemented)
}

func (suite *KeeperTestSuite) TestQuerierRejectsMalformedDenoms() {
	querier := keeper.NewQuerier(suite.keeper)

	_, err := querier.Metadata("factory/creator")
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)

	_, err = querier.Admin("ibc/ABCDEF")
	suite.Require().ErrorIs(err, types.ErrUnimplemented)
}

func (suite *KeeperTestSuite) TestGovnerScenario() {
	querier := keeper.NewQuerier(suite.keeper)

	denom, err := suite.keeper.CreateDenom("govner", "fundz", &types.Metadata{Display: "FUNDZ"})
	suite.Require().NoError(err)
	suite.Require().Equal("factory/govner/fundz", denom)

	suite.Require().NoError(suite.keeper.MintTokens("govner", denom, sdkmath.NewInt(1234567), "townies"))
	suite.Require().Len(suite.bank.calls, 1)
	suite.Require().Equal("townies", suite.bank.calls[0].to)
	suite.Require().Equal(int64(1234567), suite.bank.calls[0].coin.Amount.Int64())

	metadata, err := querier.Metadata(denom)
	suite.Require().NoError(err)
	suite.Require().NotNil(metadata)
	suite.Require().Equal("FUNDZ", metadata.Display)

	admin, err := querier.Admin(denom)
	suite.Require().NoError(err)
	suite.Require().Equal("govner", admin)

	err = suite.keeper.MintTokens("townies", denom, sdkmath.NewInt(1234567), "townies")
	suite.Require().ErrorIs(err, types.ErrNotAdmin)
	suite.Require().Len(suite.bank.calls, 1)

	suite.Require().Equal([]string{denom}, querier.DenomsByCreator("govner"))
}

func (suite *KeeperTestSuite) TestQuerierOversizedInputs() {
	querier := keeper.NewQuerier(suite.keeper)
	suite.createDenom("govner", "fundz")
	long := strings.Repeat("a", 300)

	suite.Require().NotPanics(func() {
		suite.Require().Equal([]string{}, querier.DenomsByCreator(long))
		suite.Require().Equal([]string{}, suite.keeper.GetDenomsFromCreator(strings.Repeat("a", types.MaxCreatorLength+1)))

		_, found, err := suite.keeper.GetDenomMetadata("factory/" + long + "/fundz")
		suite.Require().NoError(err)
		suite.Require().False(found)

		_, err = suite.keeper.GetAuthorityMetadata("factory/" + long + "/fundz")
		suite.Require().ErrorIs(err, types.ErrUnknownDenom)
	})
}

// The empty creator has its own range and does not see every creator's denoms.
func (suite *KeeperTestSuite) TestDenomsByEmptyCreator() {
	querier := keeper.NewQuerier(suite.keeper)
	suite.createDenom("govner", "fundz")
	suite.Require().Equal([]string{}, querier.DenomsByCreator(""))

	orphan := suite.createDenom("", "fundz")
	suite.Require().Equal([]string{orphan}, querier.DenomsByCreator(""))
	suite.Require().Equal([]string{"factory/govner/fundz"}, querier.DenomsByCreator("govner"))
}
