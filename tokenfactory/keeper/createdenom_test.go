package keeper_test

import (
	"fmt"
	"strings"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestCreateDenom() {
	for _, tc := range []struct {
		desc     string
		creator  string
		subdenom string
		valid    bool
	}{
		{
			desc:     "subdenom too long",
			creator:  "creator",
			subdenom: strings.Repeat("a", types.MaxSubdenomLength+1),
			valid:    false,
		},
		{
			desc:     "creator with slash",
			creator:  "cre/ator",
			subdenom: "bitcoin",
			valid:    false,
		},
		{
			desc:     "success case",
			creator:  "creator",
			subdenom: "evmos",
			valid:    true,
		},
		{
			desc:     "empty subdenom",
			creator:  "creator",
			subdenom: "",
			valid:    true,
		},
	} {
		suite.Run(fmt.Sprintf("Case %s", tc.desc), func() {
			suite.SetupTest()

			before := suite.snapshot()
			denom, err := suite.keeper.CreateDenom(tc.creator, tc.subdenom, nil)
			if !tc.valid {
				suite.Require().ErrorIs(err, types.ErrInvalidDenom)
				suite.Require().Equal(before, suite.snapshot())
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal(fmt.Sprintf("factory/%s/%s", tc.creator, tc.subdenom), denom)
			suite.requireAdmin(denom, tc.creator)
			suite.Require().Equal([]string{denom}, suite.keeper.GetDenomsFromCreator(tc.creator))

			_, found, err := suite.keeper.GetDenomMetadata(denom)
			suite.Require().NoError(err)
			suite.Require().False(found)
		})
	}
}

func (suite *KeeperTestSuite) TestCreateDenomTwice() {
	denom := suite.createDenom("creator", "bitcoin")

	before := suite.snapshot()
	_, err := suite.keeper.CreateDenom("creator", "bitcoin", nil)
	suite.Require().ErrorIs(err, types.ErrDenomExists)
	suite.Require().Equal(before, suite.snapshot())
	suite.Require().Equal([]string{denom}, suite.keeper.GetDenomsFromCreator("creator"))

	// another creator may reuse the subdenom
	other := suite.createDenom("another", "bitcoin")
	suite.Require().Equal("factory/another/bitcoin", other)
}

func (suite *KeeperTestSuite) TestCreateDenomWithMetadata() {
	metadata := types.Metadata{
		Description: "fundz for the townies",
		Display:     "FUNDZ",
		Symbol:      "FUNDZ",
		DenomUnits: []types.DenomUnit{
			{Denom: "factory/govner/fundz", Exponent: 0},
			{Denom: "FUNDZ", Exponent: 6},
		},
	}

	denom, err := suite.keeper.CreateDenom("govner", "fundz", &metadata)
	suite.Require().NoError(err)

	stored, found, err := suite.keeper.GetDenomMetadata(denom)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(denom, stored.Base)
	suite.Require().Equal("FUNDZ", stored.Display)
	suite.Require().Len(stored.DenomUnits, 2)

	before := suite.snapshot()
	_, err = suite.keeper.CreateDenom("govner", "other", &types.Metadata{Base: "uatom"})
	suite.Require().ErrorIs(err, types.ErrInvalidMetadata)
	suite.Require().Equal(before, suite.snapshot())
}

func (suite *KeeperTestSuite) TestDenomsFromCreatorOrder() {
	suite.Require().Equal([]string{}, suite.keeper.GetDenomsFromCreator("creator"))

	subdenoms := []string{"zeta", "alpha", "mid", "beta"}
	var expected []string
	for _, subdenom := range subdenoms {
		expected = append(expected, suite.createDenom("creator", subdenom))
	}
	// a creator whose name extends "creator" must not show up in its range
	suite.createDenom("creatorx", "alpha")

	suite.Require().Equal(expected, suite.keeper.GetDenomsFromCreator("creator"))
	suite.Require().Equal([]string{"factory/creatorx/alpha"}, suite.keeper.GetDenomsFromCreator("creatorx"))
	suite.Require().Len(suite.keeper.GetAllDenoms(), len(subdenoms)+1)
}
