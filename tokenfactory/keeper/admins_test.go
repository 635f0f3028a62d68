package keeper_test

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestChangeAdmin() {
	for _, tc := range []struct {
		desc     string
		sender   string
		newAdmin string
		expErr   error
	}{
		{
			desc:     "admin hands over",
			sender:   "creator",
			newAdmin: "successor",
		},
		{
			desc:     "admin renounces",
			sender:   "creator",
			newAdmin: "",
		},
		{
			desc:     "non admin",
			sender:   "intruder",
			newAdmin: "intruder",
			expErr:   types.ErrNotAdmin,
		},
		{
			desc:     "invalid new admin",
			sender:   "creator",
			newAdmin: "NO",
			expErr:   types.ErrInvalidAddress,
		},
	} {
		suite.Run(fmt.Sprintf("Case %s", tc.desc), func() {
			suite.SetupTest()
			denom := suite.createDenom("creator", "bitcoin")

			err := suite.keeper.ChangeAdmin(tc.sender, denom, tc.newAdmin)
			if tc.expErr != nil {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.requireAdmin(denom, "creator")
				return
			}
			suite.Require().NoError(err)
			suite.requireAdmin(denom, tc.newAdmin)

			// the old admin lost every right
			suite.Require().ErrorIs(suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(1), "creator"), types.ErrNotAdmin)
		})
	}
}

func (suite *KeeperTestSuite) TestChangeAdminUnknownDenom() {
	err := suite.keeper.ChangeAdmin("creator", "factory/creator/ghost", "successor")
	suite.Require().ErrorIs(err, types.ErrUnknownDenom)

	err = suite.keeper.ChangeAdmin("creator", "factory/creator", "successor")
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)
}

func (suite *KeeperTestSuite) TestRenouncedDenomIsFrozen() {
	denom := suite.createDenom("creator", "bitcoin")
	suite.Require().NoError(suite.keeper.ChangeAdmin("creator", denom, ""))

	// nobody matches the empty admin, not even an empty sender
	for _, sender := range []string{"creator", ""} {
		suite.Require().ErrorIs(suite.keeper.ChangeAdmin(sender, denom, "creator"), types.ErrNotAdmin)
		suite.Require().ErrorIs(suite.keeper.MintTokens(sender, denom, sdkmath.NewInt(1), "creator"), types.ErrNotAdmin)
		suite.Require().ErrorIs(suite.keeper.SetMetadata(sender, denom, types.Metadata{}), types.ErrNotAdmin)
	}
	suite.requireAdmin(denom, "")
}

func (suite *KeeperTestSuite) TestOnlyAdminMutates() {
	denom := suite.createDenom("creator", "bitcoin")
	amount := sdkmath.NewInt(10)

	before := suite.snapshot()
	mutations := map[string]error{
		"change admin":   suite.keeper.ChangeAdmin("intruder", denom, "intruder"),
		"mint":           suite.keeper.MintTokens("intruder", denom, amount, "intruder"),
		"burn":           suite.keeper.BurnTokens("intruder", denom, amount, ""),
		"force transfer": suite.keeper.ForceTransfer("intruder", denom, amount, "creator", "intruder"),
		"set metadata":   suite.keeper.SetMetadata("intruder", denom, types.Metadata{Display: "STOLEN"}),
	}
	for name, err := range mutations {
		suite.Require().ErrorIs(err, types.ErrNotAdmin, name)
	}

	suite.Require().Equal(before, suite.snapshot())
	suite.Require().Empty(suite.bank.calls)
	suite.requireAdmin(denom, "creator")
}

func (suite *KeeperTestSuite) TestSetMetadata() {
	denom := suite.createDenom("creator", "bitcoin")

	first := types.Metadata{
		Description: "first",
		Display:     "BTC",
		DenomUnits:  []types.DenomUnit{{Denom: "BTC", Exponent: 8, Aliases: []string{"bitcoin"}}},
	}
	suite.Require().NoError(suite.keeper.SetMetadata("creator", denom, first))

	// a second call replaces the record, it does not merge
	second := types.Metadata{Name: "Bitcoin"}
	suite.Require().NoError(suite.keeper.SetMetadata("creator", denom, second))

	stored, found, err := suite.keeper.GetDenomMetadata(denom)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(types.Metadata{Name: "Bitcoin", Base: denom, DenomUnits: []types.DenomUnit{}}, stored)

	err = suite.keeper.SetMetadata("creator", denom, types.Metadata{Base: "uatom"})
	suite.Require().ErrorIs(err, types.ErrInvalidMetadata)
}
