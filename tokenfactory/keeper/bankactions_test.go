package keeper_test

import (
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestMintTokens() {
	denom := suite.createDenom("creator", "bitcoin")

	suite.Require().NoError(suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(100), "recipient"))
	suite.Require().NoError(suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(50), "recipient"))

	suite.Require().Equal([]bankCall{
		{method: "mint", to: "recipient", coin: sdk.Coin{Denom: denom, Amount: sdkmath.NewInt(100)}},
		{method: "mint", to: "recipient", coin: sdk.Coin{Denom: denom, Amount: sdkmath.NewInt(50)}},
	}, suite.bank.calls)
}

func (suite *KeeperTestSuite) TestZeroAmountNeverReachesLedger() {
	denom := suite.createDenom("creator", "bitcoin")

	for _, sender := range []string{"creator", "intruder"} {
		for _, amount := range []sdkmath.Int{sdkmath.ZeroInt(), {}} {
			suite.Require().ErrorIs(suite.keeper.MintTokens(sender, denom, amount, "recipient"), types.ErrZeroAmount)
			suite.Require().ErrorIs(suite.keeper.BurnTokens(sender, denom, amount, ""), types.ErrZeroAmount)
			suite.Require().ErrorIs(suite.keeper.ForceTransfer(sender, denom, amount, "creator", "recipient"), types.ErrZeroAmount)
		}
	}
	// unknown denoms are not looked up before the amount is checked
	suite.Require().ErrorIs(suite.keeper.MintTokens("creator", "factory/creator/ghost", sdkmath.ZeroInt(), "recipient"), types.ErrZeroAmount)

	suite.Require().Empty(suite.bank.calls)
}

func (suite *KeeperTestSuite) TestNegativeAmount() {
	denom := suite.createDenom("creator", "bitcoin")

	suite.Require().ErrorIs(suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(-1), "recipient"), types.ErrInvalidAmount)
	suite.Require().Empty(suite.bank.calls)
}

func (suite *KeeperTestSuite) TestMintInvalidRecipient() {
	denom := suite.createDenom("creator", "bitcoin")

	suite.Require().ErrorIs(suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(1), "x"), types.ErrInvalidAddress)
	suite.Require().Empty(suite.bank.calls)
}

func (suite *KeeperTestSuite) TestBurnTokens() {
	denom := suite.createDenom("creator", "bitcoin")
	amount := sdkmath.NewInt(7)

	suite.Require().NoError(suite.keeper.BurnTokens("creator", denom, amount, ""))
	suite.Require().NoError(suite.keeper.BurnTokens("creator", denom, amount, "creator"))

	err := suite.keeper.BurnTokens("creator", denom, amount, "holder")
	suite.Require().ErrorIs(err, types.ErrUnimplemented)

	suite.Require().Equal([]bankCall{
		{method: "burn", from: "creator", coin: sdk.Coin{Denom: denom, Amount: amount}},
		{method: "burn", from: "creator", coin: sdk.Coin{Denom: denom, Amount: amount}},
	}, suite.bank.calls)
}

func (suite *KeeperTestSuite) TestForceTransfer() {
	denom := suite.createDenom("creator", "bitcoin")
	amount := sdkmath.NewInt(3)

	suite.Require().NoError(suite.keeper.ForceTransfer("creator", denom, amount, "holder", "receiver"))
	suite.Require().ErrorIs(suite.keeper.ForceTransfer("creator", denom, amount, "holder", "X"), types.ErrInvalidAddress)

	suite.Require().Equal([]bankCall{
		{method: "send", from: "holder", to: "receiver", coin: sdk.Coin{Denom: denom, Amount: amount}},
	}, suite.bank.calls)
}

func (suite *KeeperTestSuite) TestLedgerErrorsPropagate() {
	denom := suite.createDenom("creator", "bitcoin")
	suite.bank.err = errors.New("ledger is down")

	err := suite.keeper.MintTokens("creator", denom, sdkmath.NewInt(1), "recipient")
	suite.Require().ErrorIs(err, suite.bank.err)
}

func (suite *KeeperTestSuite) TestUpperCasePrefixAddressesSameDenom() {
	denom := suite.createDenom("creator", "bitcoin")

	suite.Require().NoError(suite.keeper.MintTokens("creator", "FACTORY/creator/bitcoin", sdkmath.NewInt(5), "recipient"))
	suite.Require().Equal(denom, suite.bank.calls[0].coin.Denom)
}
