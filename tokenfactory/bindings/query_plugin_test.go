package bindings

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus/testutil"

	bindingstypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings/types"
	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

func (suite *MessengerTestSuite) query(request string) ([]byte, error) {
	querier := CustomQuerier(NewQueryPlugin(suite.store, nil))
	return querier(json.RawMessage(request))
}

func (suite *MessengerTestSuite) TestQueries() {
	_, err := suite.dispatch("govner", bindingstypes.TokenMsg{CreateDenom: &bindingstypes.CreateDenom{
		Subdenom: "fundz",
		Metadata: &tokenfactorytypes.Metadata{Display: "FUNDZ"},
	}})
	suite.Require().NoError(err)
	_, err = suite.dispatch("govner", bindingstypes.TokenMsg{MintTokens: &bindingstypes.MintTokens{
		Denom:         "factory/govner/fundz",
		Amount:        sdkmath.NewInt(1234567),
		MintToAddress: "townies",
	}})
	suite.Require().NoError(err)

	bz, err := suite.query(`{"token":{"full_denom":{"creator_addr":"govner","subdenom":"other"}}}`)
	suite.Require().NoError(err)
	var fullDenom bindingstypes.FullDenomResponse
	suite.Require().NoError(json.Unmarshal(bz, &fullDenom))
	suite.Require().Equal("factory/govner/other", fullDenom.Denom)

	bz, err = suite.query(`{"token":{"admin":{"denom":"factory/govner/fundz"}}}`)
	suite.Require().NoError(err)
	var admin bindingstypes.AdminResponse
	suite.Require().NoError(json.Unmarshal(bz, &admin))
	suite.Require().Equal("govner", admin.Admin)

	bz, err = suite.query(`{"token":{"metadata":{"denom":"factory/govner/fundz"}}}`)
	suite.Require().NoError(err)
	var metadata bindingstypes.MetadataResponse
	suite.Require().NoError(json.Unmarshal(bz, &metadata))
	suite.Require().NotNil(metadata.Metadata)
	suite.Require().Equal("FUNDZ", metadata.Metadata.Display)
	suite.Require().Equal("factory/govner/fundz", metadata.Metadata.Base)

	bz, err = suite.query(`{"token":{"metadata":{"denom":"factory/govner/other"}}}`)
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{}`, string(bz))

	bz, err = suite.query(`{"token":{"denoms_by_creator":{"creator":"govner"}}}`)
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"denoms":["factory/govner/fundz"]}`, string(bz))

	bz, err = suite.query(`{"token":{"denoms_by_creator":{"creator":"nobody"}}}`)
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"denoms":[]}`, string(bz))

	// a mint by someone else is refused and the admin is still govner
	_, err = suite.dispatch("townies", bindingstypes.TokenMsg{MintTokens: &bindingstypes.MintTokens{
		Denom:         "factory/govner/fundz",
		Amount:        sdkmath.NewInt(1234567),
		MintToAddress: "townies",
	}})
	suite.Require().ErrorIs(err, tokenfactorytypes.ErrNotAdmin)

	bz, err = suite.query(`{"token":{"admin":{"denom":"factory/govner/fundz"}}}`)
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"admin":"govner"}`, string(bz))
}

func (suite *MessengerTestSuite) TestQueryErrors() {
	_, err := suite.query(`{"token":{"admin":{"denom":"factory/govner/ghost"}}}`)
	suite.Require().ErrorIs(err, tokenfactorytypes.ErrUnknownDenom)

	_, err = suite.query(`{"token":{"params":{}}}`)
	suite.Require().ErrorIs(err, tokenfactorytypes.ErrUnimplemented)

	_, err = suite.query(`{"token":{}}`)
	suite.Require().ErrorIs(err, tokenfactorytypes.ErrUnknownRequest)

	_, err = suite.query(`{}`)
	suite.Require().ErrorIs(err, tokenfactorytypes.ErrUnknownRequest)

	_, err = suite.query(`not json`)
	suite.Require().Error(err)
}

func (suite *MessengerTestSuite) TestQueryMetrics() {
	before := testutil.ToFloat64(queriesTotal.WithLabelValues("params", resultError))
	_, err := suite.query(`{"token":{"params":{}}}`)
	suite.Require().Error(err)
	suite.Require().Equal(before+1, testutil.ToFloat64(queriesTotal.WithLabelValues("params", resultError)))
}

func (suite *MessengerTestSuite) TestGenesisRoundTrip() {
	suite.createDenom("govner", "fundz")
	suite.createDenom("govner", "bucks")

	exported, err := ExportGenesis(suite.store)
	suite.Require().NoError(err)
	suite.Require().Len(exported.FactoryDenoms, 2)

	other := suite.store
	suite.SetupTest()
	suite.Require().NoError(ImportGenesis(suite.store.DB, nil, *exported))

	reexported, err := ExportGenesis(suite.store)
	suite.Require().NoError(err)
	suite.Require().Equal(exported, reexported)

	// a rejected import writes nothing
	suite.Require().Error(ImportGenesis(other.DB, nil, *exported))
	again, err := ExportGenesis(other)
	suite.Require().NoError(err)
	suite.Require().Equal(exported, again)
}
