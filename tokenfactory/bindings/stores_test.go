package bindings

import (
	"errors"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/store/dbadapter"
	dbm "github.com/tendermint/tm-db"

	bindingstypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings/types"
)

var (
	errDirectWrite = errors.New("write outside a batch")
	errRefused     = errors.New("write refused")
)

// refusingDB only accepts writes through batches, and refuses the failAt-th batched write.
type refusingDB struct {
	dbm.DB
	failAt int
	writes int
}

func (d *refusingDB) Set([]byte, []byte) error     { return errDirectWrite }
func (d *refusingDB) SetSync([]byte, []byte) error { return errDirectWrite }
func (d *refusingDB) Delete([]byte) error          { return errDirectWrite }
func (d *refusingDB) DeleteSync([]byte) error      { return errDirectWrite }

func (d *refusingDB) NewBatch() dbm.Batch {
	return &refusingBatch{Batch: d.DB.NewBatch(), db: d}
}

type refusingBatch struct {
	dbm.Batch
	db *refusingDB
}

func (b *refusingBatch) Set(key, value []byte) error {
	b.db.writes++
	if b.db.writes == b.db.failAt {
		return errRefused
	}
	return b.Batch.Set(key, value)
}

func dump(db dbm.DB) map[string]string {
	it, err := db.Iterator(nil, nil)
	if err != nil {
		panic(err)
	}
	defer it.Close()

	entries := map[string]string{}
	for ; it.Valid(); it.Next() {
		entries[string(it.Key())] = string(it.Value())
	}
	return entries
}

func (suite *MessengerTestSuite) TestRefusedWriteCommitsNothing() {
	db := &refusingDB{DB: dbm.NewMemDB()}
	messenger := NewMessenger(db, nil, suite.publisher)

	_, err := messenger.DispatchMsg(suite.ctx, "govner", bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
		CreateDenom: &bindingstypes.CreateDenom{Subdenom: "fundz"},
	}})
	suite.Require().NoError(err)
	before := dump(db)

	// admin, creator index and counter are written in key order, the creator index write fails
	db.failAt = db.writes + 2
	_, err = messenger.DispatchMsg(suite.ctx, "govner", bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
		CreateDenom: &bindingstypes.CreateDenom{Subdenom: "bucks"},
	}})
	suite.Require().ErrorIs(err, errRefused)
	suite.Require().Equal(before, dump(db))
	suite.Require().Len(suite.publisher.events, 1)

	registry, _ := Keepers(dbadapter.Store{DB: db}, nil)
	suite.Require().Equal([]string{"factory/govner/fundz"}, registry.GetDenomsFromCreator("govner"))

	db.failAt = 0
	_, err = messenger.DispatchMsg(suite.ctx, "govner", bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
		CreateDenom: &bindingstypes.CreateDenom{Subdenom: "bucks"},
	}})
	suite.Require().NoError(err)
	suite.Require().Equal([]string{"factory/govner/fundz", "factory/govner/bucks"}, registry.GetDenomsFromCreator("govner"))
}

func (suite *MessengerTestSuite) TestRefusedLedgerWriteCommitsNothing() {
	db := &refusingDB{DB: dbm.NewMemDB()}
	messenger := NewMessenger(db, nil, suite.publisher)

	_, err := messenger.DispatchMsg(suite.ctx, "govner", bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
		CreateDenom: &bindingstypes.CreateDenom{Subdenom: "fundz"},
	}})
	suite.Require().NoError(err)
	before := dump(db)

	// the second of the balance and supply writes fails
	db.failAt = db.writes + 2
	_, err = messenger.DispatchMsg(suite.ctx, "govner", bindingstypes.TokenFactoryMsg{Token: &bindingstypes.TokenMsg{
		MintTokens: &bindingstypes.MintTokens{Denom: "factory/govner/fundz", Amount: sdkmath.NewInt(10), MintToAddress: "townies"},
	}})
	suite.Require().ErrorIs(err, errRefused)
	suite.Require().Equal(before, dump(db))
}

func (suite *MessengerTestSuite) TestRefusedGenesisImportWritesNothing() {
	suite.createDenom("govner", "fundz")
	suite.createDenom("govner", "bucks")
	exported, err := ExportGenesis(suite.store)
	suite.Require().NoError(err)

	db := &refusingDB{DB: dbm.NewMemDB(), failAt: 4}
	err = ImportGenesis(db, nil, *exported)
	suite.Require().ErrorIs(err, errRefused)
	suite.Require().Empty(dump(db))

	db.failAt = 0
	suite.Require().NoError(ImportGenesis(db, nil, *exported))
	reimported, err := ExportGenesis(dbadapter.Store{DB: db})
	suite.Require().NoError(err)
	suite.Require().Equal(exported, reimported)
}
