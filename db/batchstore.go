package db

import (
	"github.com/cosmos/cosmos-sdk/store/dbadapter"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	dbm "github.com/tendermint/tm-db"
)

// BatchStore reads from the backend and queues every write into a single batch. A cache layer
// written into it reaches the backend all at once on Commit, or not at all.
type BatchStore struct {
	dbadapter.Store
	batch dbm.Batch
	err   error
}

var _ storetypes.KVStore = (*BatchStore)(nil)

func NewBatchStore(db dbm.DB) *BatchStore {
	return &BatchStore{
		Store: dbadapter.Store{DB: db},
		batch: db.NewBatch(),
	}
}

func (s *BatchStore) Set(key, value []byte) {
	storetypes.AssertValidKey(key)
	storetypes.AssertValidValue(value)
	if s.err == nil {
		s.err = s.batch.Set(key, value)
	}
}

func (s *BatchStore) Delete(key []byte) {
	storetypes.AssertValidKey(key)
	if s.err == nil {
		s.err = s.batch.Delete(key)
	}
}

// Commit writes the batch. When any queued write was refused nothing is written.
func (s *BatchStore) Commit() error {
	defer s.batch.Close()
	if s.err != nil {
		return s.err
	}
	return s.batch.Write()
}

// Discard drops the queued writes.
func (s *BatchStore) Discard() {
	if err := s.batch.Close(); err != nil {
		s.err = err
	}
}
