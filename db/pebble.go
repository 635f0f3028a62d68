package db

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	dbm "github.com/tendermint/tm-db"
)

// PebbleDB is a tm-db backend on top of a pebble store.
type PebbleDB struct {
	path string
	db   *pebble.DB
}

var _ dbm.DB = (*PebbleDB)(nil)

func pebbleOptions(cache *pebble.Cache) *pebble.Options {
	return &pebble.Options{
		Cache:        cache,
		MaxOpenFiles: 1000,
		MemTableSize: 16 << 20,
	}
}

func NewPebbleDB(path string) (*PebbleDB, error) {
	if path == "" {
		return nil, errors.New("pebble path must be set")
	}
	// the DB holds its own reference to the cache
	cache := pebble.NewCache(64 << 20)
	defer cache.Unref()

	db, err := pebble.Open(path, pebbleOptions(cache))
	if err != nil {
		return nil, err
	}
	return &PebbleDB{path: path, db: db}, nil
}

func (p *PebbleDB) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errKeyEmpty
	}
	val, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	defer closer.Close()
	return cp(val), nil
}

func (p *PebbleDB) Has(key []byte) (bool, error) {
	val, err := p.Get(key)
	if err != nil {
		return false, err
	}
	return val != nil, nil
}

func (p *PebbleDB) Set(key, value []byte) error {
	if err := validateKV(key, value); err != nil {
		return err
	}
	return p.db.Set(key, value, pebble.NoSync)
}

func (p *PebbleDB) SetSync(key, value []byte) error {
	if err := validateKV(key, value); err != nil {
		return err
	}
	return p.db.Set(key, value, pebble.Sync)
}

func (p *PebbleDB) Delete(key []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	return p.db.Delete(key, pebble.NoSync)
}

func (p *PebbleDB) DeleteSync(key []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	return p.db.Delete(key, pebble.Sync)
}

func (p *PebbleDB) Iterator(start, end []byte) (dbm.Iterator, error) {
	return p.newIterator(start, end, false)
}

func (p *PebbleDB) ReverseIterator(start, end []byte) (dbm.Iterator, error) {
	return p.newIterator(start, end, true)
}

func (p *PebbleDB) newIterator(start, end []byte, reverse bool) (dbm.Iterator, error) {
	if (start != nil && len(start) == 0) || (end != nil && len(end) == 0) {
		return nil, errKeyEmpty
	}
	it, err := p.db.NewIter(&pebble.IterOptions{LowerBound: start, UpperBound: end})
	if err != nil {
		return nil, err
	}
	if reverse {
		it.Last()
	} else {
		it.First()
	}
	return &pebbleIterator{source: it, start: start, end: end, reverse: reverse}, nil
}

func (p *PebbleDB) Close() error {
	return p.db.Close()
}

func (p *PebbleDB) NewBatch() dbm.Batch {
	return &pebbleBatch{batch: p.db.NewBatch()}
}

func (p *PebbleDB) Print() error {
	it, err := p.Iterator(nil, nil)
	if err != nil {
		return err
	}
	defer it.Close()
	for ; it.Valid(); it.Next() {
		fmt.Printf("[%X]:\t[%X]\n", it.Key(), it.Value())
	}
	return it.Error()
}

func (p *PebbleDB) Stats() map[string]string {
	return map[string]string{
		"database.type": "pebble",
		"database.path": p.path,
		"pebble.stats":  p.db.Metrics().String(),
	}
}

type pebbleIterator struct {
	source     *pebble.Iterator
	start, end []byte
	reverse    bool
}

func (it *pebbleIterator) Domain() ([]byte, []byte) {
	return it.start, it.end
}

func (it *pebbleIterator) Valid() bool {
	return it.source.Valid()
}

func (it *pebbleIterator) Next() {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	if it.reverse {
		it.source.Prev()
	} else {
		it.source.Next()
	}
}

func (it *pebbleIterator) Key() []byte {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	return cp(it.source.Key())
}

func (it *pebbleIterator) Value() []byte {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	return cp(it.source.Value())
}

func (it *pebbleIterator) Error() error {
	return it.source.Error()
}

func (it *pebbleIterator) Close() error {
	return it.source.Close()
}

type pebbleBatch struct {
	batch *pebble.Batch
}

func (b *pebbleBatch) Set(key, value []byte) error {
	if err := validateKV(key, value); err != nil {
		return err
	}
	if b.batch == nil {
		return errBatchClosed
	}
	return b.batch.Set(key, value, nil)
}

func (b *pebbleBatch) Delete(key []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	if b.batch == nil {
		return errBatchClosed
	}
	return b.batch.Delete(key, nil)
}

func (b *pebbleBatch) Write() error {
	return b.commit(pebble.NoSync)
}

func (b *pebbleBatch) WriteSync() error {
	return b.commit(pebble.Sync)
}

func (b *pebbleBatch) commit(opts *pebble.WriteOptions) error {
	if b.batch == nil {
		return errBatchClosed
	}
	if err := b.batch.Commit(opts); err != nil {
		return err
	}
	return b.Close()
}

func (b *pebbleBatch) Close() error {
	if b.batch == nil {
		return nil
	}
	err := b.batch.Close()
	b.batch = nil
	return err
}
