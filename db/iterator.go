package db

import (
	"errors"

	dbm "github.com/tendermint/tm-db"
)

var (
	errKeyEmpty      = errors.New("key cannot be empty")
	errValueNil      = errors.New("value cannot be nil")
	errBatchClosed   = errors.New("batch has been written or closed")
	errIteratorEnded = errors.New("iterator is not valid")
)

func validateKV(key, value []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	if value == nil {
		return errValueNil
	}
	return nil
}

type kvPair struct {
	key   []byte
	value []byte
}

// sliceIterator walks a range that was loaded up front.
type sliceIterator struct {
	start, end []byte
	pairs      []kvPair
	cursor     int
}

var _ dbm.Iterator = (*sliceIterator)(nil)

func newSliceIterator(start, end []byte, pairs []kvPair, reverse bool) *sliceIterator {
	if reverse {
		for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
	}
	return &sliceIterator{start: start, end: end, pairs: pairs}
}

func (it *sliceIterator) Domain() ([]byte, []byte) {
	return it.start, it.end
}

func (it *sliceIterator) Valid() bool {
	return it.cursor < len(it.pairs)
}

func (it *sliceIterator) Next() {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	it.cursor++
}

func (it *sliceIterator) Key() []byte {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	return it.pairs[it.cursor].key
}

func (it *sliceIterator) Value() []byte {
	if !it.Valid() {
		panic(errIteratorEnded)
	}
	return it.pairs[it.cursor].value
}

func (it *sliceIterator) Error() error {
	return nil
}

func (it *sliceIterator) Close() error {
	it.pairs = nil
	return nil
}

func cp(bz []byte) []byte {
	if bz == nil {
		return nil
	}
	return append([]byte{}, bz...)
}
