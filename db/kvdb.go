package db

import (
	"errors"
	"fmt"

	dbm "github.com/tendermint/tm-db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/db/models"
)

// GormDB is a tm-db backend storing every key as a row of the kv_entries table.
type GormDB struct {
	db *gorm.DB
}

var _ dbm.DB = (*GormDB)(nil)

func NewGormDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

func (g *GormDB) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errKeyEmpty
	}

	var entry models.KVEntry
	err := g.db.Where("store_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (g *GormDB) Has(key []byte) (bool, error) {
	if len(key) == 0 {
		return false, errKeyEmpty
	}

	var count int64
	if err := g.db.Model(&models.KVEntry{}).Where("store_key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (g *GormDB) Set(key, value []byte) error {
	if err := validateKV(key, value); err != nil {
		return err
	}
	return upsertEntry(g.db, key, value)
}

func (g *GormDB) SetSync(key, value []byte) error {
	return g.Set(key, value)
}

func (g *GormDB) Delete(key []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	return deleteEntry(g.db, key)
}

func (g *GormDB) DeleteSync(key []byte) error {
	return g.Delete(key)
}

func (g *GormDB) Iterator(start, end []byte) (dbm.Iterator, error) {
	return g.iterate(start, end, false)
}

func (g *GormDB) ReverseIterator(start, end []byte) (dbm.Iterator, error) {
	return g.iterate(start, end, true)
}

// iterate loads the whole range in one query. Registry ranges are small: one creator's denoms.
func (g *GormDB) iterate(start, end []byte, reverse bool) (dbm.Iterator, error) {
	if (start != nil && len(start) == 0) || (end != nil && len(end) == 0) {
		return nil, errKeyEmpty
	}

	query := g.db.Model(&models.KVEntry{})
	if start != nil {
		query = query.Where("store_key >= ?", start)
	}
	if end != nil {
		query = query.Where("store_key < ?", end)
	}

	var entries []models.KVEntry
	if err := query.Order("store_key asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	pairs := make([]kvPair, len(entries))
	for i, entry := range entries {
		pairs[i] = kvPair{key: entry.Key, value: entry.Value}
	}
	return newSliceIterator(start, end, pairs, reverse), nil
}

func (g *GormDB) Close() error {
	sqldb, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}

func (g *GormDB) NewBatch() dbm.Batch {
	return &gormBatch{db: g.db}
}

func (g *GormDB) Print() error {
	var entries []models.KVEntry
	if err := g.db.Order("store_key asc").Find(&entries).Error; err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("[%X]:\t[%X]\n", entry.Key, entry.Value)
	}
	return nil
}

func (g *GormDB) Stats() map[string]string {
	var count int64
	if err := g.db.Model(&models.KVEntry{}).Count(&count).Error; err != nil {
		config.Log.Error("Error counting kv entries", err)
	}
	return map[string]string{
		"database.type": "postgres",
		"database.size": fmt.Sprintf("%d", count),
	}
}

func upsertEntry(tx *gorm.DB, key, value []byte) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_value"}),
	}).Create(&models.KVEntry{Key: cp(key), Value: cp(value)}).Error
}

func deleteEntry(tx *gorm.DB, key []byte) error {
	return tx.Where("store_key = ?", key).Delete(&models.KVEntry{}).Error
}

type gormOp struct {
	kvPair
	delete bool
}

// gormBatch applies its operations in a single transaction.
type gormBatch struct {
	db  *gorm.DB
	ops []gormOp
}

func (b *gormBatch) Set(key, value []byte) error {
	if err := validateKV(key, value); err != nil {
		return err
	}
	if b.db == nil {
		return errBatchClosed
	}
	b.ops = append(b.ops, gormOp{kvPair: kvPair{key: cp(key), value: cp(value)}})
	return nil
}

func (b *gormBatch) Delete(key []byte) error {
	if len(key) == 0 {
		return errKeyEmpty
	}
	if b.db == nil {
		return errBatchClosed
	}
	b.ops = append(b.ops, gormOp{kvPair: kvPair{key: cp(key)}, delete: true})
	return nil
}

func (b *gormBatch) Write() error {
	if b.db == nil {
		return errBatchClosed
	}

	err := b.db.Transaction(func(dbTransaction *gorm.DB) error {
		for _, op := range b.ops {
			if op.delete {
				if err := deleteEntry(dbTransaction, op.key); err != nil {
					return err
				}
				continue
			}
			if err := upsertEntry(dbTransaction, op.key, op.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		config.Log.Error("Error writing kv batch", err)
		return err
	}
	return b.Close()
}

func (b *gormBatch) WriteSync() error {
	return b.Write()
}

func (b *gormBatch) Close() error {
	b.db = nil
	b.ops = nil
	return nil
}
