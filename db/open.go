package db

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/store/dbadapter"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	dbm "github.com/tendermint/tm-db"
	"gorm.io/gorm"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
)

const storeName = "registry"

// OpenDB opens the backend selected in storeConf. The caller closes it.
func OpenDB(storeConf config.Store, dbConf config.Database) (dbm.DB, error) {
	switch storeConf.Backend {
	case config.BackendMemDB:
		return dbm.NewMemDB(), nil
	case config.BackendGoLevelDB:
		backend, err := dbm.NewGoLevelDBWithOpts(storeName, storeConf.Path, goLevelDBOptions())
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.BackendPebble:
		backend, err := NewPebbleDB(filepath.Join(storeConf.Path, storeName+".pebble"))
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.BackendPostgres:
		database, err := connectAndMigrate(dbConf)
		if err != nil {
			return nil, err
		}
		return NewGormDB(database), nil
	default:
		return nil, fmt.Errorf("unknown store backend %s", storeConf.Backend)
	}
}

// OpenStore wraps the opened backend as a KVStore. Writes go straight to the backend.
func OpenStore(storeConf config.Store, dbConf config.Database) (*dbadapter.Store, error) {
	backend, err := OpenDB(storeConf, dbConf)
	if err != nil {
		return nil, err
	}
	config.Log.ZDebug().Str("backend", storeConf.Backend).Str("path", storeConf.Path).Msg("opened registry store")
	return &dbadapter.Store{DB: backend}, nil
}

// Registry keys are looked up point-wise far more than they are scanned.
func goLevelDBOptions() *opt.Options {
	return &opt.Options{
		BlockCacheCapacity: 8 * opt.MiB,
		Filter:             filter.NewBloomFilter(10),
	}
}

func connectAndMigrate(dbConf config.Database) (*gorm.DB, error) {
	database, err := PostgresDbConnect(dbConf.Host, dbConf.Port, dbConf.Database, dbConf.User, dbConf.Password, strings.ToLower(dbConf.LogLevel))
	if err != nil {
		config.Log.Error("Could not establish connection to the database", err)
		return nil, err
	}

	sqldb, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxIdleConns(10)
	sqldb.SetMaxOpenConns(100)
	sqldb.SetConnMaxLifetime(time.Hour)

	if err := MigrateModels(database); err != nil {
		config.Log.Error("Error running DB migrations", err)
		return nil, err
	}

	return database, nil
}
