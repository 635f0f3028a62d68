package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DefiantLabs/cosmos-tokenfactory/util"
	"github.com/spf13/cobra"
)

// These configs are used across multiple commands, and are not specific to a single command
type log struct {
	Level  string
	Path   string
	Pretty bool
}

type Database struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	LogLevel string `mapstructure:"log-level"`
}

type Store struct {
	Backend string
	Path    string
}

type Address struct {
	Mode   string
	Prefix string
}

type Metrics struct {
	Addr string
}

type RedisConf struct {
	RedisAddr string `mapstructure:"addr"`
	RedisPsw  string `mapstructure:"psw"`
}

const (
	BackendMemDB     = "memdb"
	BackendGoLevelDB = "goleveldb"
	BackendPebble    = "pebble"
	BackendPostgres  = "postgres"

	AddressModeMock   = "mock"
	AddressModeBech32 = "bech32"
)

var validBackends = []string{BackendMemDB, BackendGoLevelDB, BackendPebble, BackendPostgres}

func SetupLogFlags(logConf *log, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logConf.Level, "log.level", "info", "log level")
	cmd.PersistentFlags().BoolVar(&logConf.Pretty, "log.pretty", false, "pretty logs")
	cmd.PersistentFlags().StringVar(&logConf.Path, "log.path", "", "log path (default is $HOME/.tokenfactory/logs.txt")
}

func SetupDatabaseFlags(databaseConf *Database, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&databaseConf.Host, "database.host", "", "database host")
	cmd.PersistentFlags().StringVar(&databaseConf.Port, "database.port", "5432", "database port")
	cmd.PersistentFlags().StringVar(&databaseConf.Database, "database.database", "", "database name")
	cmd.PersistentFlags().StringVar(&databaseConf.User, "database.user", "", "database user")
	cmd.PersistentFlags().StringVar(&databaseConf.Password, "database.password", "", "database password")
	cmd.PersistentFlags().StringVar(&databaseConf.LogLevel, "database.log-level", "", "database loglevel")
}

func SetupStoreFlags(storeConf *Store, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&storeConf.Backend, "store.backend", BackendGoLevelDB, fmt.Sprintf("registry store backend, one of %s", strings.Join(validBackends, ", ")))
	cmd.PersistentFlags().StringVar(&storeConf.Path, "store.path", "", "directory of the registry store for file backends")
}

func SetupAddressFlags(addressConf *Address, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&addressConf.Mode, "address.mode", AddressModeMock, "identity check, mock or bech32")
	cmd.PersistentFlags().StringVar(&addressConf.Prefix, "address.prefix", "", "bech32 human readable prefix")
}

func SetupMetricsFlags(metricsConf *Metrics, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&metricsConf.Addr, "metrics.addr", "", "serve prometheus metrics on this address while the command runs")
}

func SetupRedisFlags(redisConf *RedisConf, cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&redisConf.RedisAddr, "redis.addr", "", "redis address, events are not published when empty")
	cmd.PersistentFlags().StringVar(&redisConf.RedisPsw, "redis.psw", "", "redis password")
}

func validateDatabaseConf(dbConf Database) error {
	if util.StrNotSet(dbConf.Host) {
		return errors.New("database host must be set")
	}
	if util.StrNotSet(dbConf.Port) {
		return errors.New("database port must be set")
	}
	if util.StrNotSet(dbConf.Database) {
		return errors.New("database name (i.e. database) must be set")
	}
	if util.StrNotSet(dbConf.User) {
		return errors.New("database user must be set")
	}
	if util.StrNotSet(dbConf.Password) {
		return errors.New("database password must be set")
	}

	return nil
}

func validateStoreConf(storeConf Store, dbConf Database) error {
	switch storeConf.Backend {
	case BackendMemDB:
		return nil
	case BackendGoLevelDB, BackendPebble:
		if util.StrNotSet(storeConf.Path) {
			return fmt.Errorf("store path must be set for the %s backend", storeConf.Backend)
		}
		return nil
	case BackendPostgres:
		return validateDatabaseConf(dbConf)
	default:
		return fmt.Errorf("invalid store backend %s, valid backends are %s", storeConf.Backend, validBackends)
	}
}

func validateAddressConf(addressConf Address) error {
	switch addressConf.Mode {
	case AddressModeMock:
		return nil
	case AddressModeBech32:
		if util.StrNotSet(addressConf.Prefix) {
			return errors.New("address prefix must be set in bech32 mode")
		}
		return nil
	default:
		return fmt.Errorf("invalid address mode %s, valid modes are %s and %s", addressConf.Mode, AddressModeMock, AddressModeBech32)
	}
}

// Reads the Viper mapstructure tag to get the valid keys for a given config struct
func getValidConfigKeys(section any, baseName string) (keys []string) {
	v := reflect.ValueOf(section)
	typeOfS := v.Type()

	if baseName == "" {
		baseName = strings.ToLower(typeOfS.Name())
	}

	for i := 0; i < v.NumField(); i++ {
		field := typeOfS.Field(i)

		// Hack to get around the fact that we have embedded struct inside a struct in some of our definitions
		if !strings.HasPrefix(field.Type.String(), "config.") {
			name := field.Tag.Get("mapstructure")
			if name == "" {
				name = field.Name
			}

			key := fmt.Sprintf("%v.%v", baseName, strings.ReplaceAll(strings.ToLower(name), " ", ""))
			keys = append(keys, key)
		}
	}
	return
}

func addConfigKeys(validKeys map[string]struct{}, section any, baseName string) {
	for _, key := range getValidConfigKeys(section, baseName) {
		validKeys[key] = struct{}{}
	}
}
