package config

import (
	"github.com/spf13/cobra"
)

// RegistryConfig is shared by every command that opens the registry store.
type RegistryConfig struct {
	Database Database
	Log      log
	Store    Store
	Address  Address
	Redis    RedisConf
	Metrics  Metrics
}

func SetupRegistryFlags(conf *RegistryConfig, cmd *cobra.Command) {
	SetupLogFlags(&conf.Log, cmd)
	SetupDatabaseFlags(&conf.Database, cmd)
	SetupStoreFlags(&conf.Store, cmd)
	SetupAddressFlags(&conf.Address, cmd)
	SetupRedisFlags(&conf.Redis, cmd)
	SetupMetricsFlags(&conf.Metrics, cmd)
}

func (conf *RegistryConfig) Validate() error {
	if err := validateStoreConf(conf.Store, conf.Database); err != nil {
		return err
	}
	return validateAddressConf(conf.Address)
}

func CheckSuperfluousRegistryKeys(keys []string) []string {
	validKeys := make(map[string]struct{})

	addConfigKeys(validKeys, Database{}, "")
	addConfigKeys(validKeys, log{}, "")
	addConfigKeys(validKeys, Store{}, "")
	addConfigKeys(validKeys, Address{}, "")
	addConfigKeys(validKeys, Metrics{}, "")
	addConfigKeys(validKeys, RedisConf{}, "redis")

	// Check keys
	ignoredKeys := make([]string, 0)
	for _, key := range keys {
		if _, ok := validKeys[key]; !ok {
			ignoredKeys = append(ignoredKeys, key)
		}
	}

	return ignoredKeys
}
