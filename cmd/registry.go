package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cosmos/cosmos-sdk/store/dbadapter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	dbTypes "github.com/DefiantLabs/cosmos-tokenfactory/db"
	"github.com/DefiantLabs/cosmos-tokenfactory/pkg/repository"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// registry is the state every store backed command runs against.
type registry struct {
	cfg       config.RegistryConfig
	store     *dbadapter.Store
	addresses types.AddressValidator
	publisher repository.EventPublisher
	events    repository.EventsCache
	rdb       *redis.Client
	metrics   *http.Server
}

var reg registry

func init() {
	config.SetupRegistryFlags(&reg.cfg, rootCmd)
}

// setupRegistry is the PreRunE of every command that needs the store.
func setupRegistry(cmd *cobra.Command, args []string) error {
	bindFlags(cmd, viperConf)

	if err := reg.cfg.Validate(); err != nil {
		return err
	}

	ignoredKeys := config.CheckSuperfluousRegistryKeys(viperConf.AllKeys())

	if len(ignoredKeys) > 0 {
		config.Log.Warnf("Warning, the following invalid keys will be ignored: %v", ignoredKeys)
	}

	setupLogger(reg.cfg.Log.Level, reg.cfg.Log.Path, reg.cfg.Log.Pretty)

	store, err := dbTypes.OpenStore(reg.cfg.Store, reg.cfg.Database)
	if err != nil {
		config.Log.Error("Could not open the registry store", err)
		return err
	}
	reg.store = store

	reg.addresses = addressValidator(reg.cfg.Address)

	reg.publisher = repository.NopPublisher{}
	if reg.cfg.Redis.RedisAddr != "" {
		reg.rdb = redis.NewClient(&redis.Options{
			Addr:     reg.cfg.Redis.RedisAddr,
			Password: reg.cfg.Redis.RedisPsw,
		})
		events := repository.NewEvents(reg.rdb)
		reg.publisher = events
		reg.events = events
	}

	if reg.cfg.Metrics.Addr != "" {
		reg.metrics = serveMetrics(reg.cfg.Metrics.Addr)
	}

	return nil
}

// withRegistry releases what setupRegistry opened once run returns, whether or not it failed.
func withRegistry(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer closeRegistry()
		return run(cmd, args)
	}
}

// closeRegistry is the counterpart of setupRegistry.
func closeRegistry() {
	if reg.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := reg.metrics.Shutdown(ctx); err != nil {
			config.Log.Warn("Error shutting down the metrics listener", err)
		}
	}
	if reg.rdb != nil {
		if err := reg.rdb.Close(); err != nil {
			config.Log.Warn("Error closing the redis client", err)
		}
	}
	if reg.store != nil {
		if err := reg.store.Close(); err != nil {
			config.Log.Error("Error closing the registry store", err)
		}
	}
}

func addressValidator(conf config.Address) types.AddressValidator {
	if conf.Mode == config.AddressModeBech32 {
		return types.Bech32Addresses{Prefix: conf.Prefix}
	}
	return types.MockAddresses{}
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Log.Error("Metrics listener stopped", err)
		}
	}()
	config.Log.Infof("Serving metrics on %s/metrics", addr)
	return server
}
