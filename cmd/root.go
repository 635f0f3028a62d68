package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TOKENFACTORY"

var (
	cfgFile string // config file location to load
	rootCmd = &cobra.Command{
		Use:   "tokenfactory",
		Short: "A CLI tool for creating and administering factory denoms",
		Long: `tokenfactory runs a denom registry over a local or postgres backed store.
		Denoms are namespaced under their creator as factory/<creator>/<subdenom> and
		only their admin may mint, burn, force transfer or change their metadata.`,
		SilenceUsage: true,
	}
	viperConf = viper.New()
)

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(getViperConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file location (default is <CWD>/config.toml, then $HOME/.tokenfactory/config.toml)")
}

// configSearchDir picks the directory config.toml is loaded from when --config is not given.
func configSearchDir() string {
	pwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Could not determine current working dir. Err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(pwd, "config.toml")); err == nil {
		return pwd
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to find user home dir. Err: %v", err)
	}
	return filepath.Join(home, ".tokenfactory")
}

func getViperConfig() {
	v := viper.New()
	v.SetConfigType("toml")

	// TOKENFACTORY_STORE_BACKEND overrides store.backend and so on.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	source := cfgFile
	if source != "" {
		v.SetConfigFile(source)
	} else {
		source = configSearchDir()
		v.AddConfigPath(source)
		v.SetConfigName("config")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		log.Println("CFG successfully read from: ", source)
	case errors.As(err, &notFound):
	case strings.Contains(err.Error(), "incomplete number"):
		log.Fatalf("Failed to read config file %v. This usually means you forgot to wrap a string in quotes.", err)
	default:
		log.Fatalf("Failed to read config file. Err: %v", err)
	}

	viperConf = v
}

// Set config vars from config file or environment not already specified on command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			log.Fatalf("Failed to bind config file value %v. Err: %v", f.Name, err)
		}
	})
}

func setupLogger(logLevel string, logPath string, prettyLogging bool) {
	config.DoConfigureLogger(logPath, logLevel, prettyLogging)
}
