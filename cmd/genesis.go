package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

var genesisOutput string

func init() {
	genesisExportCmd.Flags().StringVar(&genesisOutput, "output", "", "write the genesis to this file instead of stdout")
	genesisCmd.AddCommand(genesisExportCmd, genesisImportCmd)
	rootCmd.AddCommand(genesisCmd)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Exports or imports the registry state.",
}

var genesisExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Writes every denom with its admin and metadata as JSON.",
	PreRunE: setupRegistry,
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		genState, err := bindings.ExportGenesis(reg.store)
		if err != nil {
			return err
		}

		if genesisOutput == "" {
			return printJSON(genState)
		}

		bz, err := json.MarshalIndent(genState, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(genesisOutput, bz, 0o600)
	}),
}

var genesisImportCmd = &cobra.Command{
	Use:     "import <file>",
	Short:   "Loads denoms from a genesis file. Nothing is written if any denom is rejected.",
	Args:    cobra.ExactArgs(1),
	PreRunE: setupRegistry,
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		bz, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var genState types.GenesisState
		if err := json.Unmarshal(bz, &genState); err != nil {
			return fmt.Errorf("invalid genesis file %s: %w", args[0], err)
		}

		if err := bindings.ImportGenesis(reg.store.DB, reg.addresses, genState); err != nil {
			config.Log.Error("Genesis import failed", err)
			return err
		}

		config.Log.Infof("Imported %d denoms", len(genState.FactoryDenoms))
		return nil
	}),
}
