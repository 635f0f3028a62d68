package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings"
)

var queryArg string

func init() {
	queryCmd.Flags().StringVar(&queryArg, "query", "", "token factory query as JSON, @file or - for stdin")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Queries the denom registry.",
	Long: `Runs a JSON encoded token factory query such as
	{"token":{"admin":{"denom":"factory/govner/fundz"}}} and prints the JSON response.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if queryArg == "" {
			return errors.New("--query must be set")
		}
		return setupRegistry(cmd, args)
	},
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		raw, err := readJSONArg(queryArg)
		if err != nil {
			return err
		}

		querier := bindings.CustomQuerier(bindings.NewQueryPlugin(reg.store, reg.addresses))
		bz, err := querier(raw)
		if err != nil {
			return err
		}

		var res any
		if err := json.Unmarshal(bz, &res); err != nil {
			return fmt.Errorf("failed to decode query response: %w", err)
		}
		return printJSON(res)
	}),
}
