package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings"
	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
	"github.com/DefiantLabs/cosmos-tokenfactory/util"
)

var (
	balanceAddress string
	balanceDenom   string
)

func init() {
	balanceCmd.Flags().StringVar(&balanceAddress, "address", "", "account to read the balance of")
	balanceCmd.Flags().StringVar(&balanceDenom, "denom", "", "denom to read, e.g. factory/govner/fundz")
	rootCmd.AddCommand(balanceCmd)
}

type balanceResult struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
	Amount  string `json:"amount"`
	Supply  string `json:"supply"`
	Display string `json:"display,omitempty"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Shows the ledger balance of an account.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if balanceAddress == "" || balanceDenom == "" {
			return errors.New("--address and --denom must be set")
		}
		return setupRegistry(cmd, args)
	},
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		registry, bank := bindings.Keepers(reg.store, reg.addresses)

		balance := bank.GetBalance(balanceAddress, balanceDenom)
		out := balanceResult{
			Address: balanceAddress,
			Denom:   balanceDenom,
			Amount:  balance.Amount.String(),
			Supply:  bank.GetSupply(balanceDenom).Amount.String(),
		}

		// non factory denoms have no metadata, the raw amount is all there is
		if metadata, found, err := registry.GetDenomMetadata(balanceDenom); err == nil && found {
			if exponent, ok := displayExponent(metadata); ok {
				out.Display = util.ToDisplayAmount(balance.Amount.BigInt(), exponent).String() + " " + metadata.Display
			}
		}

		return printJSON(out)
	}),
}

func displayExponent(metadata types.Metadata) (uint32, bool) {
	for _, unit := range metadata.DenomUnits {
		if unit.Denom == metadata.Display {
			return unit.Exponent, true
		}
	}
	return 0, false
}
