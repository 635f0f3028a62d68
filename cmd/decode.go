package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

var decodeField uint8

func init() {
	decodeCmd.Flags().Uint8Var(&decodeField, "field", types.CreateDenomReplyField, "field number the payload must carry")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode-reply <hex>",
	Short: "Decodes a create denom reply payload.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("payload is not hex: %w", err)
		}

		value, err := types.DecodeStringField(data, decodeField)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}
